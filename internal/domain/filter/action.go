package filter

import "github.com/wvwild/adventure-hub/internal/domain/adventure"

// Axis names one independently filterable dimension.
type Axis string

const (
	AxisSeason      Axis = "season"
	AxisDifficulty  Axis = "difficulty"
	AxisGear        Axis = "gear"
	AxisElevation   Axis = "elevation"
	AxisSuitability Axis = "suitability"
)

// IsMultiSelect reports whether the axis holds a set of tags.
func (a Axis) IsMultiSelect() bool {
	return a == AxisSeason || a == AxisGear || a == AxisSuitability
}

// ActionType is the wire name of an action.
type ActionType string

const (
	ActionSetMultiSelect  ActionType = "SET_MULTI_SELECT"
	ActionSetSingleSelect ActionType = "SET_SINGLE_SELECT"
	ActionSetRange        ActionType = "SET_RANGE"
	ActionResetAll        ActionType = "RESET_ALL"
)

// Action is the closed set of state transitions understood by Reduce.
type Action interface {
	Type() ActionType
	action()
}

// SetMultiSelect replaces the set held by a multi-select axis.
type SetMultiSelect struct {
	Axis   Axis
	Values TagSet
}

// SetSingleSelect sets the difficulty, or clears it when Value is empty.
type SetSingleSelect struct {
	Axis  Axis
	Value adventure.Difficulty
}

// SetRange replaces the elevation range verbatim.
type SetRange struct {
	Axis  Axis
	Value ElevationRange
}

// ResetAll restores every axis to its default.
type ResetAll struct{}

func (SetMultiSelect) Type() ActionType  { return ActionSetMultiSelect }
func (SetSingleSelect) Type() ActionType { return ActionSetSingleSelect }
func (SetRange) Type() ActionType        { return ActionSetRange }
func (ResetAll) Type() ActionType        { return ActionResetAll }

func (SetMultiSelect) action()  {}
func (SetSingleSelect) action() {}
func (SetRange) action()        {}
func (ResetAll) action()        {}
