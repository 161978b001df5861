package filter

import "github.com/wvwild/adventure-hub/internal/domain/adventure"

// ToggleMultiSelect builds the action a checkbox click produces: value is
// added when absent and removed when present.
func ToggleMultiSelect(state State, axis Axis, value string) SetMultiSelect {
	current := multiSelectValues(state, axis)
	if current.Contains(value) {
		return SetMultiSelect{Axis: axis, Values: current.Without(value)}
	}
	return SetMultiSelect{Axis: axis, Values: current.With(value)}
}

// SelectDifficulty builds the action a difficulty radio click produces.
// Clicking the active value again clears the axis.
func SelectDifficulty(state State, value adventure.Difficulty) SetSingleSelect {
	if value == state.Difficulty {
		return SetSingleSelect{Axis: AxisDifficulty}
	}
	return SetSingleSelect{Axis: AxisDifficulty, Value: value}
}

func multiSelectValues(state State, axis Axis) TagSet {
	switch axis {
	case AxisSeason:
		return state.Season
	case AxisGear:
		return state.Gear
	case AxisSuitability:
		return state.Suitability
	default:
		return nil
	}
}
