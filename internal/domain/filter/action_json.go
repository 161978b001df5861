package filter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
	apperrors "github.com/wvwild/adventure-hub/pkg/errors"
)

// ActionEnvelope is the JSON shape UI controls send for an action:
//
//	{"type":"SET_MULTI_SELECT","axis":"season","values":["fall"]}
//	{"type":"SET_SINGLE_SELECT","axis":"difficulty","value":"moderate"}
//	{"type":"SET_RANGE","axis":"elevation","value":[1000,2000]}
//	{"type":"RESET_ALL"}
type ActionEnvelope struct {
	Type   ActionType      `json:"type"`
	Axis   Axis            `json:"axis,omitempty"`
	Values []string        `json:"values,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`
}

// Action converts the envelope into a typed action, rejecting anything the
// reducer would not accept.
func (e ActionEnvelope) Action() (Action, error) {
	switch e.Type {
	case ActionSetMultiSelect:
		if !e.Axis.IsMultiSelect() {
			return nil, invalidAction("%s requires axis season, gear or suitability, got %q", e.Type, e.Axis)
		}
		return SetMultiSelect{Axis: e.Axis, Values: NewTagSet(e.Values...)}, nil
	case ActionSetSingleSelect:
		if e.Axis != AxisDifficulty {
			return nil, invalidAction("%s requires axis difficulty, got %q", e.Type, e.Axis)
		}
		if isNull(e.Value) {
			return SetSingleSelect{Axis: AxisDifficulty}, nil
		}
		var value string
		if err := json.Unmarshal(e.Value, &value); err != nil {
			return nil, invalidAction("%s value must be a string or null", e.Type)
		}
		return SetSingleSelect{Axis: AxisDifficulty, Value: adventure.Difficulty(value)}, nil
	case ActionSetRange:
		if e.Axis != AxisElevation {
			return nil, invalidAction("%s requires axis elevation, got %q", e.Type, e.Axis)
		}
		if isNull(e.Value) {
			return nil, invalidAction("%s requires a [min, max] value", e.Type)
		}
		var r ElevationRange
		if err := json.Unmarshal(e.Value, &r); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeInvalidAction, string(e.Type)+" value is malformed", err)
		}
		return SetRange{Axis: AxisElevation, Value: r}, nil
	case ActionResetAll:
		return ResetAll{}, nil
	case "":
		return nil, invalidAction("action type is required")
	default:
		return nil, invalidAction("unknown action type %q", e.Type)
	}
}

// EnvelopeOf renders a typed action back into its wire form.
func EnvelopeOf(action Action) ActionEnvelope {
	switch a := action.(type) {
	case SetMultiSelect:
		values := []string(a.Values)
		if values == nil {
			values = []string{}
		}
		return ActionEnvelope{Type: a.Type(), Axis: a.Axis, Values: values}
	case SetSingleSelect:
		raw := json.RawMessage("null")
		if a.Value != "" {
			raw, _ = json.Marshal(string(a.Value))
		}
		return ActionEnvelope{Type: a.Type(), Axis: a.Axis, Value: raw}
	case SetRange:
		raw, _ := json.Marshal(a.Value)
		return ActionEnvelope{Type: a.Type(), Axis: a.Axis, Value: raw}
	default:
		return ActionEnvelope{Type: action.Type()}
	}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func invalidAction(format string, args ...any) error {
	return apperrors.Wrap(apperrors.CodeInvalidAction, fmt.Sprintf(format, args...), nil)
}
