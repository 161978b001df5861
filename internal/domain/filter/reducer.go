package filter

import "fmt"

// Reduce returns the state that results from applying action to state.
// It never modifies state. Axis names are trusted: an action carrying an
// axis that does not belong to its type panics, since only the wire codec
// and the UI helpers construct actions and both guarantee valid axes.
func Reduce(state State, action Action) State {
	next := state.Clone()
	switch a := action.(type) {
	case SetMultiSelect:
		values := NewTagSet(a.Values...)
		switch a.Axis {
		case AxisSeason:
			next.Season = values
		case AxisGear:
			next.Gear = values
		case AxisSuitability:
			next.Suitability = values
		default:
			panic(fmt.Sprintf("filter: %s on non multi-select axis %q", a.Type(), a.Axis))
		}
	case SetSingleSelect:
		if a.Axis != AxisDifficulty {
			panic(fmt.Sprintf("filter: %s on non single-select axis %q", a.Type(), a.Axis))
		}
		next.Difficulty = a.Value
	case SetRange:
		if a.Axis != AxisElevation {
			panic(fmt.Sprintf("filter: %s on non range axis %q", a.Type(), a.Axis))
		}
		next.Elevation = a.Value
	case ResetAll:
		return DefaultState()
	default:
		panic(fmt.Sprintf("filter: unsupported action %T", action))
	}
	return next
}
