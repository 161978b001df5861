package filter

import "github.com/wvwild/adventure-hub/internal/domain/adventure"

// Apply returns the adventures that satisfy every axis of state, in their
// original order. The input slice is left untouched.
func Apply(adventures []adventure.Adventure, state State) []adventure.Adventure {
	out := make([]adventure.Adventure, 0, len(adventures))
	for _, a := range adventures {
		if Matches(a, state) {
			out = append(out, a)
		}
	}
	return out
}

// Matches reports whether a single adventure passes all axes.
func Matches(a adventure.Adventure, state State) bool {
	return matchesSeason(a, state.Season) &&
		matchesDifficulty(a, state.Difficulty) &&
		matchesTags(a.Gear, state.Gear) &&
		matchesElevation(a, state.Elevation) &&
		matchesTags(a.Suitability, state.Suitability)
}

func matchesSeason(a adventure.Adventure, want TagSet) bool {
	return matchesTags(a.Season, want)
}

func matchesDifficulty(a adventure.Adventure, want adventure.Difficulty) bool {
	return want == "" || a.Difficulty == want
}

func matchesElevation(a adventure.Adventure, r ElevationRange) bool {
	if r.IsFull() {
		return true
	}
	if a.ElevationGain == nil {
		return false
	}
	return r.Contains(*a.ElevationGain)
}

// matchesTags is the OR rule of multi-select axes: an empty selection passes
// everything, otherwise at least one tag must be shared.
func matchesTags[T ~string](have []T, want TagSet) bool {
	if len(want) == 0 {
		return true
	}
	for _, tag := range have {
		if want.Contains(string(tag)) {
			return true
		}
	}
	return false
}

// ActiveFilterCount is the number of axes that differ from their default.
// A multi-select axis counts once however many values it holds.
func ActiveFilterCount(state State) int {
	count := 0
	if len(state.Season) > 0 {
		count++
	}
	if state.Difficulty != "" {
		count++
	}
	if len(state.Gear) > 0 {
		count++
	}
	if !state.Elevation.IsFull() {
		count++
	}
	if len(state.Suitability) > 0 {
		count++
	}
	return count
}
