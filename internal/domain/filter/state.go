package filter

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

// Elevation bounds of the range axis, in feet.
const (
	ElevationFloor   = 0
	ElevationCeiling = 5000
)

// TagSet is a set of tag values kept in insertion order without duplicates.
// A nil TagSet is the empty set.
type TagSet []string

// NewTagSet copies values, dropping duplicates. Empty input yields nil.
func NewTagSet(values ...string) TagSet {
	if len(values) == 0 {
		return nil
	}
	out := make(TagSet, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Contains reports whether v is in the set.
func (s TagSet) Contains(v string) bool {
	return slices.Contains(s, v)
}

// With returns a new set containing v.
func (s TagSet) With(v string) TagSet {
	if s.Contains(v) {
		return NewTagSet(s...)
	}
	return NewTagSet(append(slices.Clone(s), v)...)
}

// Without returns a new set lacking v.
func (s TagSet) Without(v string) TagSet {
	out := make([]string, 0, len(s))
	for _, existing := range s {
		if existing != v {
			out = append(out, existing)
		}
	}
	return NewTagSet(out...)
}

// Equal reports whether both sets hold the same values, in any order.
func (s TagSet) Equal(other TagSet) bool {
	if len(s) != len(other) {
		return false
	}
	for _, v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// MarshalJSON renders the empty set as [] rather than null.
func (s TagSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// UnmarshalJSON normalizes the decoded list into a set.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewTagSet(values...)
	return nil
}

// ElevationRange is an inclusive [Min, Max] interval of elevation gain.
type ElevationRange struct {
	Min int
	Max int
}

// FullElevationRange is the default range, which filters nothing.
func FullElevationRange() ElevationRange {
	return ElevationRange{Min: ElevationFloor, Max: ElevationCeiling}
}

// IsFull reports whether the range is the untouched default.
func (r ElevationRange) IsFull() bool {
	return r == FullElevationRange()
}

// Contains reports whether gain lies inside the range, bounds included.
func (r ElevationRange) Contains(gain int) bool {
	return r.Min <= gain && gain <= r.Max
}

// Check verifies the range is ordered and inside the slider bounds.
func (r ElevationRange) Check() error {
	if r.Min < ElevationFloor || r.Max > ElevationCeiling {
		return fmt.Errorf("elevation range [%d, %d] must lie within [%d, %d]", r.Min, r.Max, ElevationFloor, ElevationCeiling)
	}
	if r.Min > r.Max {
		return fmt.Errorf("elevation min %d exceeds max %d", r.Min, r.Max)
	}
	return nil
}

// MarshalJSON encodes the range as a [min, max] tuple.
func (r ElevationRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Min, r.Max})
}

// UnmarshalJSON decodes a [min, max] tuple.
func (r *ElevationRange) UnmarshalJSON(data []byte) error {
	var tuple []int
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("elevation must be a [min, max] pair: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("elevation must be a [min, max] pair, got %d values", len(tuple))
	}
	r.Min, r.Max = tuple[0], tuple[1]
	return nil
}

// State is the normalized value of every filter axis. The zero value is not
// the default; use DefaultState.
type State struct {
	Season      TagSet               `json:"season"`
	Difficulty  adventure.Difficulty `json:"difficulty,omitempty"`
	Gear        TagSet               `json:"gear"`
	Elevation   ElevationRange       `json:"elevation"`
	Suitability TagSet               `json:"suitability"`
}

// DefaultState is the state with no axis filtering anything.
func DefaultState() State {
	return State{Elevation: FullElevationRange()}
}

// IsDefault reports whether every axis is at its default.
func (s State) IsDefault() bool {
	return ActiveFilterCount(s) == 0
}

// Clone returns a deep copy so callers can change it freely.
func (s State) Clone() State {
	s.Season = NewTagSet(s.Season...)
	s.Gear = NewTagSet(s.Gear...)
	s.Suitability = NewTagSet(s.Suitability...)
	return s
}

// Equal compares two states axis by axis. Set axes compare by content, so
// {fall, winter} equals {winter, fall}.
func (s State) Equal(other State) bool {
	return s.Season.Equal(other.Season) &&
		s.Difficulty == other.Difficulty &&
		s.Gear.Equal(other.Gear) &&
		s.Elevation == other.Elevation &&
		s.Suitability.Equal(other.Suitability)
}
