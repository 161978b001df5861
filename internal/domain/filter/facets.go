package filter

import (
	"sort"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

// FacetOption is one selectable value of an axis and how many adventures carry it.
type FacetOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ElevationFacet summarizes the elevation gains present in the catalog.
type ElevationFacet struct {
	Floor       int  `json:"floor"`
	Ceiling     int  `json:"ceiling"`
	ObservedMin *int `json:"observedMin,omitempty"`
	ObservedMax *int `json:"observedMax,omitempty"`
	Unknown     int  `json:"unknown"`
}

// Facets is the option metadata the filter controls are rendered from.
type Facets struct {
	Season      []FacetOption  `json:"season"`
	Difficulty  []FacetOption  `json:"difficulty"`
	Gear        []FacetOption  `json:"gear"`
	Suitability []FacetOption  `json:"suitability"`
	Elevation   ElevationFacet `json:"elevation"`
	TotalCount  int            `json:"totalCount"`
}

// BuildFacets counts, per axis, the adventures carrying each value. Values of
// closed vocabularies are listed in vocabulary order, including those no
// adventure carries; gear tags are listed alphabetically.
func BuildFacets(adventures []adventure.Adventure) Facets {
	seasons := make(map[string]int)
	difficulties := make(map[string]int)
	gear := make(map[string]int)
	suitability := make(map[string]int)
	elevation := ElevationFacet{Floor: ElevationFloor, Ceiling: ElevationCeiling}

	for _, a := range adventures {
		for _, s := range a.Season {
			seasons[string(s)]++
		}
		difficulties[string(a.Difficulty)]++
		for _, g := range a.Gear {
			gear[g]++
		}
		for _, s := range a.Suitability {
			suitability[string(s)]++
		}
		if a.ElevationGain == nil {
			elevation.Unknown++
			continue
		}
		gain := *a.ElevationGain
		if elevation.ObservedMin == nil || gain < *elevation.ObservedMin {
			v := gain
			elevation.ObservedMin = &v
		}
		if elevation.ObservedMax == nil || gain > *elevation.ObservedMax {
			v := gain
			elevation.ObservedMax = &v
		}
	}

	return Facets{
		Season:      vocabularyOptions(adventure.Seasons, seasons),
		Difficulty:  vocabularyOptions(adventure.Difficulties, difficulties),
		Gear:        sortedOptions(gear),
		Suitability: vocabularyOptions(adventure.Suitabilities, suitability),
		Elevation:   elevation,
		TotalCount:  len(adventures),
	}
}

func vocabularyOptions[T ~string](vocabulary []T, counts map[string]int) []FacetOption {
	out := make([]FacetOption, 0, len(vocabulary))
	for _, v := range vocabulary {
		out = append(out, FacetOption{Value: string(v), Count: counts[string(v)]})
	}
	return out
}

func sortedOptions(counts map[string]int) []FacetOption {
	out := make([]FacetOption, 0, len(counts))
	for value, count := range counts {
		out = append(out, FacetOption{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
