package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFacets(t *testing.T) {
	facets := BuildFacets(sampleAdventures())

	require.Equal(t, 5, facets.TotalCount)
	require.Equal(t, []FacetOption{
		{Value: "spring", Count: 2},
		{Value: "summer", Count: 3},
		{Value: "fall", Count: 2},
		{Value: "winter", Count: 2},
	}, facets.Season)
	require.Equal(t, []FacetOption{
		{Value: "easy", Count: 1},
		{Value: "moderate", Count: 2},
		{Value: "challenging", Count: 1},
		{Value: "rugged", Count: 1},
	}, facets.Difficulty)
	require.Equal(t, []FacetOption{
		{Value: "camping", Count: 1},
		{Value: "climbing", Count: 1},
		{Value: "fishing", Count: 1},
		{Value: "hiking", Count: 3},
		{Value: "hunting", Count: 1},
		{Value: "kayak", Count: 1},
	}, facets.Gear)
	require.Equal(t, 2, facets.Suitability[0].Count)
	require.Equal(t, 1, facets.Elevation.Unknown)
	require.Equal(t, 150, *facets.Elevation.ObservedMin)
	require.Equal(t, 3000, *facets.Elevation.ObservedMax)
	require.Equal(t, ElevationCeiling, facets.Elevation.Ceiling)
}

func TestBuildFacetsEmpty(t *testing.T) {
	facets := BuildFacets(nil)
	require.Len(t, facets.Season, 4)
	require.Empty(t, facets.Gear)
	require.Nil(t, facets.Elevation.ObservedMin)
}
