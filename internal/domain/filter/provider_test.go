package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

func TestProviderStartsAtDefaults(t *testing.T) {
	p := NewProvider(sampleAdventures())

	view := p.View()
	require.Equal(t, DefaultState(), view.State)
	require.Equal(t, 5, view.TotalCount)
	require.Equal(t, 0, view.ActiveFilterCount)
	require.Len(t, view.Adventures, 5)
}

func TestProviderDispatchRecomputesView(t *testing.T) {
	p := NewProvider(sampleAdventures())

	view := p.Dispatch(SetMultiSelect{Axis: AxisSeason, Values: TagSet{"fall"}})
	require.Len(t, view.Adventures, 2)
	require.Equal(t, 5, view.TotalCount)
	require.Equal(t, 1, view.ActiveFilterCount)

	view = p.Dispatch(SetSingleSelect{Axis: AxisDifficulty, Value: adventure.DifficultyModerate})
	require.Equal(t, []string{"burnsville-wma"}, ids(view.Adventures))
	require.Equal(t, 2, p.ActiveFilterCount())
	require.Equal(t, view.Adventures, p.FilteredAdventures())

	view = p.Dispatch(ResetAll{})
	require.Len(t, view.Adventures, 5)
	require.Equal(t, 0, view.ActiveFilterCount)
}

func TestProviderEmptyResult(t *testing.T) {
	p := NewProvider(sampleAdventures())
	view := p.Dispatch(SetMultiSelect{Axis: AxisGear, Values: TagSet{"skiing"}})
	require.NotNil(t, view.Adventures)
	require.Empty(t, view.Adventures)
	require.Equal(t, 5, view.TotalCount)
}

func TestRestoreProviderIsolatesState(t *testing.T) {
	stored := DefaultState()
	stored.Gear = NewTagSet("hiking")

	p := RestoreProvider(sampleAdventures(), stored)
	require.Equal(t, []string{"seneca-rocks", "spruce-knob", "blackwater-falls"}, ids(p.FilteredAdventures()))

	stored.Gear[0] = "fishing"
	require.Equal(t, TagSet{"hiking"}, p.State().Gear)

	got := p.State()
	got.Gear[0] = "kayak"
	require.Equal(t, TagSet{"hiking"}, p.State().Gear)
}
