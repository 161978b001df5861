package filter

import "github.com/wvwild/adventure-hub/internal/domain/adventure"

// View is everything a consumer of the filter UI needs after a change.
type View struct {
	State             State                 `json:"state"`
	Adventures        []adventure.Adventure `json:"adventures"`
	TotalCount        int                   `json:"totalCount"`
	ActiveFilterCount int                   `json:"activeFilterCount"`
}

// Provider owns one filter state over a fixed list of adventures. It is not
// safe for concurrent use; whoever builds it is its single owner.
type Provider struct {
	adventures []adventure.Adventure
	state      State
	filtered   []adventure.Adventure
}

// NewProvider starts a provider at the default state.
func NewProvider(adventures []adventure.Adventure) *Provider {
	return RestoreProvider(adventures, DefaultState())
}

// RestoreProvider rebuilds a provider around a previously reached state.
func RestoreProvider(adventures []adventure.Adventure, state State) *Provider {
	p := &Provider{adventures: adventures}
	p.set(state)
	return p
}

// State returns a copy of the current state.
func (p *Provider) State() State {
	return p.state.Clone()
}

// Dispatch reduces action into the state and returns the fresh view.
func (p *Provider) Dispatch(action Action) View {
	p.set(Reduce(p.state, action))
	return p.View()
}

// FilteredAdventures is the memoized result of Apply for the current state.
func (p *Provider) FilteredAdventures() []adventure.Adventure {
	return p.filtered
}

// TotalCount is the size of the unfiltered list.
func (p *Provider) TotalCount() int {
	return len(p.adventures)
}

// ActiveFilterCount counts the axes that currently filter something.
func (p *Provider) ActiveFilterCount() int {
	return ActiveFilterCount(p.state)
}

// View bundles state and derived values.
func (p *Provider) View() View {
	return View{
		State:             p.State(),
		Adventures:        p.filtered,
		TotalCount:        p.TotalCount(),
		ActiveFilterCount: p.ActiveFilterCount(),
	}
}

func (p *Provider) set(state State) {
	p.state = state.Clone()
	p.filtered = Apply(p.adventures, p.state)
}
