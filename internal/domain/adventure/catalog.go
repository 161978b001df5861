package adventure

import "context"

// Source loads the raw adventure records from wherever the content lives.
type Source interface {
	Load(ctx context.Context) ([]Adventure, error)
}

// Catalog is the immutable, validated list of adventures in source order.
type Catalog struct {
	items []Adventure
	byID  map[string]int
}

// NewCatalog validates items and builds the lookup index. The slice is copied.
func NewCatalog(items []Adventure) (*Catalog, error) {
	if err := ValidateAll(items); err != nil {
		return nil, err
	}
	copied := make([]Adventure, len(items))
	copy(copied, items)
	byID := make(map[string]int, len(copied))
	for i, item := range copied {
		byID[item.ID] = i
	}
	return &Catalog{items: copied, byID: byID}, nil
}

// All returns the adventures in source order. Callers must not modify it.
func (c *Catalog) All() []Adventure {
	return c.items
}

// Get returns the adventure with the given id.
func (c *Catalog) Get(id string) (Adventure, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Adventure{}, false
	}
	return c.items[idx], true
}

// Len is the number of adventures in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
