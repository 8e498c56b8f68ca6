package domain

import "fmt"

// Catalog is the immutable, ordered collection of professionals.
// It is built once from a catalog source and shared read-only afterwards.
type Catalog struct {
	entries []Professional
	index   map[int]int
}

// NewCatalog validates the entries and builds a catalog preserving their order.
// The input slice is copied; later changes to it do not affect the catalog.
func NewCatalog(entries []Professional) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Professional, len(entries)),
		index:   make(map[int]int, len(entries)),
	}
	copy(c.entries, entries)

	for i := range c.entries {
		p := c.entries[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate professional id %d", ErrInvalidCatalog, p.ID)
		}
		c.index[p.ID] = i
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns a copy of every entry in catalog order.
func (c *Catalog) All() []Professional {
	out := make([]Professional, len(c.entries))
	copy(out, c.entries)
	return out
}

// Find returns the entry with the given id.
func (c *Catalog) Find(id int) (Professional, bool) {
	i, ok := c.index[id]
	if !ok {
		return Professional{}, false
	}
	return c.entries[i], true
}

// Filter returns the entries accepted by keep, in catalog order.
func (c *Catalog) Filter(keep func(Professional) bool) []Professional {
	out := make([]Professional, 0, len(c.entries))
	for i := range c.entries {
		if keep(c.entries[i]) {
			out = append(out, c.entries[i])
		}
	}
	return out
}
