// Package catalog is the read-only in-memory material store.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/mofassist/internal/domain"
	"github.com/kailas-cloud/mofassist/internal/domain/material"
)

// Catalog holds a fixed, ordered list of materials. It is never mutated after
// construction, so concurrent reads need no locking.
type Catalog struct {
	items []material.Material
}

// New creates a catalog from the given records. At least one record is required
// because name lookups fall back to the first entry.
func New(items ...material.Material) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog requires at least one material")
	}
	seen := make(map[string]struct{}, len(items))
	for _, m := range items {
		if _, dup := seen[m.ID()]; dup {
			return nil, fmt.Errorf("duplicate material ID %q", m.ID())
		}
		seen[m.ID()] = struct{}{}
	}
	cp := make([]material.Material, len(items))
	copy(cp, items)
	return &Catalog{items: cp}, nil
}

// Default returns the built-in two-record catalog.
func Default() *Catalog {
	c, err := New(
		material.MustNew("MOF_00123", "UiO-66-NH2", "Zr", "fcu", map[string]float64{
			material.PropSurfaceArea: 1200,
			material.PropStability:   0.92,
		}),
		material.MustNew("HKUST_1", "HKUST-1", "Cu", "tbo", map[string]float64{
			material.PropSurfaceArea:    1500,
			material.PropOpenMetalSites: 1,
		}),
	)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every record in catalog order.
func (c *Catalog) All() []material.Material {
	out := make([]material.Material, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.items) }

// First returns the fallback record.
func (c *Catalog) First() material.Material { return c.items[0] }

// SearchByApplication returns materials relevant to an application.
// Relevance ranking is not implemented: the whole catalog is returned in order.
func (c *Catalog) SearchByApplication(_ context.Context, _ string) []material.Material {
	return c.All()
}

// Lookup finds a material by display name, case-insensitively.
// Returns domain.ErrMaterialNotFound on a miss.
func (c *Catalog) Lookup(_ context.Context, name string) (material.Material, error) {
	for _, m := range c.items {
		if strings.EqualFold(m.Name(), name) {
			return m, nil
		}
	}
	return material.Material{}, fmt.Errorf("%w: %q", domain.ErrMaterialNotFound, name)
}

// ByName resolves a material by display name and never fails: an empty name or
// a miss yields the first record. matched reports whether the name was found.
func (c *Catalog) ByName(ctx context.Context, name string) (m material.Material, matched bool) {
	if name == "" {
		return c.First(), false
	}
	m, err := c.Lookup(ctx, name)
	if err != nil {
		return c.First(), false
	}
	return m, true
}

// Ping reports whether the catalog can serve lookups.
func (c *Catalog) Ping(_ context.Context) error {
	if c == nil || len(c.items) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	return nil
}
