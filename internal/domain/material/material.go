package material

import (
	"fmt"
	"strings"
)

// Well-known computed property keys.
const (
	PropSurfaceArea    = "sa_m2g"
	PropStability      = "stability_index"
	PropOpenMetalSites = "open_metal_sites"
)

// Material is a catalog record (immutable value object).
type Material struct {
	id        string
	name      string
	metalNode string
	topology  string
	props     map[string]float64
}

// New validates and creates a Material. ID and name are required.
func New(id, name, metalNode, topology string, props map[string]float64) (Material, error) {
	if strings.TrimSpace(id) == "" {
		return Material{}, fmt.Errorf("material ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return Material{}, fmt.Errorf("material name is required")
	}
	return Material{
		id:        id,
		name:      name,
		metalNode: metalNode,
		topology:  topology,
		props:     cloneProps(props),
	}, nil
}

// MustNew is New for static data; it panics on invalid input.
func MustNew(id, name, metalNode, topology string, props map[string]float64) Material {
	m, err := New(id, name, metalNode, topology, props)
	if err != nil {
		panic(err)
	}
	return m
}

// ID returns the catalog identifier.
func (m Material) ID() string { return m.id }

// Name returns the display name.
func (m Material) Name() string { return m.name }

// MetalNode returns the metal-node label (e.g. "Zr").
func (m Material) MetalNode() string { return m.metalNode }

// Topology returns the net topology label (e.g. "fcu").
func (m Material) Topology() string { return m.topology }

// Props returns a copy of the computed properties.
func (m Material) Props() map[string]float64 { return cloneProps(m.props) }

// Prop returns a computed property and whether it is set.
func (m Material) Prop(key string) (float64, bool) {
	v, ok := m.props[key]
	return v, ok
}

// PropOr returns a computed property or def when it is absent.
func (m Material) PropOr(key string, def float64) float64 {
	if v, ok := m.props[key]; ok {
		return v
	}
	return def
}

// NameContains reports whether the display name contains substr (case-sensitive).
func (m Material) NameContains(substr string) bool {
	return strings.Contains(m.name, substr)
}

func cloneProps(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
