package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/milk9111/orbitsim/common"
	"github.com/milk9111/orbitsim/ecs/component"
)

const catalogFile = "bodies.yaml"

var defaultBodyColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

// Catalog is the ordered list of predefined bodies available as scenario
// templates and as shooting ammunition.
type Catalog struct {
	bodies []component.Body
}

func LoadCatalog() (*Catalog, error) {
	spec, err := LoadSpec[CatalogSpec](catalogFile)
	if err != nil {
		return nil, err
	}
	return NewCatalog(spec.Bodies)
}

func NewCatalog(specs []BodySpec) (*Catalog, error) {
	c := &Catalog{}
	seen := map[string]bool{}
	for i, s := range specs {
		b, err := s.body()
		if err != nil {
			return nil, fmt.Errorf("prefabs: catalog entry %d: %w", i, err)
		}
		key := strings.ToLower(b.Name)
		if seen[key] {
			return nil, fmt.Errorf("prefabs: catalog entry %d: duplicate body %q", i, b.Name)
		}
		seen[key] = true
		c.bodies = append(c.bodies, b)
	}
	return c, nil
}

func (s BodySpec) body() (component.Body, error) {
	if strings.TrimSpace(s.Name) == "" {
		return component.Body{}, fmt.Errorf("body has no name")
	}
	if !(s.Mass > 0) || math.IsInf(s.Mass, 1) {
		return component.Body{}, fmt.Errorf("body %q: mass must be positive, got %v", s.Name, s.Mass)
	}
	if !(s.Radius >= 0) || math.IsInf(s.Radius, 1) {
		return component.Body{}, fmt.Errorf("body %q: radius must be finite and not negative, got %v", s.Name, s.Radius)
	}
	col := defaultBodyColor
	if s.Color != nil {
		col = s.Color.NRGBA
	}
	return component.Body{Name: s.Name, Mass: s.Mass, Radius: s.Radius, Color: col}, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.bodies)
}

// Bodies returns a copy of the catalog in order.
func (c *Catalog) Bodies() []component.Body {
	if c == nil {
		return nil
	}
	return append([]component.Body(nil), c.bodies...)
}

// Lookup finds a body by name, ignoring case.
func (c *Catalog) Lookup(name string) (component.Body, bool) {
	if c == nil {
		return component.Body{}, false
	}
	for _, b := range c.bodies {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return component.Body{}, false
}

// First returns the first catalog body.
func (c *Catalog) First() (component.Body, bool) {
	if c.Len() == 0 {
		return component.Body{}, false
	}
	return c.bodies[0], true
}

// Cycle steps from the named body to its neighbour, wrapping around.
func (c *Catalog) Cycle(current string, forward bool) (component.Body, bool) {
	if c.Len() == 0 {
		return component.Body{}, false
	}
	names := make([]string, len(c.bodies))
	for i, b := range c.bodies {
		names[i] = b.Name
	}
	next, _ := common.Cycle(names, current, forward)
	return c.Lookup(next)
}
