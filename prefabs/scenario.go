package prefabs

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/ecs/component"
	"github.com/milk9111/orbitsim/physics"
)

// ErrInvalidScenario is wrapped by every scenario validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a validated starting configuration ready to seed a world.
type Scenario struct {
	Name             string
	Description      string
	Particles        []physics.Particle
	TimeAcceleration float64
	// OverlayZoom is 0 when the scenario leaves the magnifier to config.
	OverlayZoom float64
}

func LoadScenarioSpec(name string) (ScenarioSpec, error) {
	return LoadSpec[ScenarioSpec](scenarioPath(name))
}

// LoadScenario reads the named scenario and resolves it against catalog.
func LoadScenario(name string, catalog *Catalog) (*Scenario, error) {
	spec, err := LoadScenarioSpec(name)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = name
	}
	return BuildScenario(spec, catalog)
}

// BuildScenario resolves templates, runs generators and validates the result.
func BuildScenario(spec ScenarioSpec, catalog *Catalog) (*Scenario, error) {
	accel := spec.Acceleration()
	if !(accel > 0) || math.IsInf(accel, 1) {
		return nil, fmt.Errorf("prefabs: scenario %q: time acceleration must be positive, got %v: %w", spec.Name, accel, ErrInvalidScenario)
	}

	sc := &Scenario{
		Name:             spec.Name,
		Description:      spec.Description,
		TimeAcceleration: accel,
		OverlayZoom:      spec.OverlayZoom,
	}
	if sc.OverlayZoom < 0 {
		sc.OverlayZoom = 0
	}

	for i, es := range spec.Entities {
		p, err := es.particle(catalog)
		if err != nil {
			return nil, fmt.Errorf("prefabs: scenario %q: entity %d: %w", spec.Name, i, err)
		}
		sc.Particles = append(sc.Particles, p)
	}

	for i, gs := range spec.Generators {
		gen, ok := generatorRegistry[strings.ToLower(gs.Type)]
		if !ok {
			return nil, fmt.Errorf("prefabs: scenario %q: generator %d: unknown type %q: %w", spec.Name, i, gs.Type, ErrInvalidScenario)
		}
		generated, err := gen(gs.Params, catalog, sc.Particles)
		if err != nil {
			return nil, fmt.Errorf("prefabs: scenario %q: generator %d (%s): %w", spec.Name, i, gs.Type, err)
		}
		for j, p := range generated {
			if err := validateParticle(p); err != nil {
				return nil, fmt.Errorf("prefabs: scenario %q: generator %d body %d: %w", spec.Name, i, j, err)
			}
		}
		sc.Particles = append(sc.Particles, generated...)
	}

	if len(sc.Particles) == 0 {
		return nil, fmt.Errorf("prefabs: scenario %q: no entities: %w", spec.Name, ErrInvalidScenario)
	}

	log.Printf("prefabs: built scenario %q with %d bodies", sc.Name, len(sc.Particles))
	return sc, nil
}

func (es EntitySpec) particle(catalog *Catalog) (physics.Particle, error) {
	var body component.Body
	switch {
	case es.Template != "":
		b, ok := catalog.Lookup(es.Template)
		if !ok {
			return physics.Particle{}, fmt.Errorf("unknown body template %q: %w", es.Template, ErrInvalidScenario)
		}
		body = b
	case es.Body == nil:
		return physics.Particle{}, fmt.Errorf("entity needs a template or a body: %w", ErrInvalidScenario)
	}

	if es.Body != nil {
		if es.Body.Name != "" {
			body.Name = es.Body.Name
		}
		if es.Body.Mass != 0 || es.Template == "" {
			body.Mass = es.Body.Mass
		}
		if es.Body.Radius != 0 || es.Template == "" {
			body.Radius = es.Body.Radius
		}
		if es.Body.Color != nil {
			body.Color = es.Body.Color.NRGBA
		} else if es.Template == "" {
			body.Color = defaultBodyColor
		}
	}

	if strings.TrimSpace(body.Name) == "" {
		body.Name = "Unnamed"
	}

	p := physics.Particle{
		Body:     body,
		Position: cp.Vector{X: es.Position.X, Y: es.Position.Y},
		Velocity: cp.Vector{X: es.Velocity.X, Y: es.Velocity.Y},
	}
	if err := validateParticle(p); err != nil {
		return physics.Particle{}, err
	}
	return p, nil
}

func validateParticle(p physics.Particle) error {
	if !(p.Body.Mass > 0) || math.IsInf(p.Body.Mass, 1) {
		return fmt.Errorf("body %q: mass must be positive, got %v: %w", p.Body.Name, p.Body.Mass, ErrInvalidScenario)
	}
	if !(p.Body.Radius >= 0) || math.IsInf(p.Body.Radius, 1) {
		return fmt.Errorf("body %q: radius must be finite and not negative, got %v: %w", p.Body.Name, p.Body.Radius, ErrInvalidScenario)
	}
	return nil
}
