package prefabs

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/orbitsim/common"
	"github.com/milk9111/orbitsim/ecs/component"
	"github.com/milk9111/orbitsim/physics"
)

// generatorFn produces extra bodies for a scenario. existing holds the
// bodies declared before the generator runs.
type generatorFn func(params map[string]any, catalog *Catalog, existing []physics.Particle) ([]physics.Particle, error)

var generatorRegistry = map[string]generatorFn{
	"belt":   generateBelt,
	"script": generateScript,
}

const scriptTimeout = 2 * time.Second

type beltParams struct {
	Name       string  `yaml:"name"`
	Count      int     `yaml:"count"`
	Radius     float64 `yaml:"radius"`
	Jitter     float64 `yaml:"jitter"`
	Around     string  `yaml:"around"`
	Template   string  `yaml:"template"`
	Mass       float64 `yaml:"mass"`
	BodyRadius float64 `yaml:"body_radius"`
	Seed       int64   `yaml:"seed"`
}

// generateBelt scatters bodies on a noisy ring in circular orbit around a
// named body, or around the barycentre of the existing bodies.
func generateBelt(raw map[string]any, catalog *Catalog, existing []physics.Particle) ([]physics.Particle, error) {
	params, err := DecodeParams[beltParams](raw)
	if err != nil {
		return nil, fmt.Errorf("decode belt params: %w", err)
	}
	if params.Count <= 0 || params.Radius <= 0 {
		return nil, fmt.Errorf("belt needs a positive count and radius: %w", ErrInvalidScenario)
	}
	if params.Name == "" {
		params.Name = "Belt"
	}

	template := component.Body{Mass: params.Mass, Radius: params.BodyRadius}
	if params.Template != "" {
		b, ok := catalog.Lookup(params.Template)
		if !ok {
			return nil, fmt.Errorf("unknown body template %q: %w", params.Template, ErrInvalidScenario)
		}
		template = b
		if params.Mass > 0 {
			template.Mass = params.Mass
		}
		if params.BodyRadius > 0 {
			template.Radius = params.BodyRadius
		}
	}

	centre := physics.Particle{Position: physics.Barycentre(existing)}
	for _, p := range existing {
		centre.Body.Mass += p.Body.Mass
	}
	if params.Around != "" {
		found := false
		for _, p := range existing {
			if strings.EqualFold(p.Body.Name, params.Around) {
				centre, found = p, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("belt centre %q not declared before the generator: %w", params.Around, ErrInvalidScenario)
		}
	}

	noise := perlin.NewPerlin(2, 2, 3, params.Seed)
	out := make([]physics.Particle, 0, params.Count)
	for i := 0; i < params.Count; i++ {
		t := float64(i) / float64(params.Count)
		n := noise.Noise1D(t * 8)
		m := noise.Noise1D(t*8 + 100)

		r := params.Radius * (1 + params.Jitter*n)
		theta := 2 * math.Pi * t
		mass := math.Max(template.Mass*(1+0.5*m), template.Mass*0.1)

		var v cp.Vector
		if centre.Body.Mass > 0 && r > 0 {
			speed := math.Sqrt(common.G * centre.Body.Mass / r)
			v = common.ToCartesian(speed, theta+math.Pi/2)
		}

		out = append(out, physics.Particle{
			Body: component.Body{
				Name:   fmt.Sprintf("%s %d", params.Name, i+1),
				Mass:   mass,
				Radius: template.Radius,
				Color:  beltColor(template.Color, m),
			},
			Position: centre.Position.Add(common.ToCartesian(r, theta)),
			Velocity: centre.Velocity.Add(v),
		})
	}
	return out, nil
}

// beltColor shifts the base hue by the mass noise so neighbouring bodies are
// told apart.
func beltColor(base color.NRGBA, n float64) color.NRGBA {
	c, ok := colorful.MakeColor(base)
	if !ok || base.A == 0 {
		c = colorful.Hcl(40, 0.3, 0.7)
	}
	h, chroma, l := c.Hcl()
	shifted := colorful.Hcl(math.Mod(h+25*n+360, 360), chroma, l).Clamped()
	r, g, b := shifted.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

type scriptParams struct {
	Script string         `yaml:"script"`
	Args   map[string]any `yaml:"args"`
}

type scriptBody struct {
	Template string  `yaml:"template"`
	Name     string  `yaml:"name"`
	Mass     float64 `yaml:"mass"`
	Radius   float64 `yaml:"radius"`
	Color    string  `yaml:"color"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
}

// generateScript runs a tengo script that fills a global `bodies` array.
// The script sees `args`, `catalog` (name -> {mass, radius}), `existing`
// and the gravitational constant `G`.
func generateScript(raw map[string]any, catalog *Catalog, existing []physics.Particle) ([]physics.Particle, error) {
	params, err := DecodeParams[scriptParams](raw)
	if err != nil {
		return nil, fmt.Errorf("decode script params: %w", err)
	}
	if strings.TrimSpace(params.Script) == "" {
		return nil, fmt.Errorf("script generator needs a script: %w", ErrInvalidScenario)
	}

	src, err := LoadScript(params.Script)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", params.Script, err)
	}

	args := params.Args
	if args == nil {
		args = map[string]any{}
	}
	known := map[string]any{}
	for _, b := range catalog.Bodies() {
		known[b.Name] = map[string]any{"mass": b.Mass, "radius": b.Radius}
	}
	declared := make([]any, 0, len(existing))
	for _, p := range existing {
		declared = append(declared, map[string]any{
			"name": p.Body.Name, "mass": p.Body.Mass,
			"x": p.Position.X, "y": p.Position.Y,
			"vx": p.Velocity.X, "vy": p.Velocity.Y,
		})
	}

	script := tengo.NewScript(src)
	for name, value := range map[string]any{
		"args":     args,
		"catalog":  known,
		"existing": declared,
		"G":        common.G,
		"bodies":   []any{},
	} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("script %s: bind %s: %w", params.Script, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", params.Script, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("script %s: run: %w", params.Script, err)
	}

	var out []physics.Particle
	for i, item := range compiled.Get("bodies").Array() {
		sb, err := DecodeParams[scriptBody](item)
		if err != nil {
			return nil, fmt.Errorf("script %s: body %d: %w", params.Script, i, err)
		}
		es := EntitySpec{
			Template: sb.Template,
			Body:     &BodySpec{Name: sb.Name, Mass: sb.Mass, Radius: sb.Radius},
			Position: VectorSpec{X: sb.X, Y: sb.Y},
			Velocity: VectorSpec{X: sb.VX, Y: sb.VY},
		}
		if sb.Color != "" {
			c, err := ParseColor(sb.Color)
			if err != nil {
				return nil, fmt.Errorf("script %s: body %d: %w", params.Script, i, err)
			}
			es.Body.Color = &YAMLColor{NRGBA: c}
		}
		p, err := es.particle(catalog)
		if err != nil {
			return nil, fmt.Errorf("script %s: body %d: %w", params.Script, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}
