package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeParams re-decodes a loosely typed value (yaml params or a script
// result) into T.
func DecodeParams[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

const configFile = "config.yaml"

// ConfigSpec holds the simulation tuning loaded from config.yaml.
type ConfigSpec struct {
	TickRate           int     `yaml:"tick_rate"`
	RenderRate         int     `yaml:"render_rate"`
	ViewportSize       int     `yaml:"viewport_size"`
	ZoomIncrement      float64 `yaml:"zoom_increment"`
	SpreadFactor       float64 `yaml:"spread_factor"`
	SingleFactor       float64 `yaml:"single_factor"`
	MinSeparation      float64 `yaml:"min_separation"`
	MagnifierSize      int     `yaml:"magnifier_size"`
	MagnifierReduction float64 `yaml:"magnifier_reduction"`
	TitleLength        int     `yaml:"title_length"`
	ShootingBody       string  `yaml:"shooting_body"`
}

func DefaultConfig() ConfigSpec {
	return ConfigSpec{
		TickRate:           500,
		RenderRate:         120,
		ViewportSize:       800,
		ZoomIncrement:      1.01,
		SpreadFactor:       3,
		SingleFactor:       10,
		MinSeparation:      1e-3,
		MagnifierSize:      200,
		MagnifierReduction: 3,
		TitleLength:        40,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c ConfigSpec) withDefaults() ConfigSpec {
	d := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.RenderRate <= 0 {
		c.RenderRate = d.RenderRate
	}
	if c.ViewportSize <= 0 {
		c.ViewportSize = d.ViewportSize
	}
	if c.ZoomIncrement <= 1 {
		c.ZoomIncrement = d.ZoomIncrement
	}
	if c.SpreadFactor <= 0 {
		c.SpreadFactor = d.SpreadFactor
	}
	if c.SingleFactor <= 0 {
		c.SingleFactor = d.SingleFactor
	}
	if c.MinSeparation <= 0 {
		c.MinSeparation = d.MinSeparation
	}
	if c.MagnifierSize <= 0 {
		c.MagnifierSize = d.MagnifierSize
	}
	if c.MagnifierReduction <= 0 {
		c.MagnifierReduction = d.MagnifierReduction
	}
	if c.TitleLength <= 3 {
		c.TitleLength = d.TitleLength
	}
	return c
}

func LoadConfigSpec() (ConfigSpec, error) {
	spec, err := LoadSpec[ConfigSpec](configFile)
	if err != nil {
		return DefaultConfig(), err
	}
	return spec.withDefaults(), nil
}

type BodySpec struct {
	Name   string     `yaml:"name"`
	Mass   float64    `yaml:"mass"`
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
}

type CatalogSpec struct {
	Bodies []BodySpec `yaml:"bodies"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EntitySpec places one body. It names a catalog template, describes an
// inline body, or both (inline fields override the template).
type EntitySpec struct {
	Template string     `yaml:"template"`
	Body     *BodySpec  `yaml:"body"`
	Position VectorSpec `yaml:"position"`
	Velocity VectorSpec `yaml:"velocity"`
}

type GeneratorSpec struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params"`
}

type ScenarioSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// TimeAcceleration is simulated seconds per real second. When zero,
	// TimeAccelerationExponent gives it as a power of ten.
	TimeAcceleration         float64         `yaml:"time_acceleration"`
	TimeAccelerationExponent float64         `yaml:"time_acceleration_exponent"`
	OverlayZoom              float64         `yaml:"overlay_zoom"`
	Entities                 []EntitySpec    `yaml:"entities"`
	Generators               []GeneratorSpec `yaml:"generators"`
}

func (s ScenarioSpec) Acceleration() float64 {
	if s.TimeAcceleration != 0 {
		return s.TimeAcceleration
	}
	if s.TimeAccelerationExponent != 0 {
		return math.Pow(10, s.TimeAccelerationExponent)
	}
	return 0
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	hex := "#" + strings.TrimPrefix(s, "#")

	alpha := uint8(255)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:9], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}
	if len(hex) != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
