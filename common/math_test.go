package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestDistance(t *testing.T) {
	if got := Distance(cp.Vector{}, cp.Vector{X: 3, Y: 4}); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestBearing(t *testing.T) {
	cases := []struct {
		name string
		to   cp.Vector
		deg  float64
	}{
		{"up", cp.Vector{X: 0, Y: -1}, 0},
		{"upper_right", cp.Vector{X: 1, Y: -1}, 45},
		{"right", cp.Vector{X: 1, Y: 0}, 90},
		{"lower_right", cp.Vector{X: 1, Y: 1}, 135},
		{"down", cp.Vector{X: 0, Y: 1}, 180},
		{"lower_left", cp.Vector{X: -1, Y: 1}, 225},
		{"left", cp.Vector{X: -1, Y: 0}, 270},
		{"upper_left", cp.Vector{X: -1, Y: -1}, 315},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := Bearing(cp.Vector{}, c.to)
			if b < 0 || b >= 2*math.Pi {
				t.Fatalf("bearing %v outside [0, 2π)", b)
			}
			if got := b * 180 / math.Pi; math.Abs(got-c.deg) > 1e-9 {
				t.Fatalf("expected %v degrees, got %v", c.deg, got)
			}
		})
	}
}

func TestBearingFromOffsetOrigin(t *testing.T) {
	// lower-right quadrant relative to a non-zero origin
	b := Bearing(cp.Vector{X: 10, Y: -5}, cp.Vector{X: 11, Y: -4})
	if got := b * 180 / math.Pi; math.Abs(got-135) > 1e-9 {
		t.Fatalf("expected 135 degrees, got %v", got)
	}
}

func TestResolve(t *testing.T) {
	got := Resolve(cp.Vector{X: 1, Y: 1}, cp.Vector{X: 1, Y: 2})
	if got.X != 2 || got.Y != 3 {
		t.Fatalf("expected (2, 3), got %v", got)
	}
	if zero := Resolve(); zero.X != 0 || zero.Y != 0 {
		t.Fatalf("expected zero vector, got %v", zero)
	}
}

func TestToCartesian(t *testing.T) {
	cases := []struct {
		name    string
		bearing float64
		want    cp.Vector
	}{
		{"up", 0, cp.Vector{X: 0, Y: -1}},
		{"right", math.Pi / 2, cp.Vector{X: 1, Y: 0}},
		{"down", math.Pi, cp.Vector{X: 0, Y: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ToCartesian(1, c.bearing)
			if math.Abs(got.X-c.want.X) > 1e-12 || math.Abs(got.Y-c.want.Y) > 1e-12 {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestToCartesianInvertsBearing(t *testing.T) {
	to := cp.Vector{X: 3, Y: -7}
	got := ToCartesian(Distance(cp.Vector{}, to), Bearing(cp.Vector{}, to))
	if math.Abs(got.X-to.X) > 1e-9 || math.Abs(got.Y-to.Y) > 1e-9 {
		t.Fatalf("expected %v, got %v", to, got)
	}
}

func TestSphereVolume(t *testing.T) {
	if v := VolumeFromRadius(2); math.Abs(v-33.51) > 0.01 {
		t.Fatalf("expected ~33.51, got %v", v)
	}
	if r := RadiusFromVolume(33.51); math.Abs(r-2) > 0.01 {
		t.Fatalf("expected ~2, got %v", r)
	}

	for _, r := range []float64{1e-6, 0.5, 1, 6.37e6, 6.96e8} {
		got := RadiusFromVolume(VolumeFromRadius(r))
		if math.Abs(got-r)/r > 1e-9 {
			t.Fatalf("round trip for %v gave %v", r, got)
		}
	}
}

func TestGreatestCardinalSeparation(t *testing.T) {
	cases := []struct {
		name   string
		points []cp.Vector
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []cp.Vector{{X: 4, Y: 4}}, 0},
		{"vertical_wins", []cp.Vector{{X: 0, Y: 0}, {X: 9, Y: 10}}, 10},
		{"horizontal_wins", []cp.Vector{{X: -6, Y: 1}, {X: 0, Y: 2}, {X: 6, Y: 0}}, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := GreatestCardinalSeparation(c.points); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestCycle(t *testing.T) {
	items := []string{"a", "b", "c"}
	cases := []struct {
		name    string
		items   []string
		current string
		forward bool
		want    string
		ok      bool
	}{
		{"forward", items, "a", true, "b", true},
		{"forward_wraps", items, "c", true, "a", true},
		{"backward", items, "b", false, "a", true},
		{"backward_wraps", items, "a", false, "c", true},
		{"absent_forward_starts_first", items, "x", true, "a", true},
		{"absent_backward_starts_last", items, "x", false, "c", true},
		{"empty_unchanged", nil, "x", true, "x", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Cycle(c.items, c.current, c.forward)
			if got != c.want || ok != c.ok {
				t.Fatalf("expected (%q, %v), got (%q, %v)", c.want, c.ok, got, ok)
			}
		})
	}
}
