package orbit

import (
	"errors"
	"math"
	"testing"
)

func TestToPolarRoundTrip(t *testing.T) {
	points := [][2]float64{
		{1, 0}, {0.5, 0.5}, {0.3, -0.7}, {2, 3}, {1e-3, -1e-3}, {5, -0.01},
	}
	for _, p := range points {
		r, phi, err := ToPolar(p[0], p[1])
		if err != nil {
			t.Fatalf("ToPolar(%v, %v): %v", p[0], p[1], err)
		}
		x, y := FromPolar(r, phi)
		if math.Abs(x-p[0]) > 1e-12 || math.Abs(y-p[1]) > 1e-12 {
			t.Errorf("round trip (%v, %v): got (%v, %v)", p[0], p[1], x, y)
		}
	}
}

func TestToPolarQuadrants(t *testing.T) {
	cases := []struct {
		x, y     float64
		min, max float64
	}{
		{1, 1, 0, math.Pi},
		{-1, 1, 0, math.Pi},
		{1, 0, 0, math.Pi},
		{-1, -1, math.Pi, 2 * math.Pi},
		{1, -1, math.Pi, 2 * math.Pi},
		{0, -1, math.Pi, 2 * math.Pi},
	}
	for _, c := range cases {
		_, phi, err := ToPolar(c.x, c.y)
		if err != nil {
			t.Fatalf("ToPolar(%v, %v): %v", c.x, c.y, err)
		}
		if phi < c.min || phi > c.max {
			t.Errorf("phi at (%v, %v) = %v, want in [%v, %v]", c.x, c.y, phi, c.min, c.max)
		}
	}
}

func TestToPolarOrigin(t *testing.T) {
	_, _, err := ToPolar(0, 0)
	if !errors.Is(err, ErrOriginSingularity) {
		t.Errorf("expected ErrOriginSingularity, got %v", err)
	}
}
