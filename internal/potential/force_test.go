package potential

import (
	"errors"
	"math"
	"testing"

	"github.com/rokroskar/galpy/internal/orbit"
)

func TestRectForcePureRadial(t *testing.T) {
	terms, err := BuildTerms([]int{CodeLogarithmicHalo}, []float64{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	defer terms.Release()

	// On the +x axis a radial force points along -x.
	ax, ay, err := terms.RectForce(0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ax-(-1)) > 1e-14 || math.Abs(ay) > 1e-14 {
		t.Errorf("force at (1,0) = (%v, %v), want (-1, 0)", ax, ay)
	}

	// On the -y axis it points along +y.
	ax, ay, err = terms.RectForce(0, 0, -2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ax) > 1e-14 || math.Abs(ay-0.5) > 1e-14 {
		t.Errorf("force at (0,-2) = (%v, %v), want (0, 0.5)", ax, ay)
	}
}

func TestRectForceTangential(t *testing.T) {
	// A pure m=2 disk at phi=pi/4 exerts only a tangential force on the
	// unit circle (the radial part vanishes at the cos node).
	terms, err := BuildTerms([]int{CodeCosmphiDisk}, []float64{0.5, 2, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	defer terms.Release()

	x := math.Cos(math.Pi / 4)
	y := math.Sin(math.Pi / 4)
	ax, ay, err := terms.RectForce(0, x, y)
	if err != nil {
		t.Fatal(err)
	}

	// Tangential direction at phi=pi/4 is (-sin, cos); phiforce there is
	// amp*m = 1, and the 1/R factor is 1 on the unit circle.
	wantX := -math.Sin(math.Pi/4) * 1.0
	wantY := math.Cos(math.Pi/4) * 1.0
	if math.Abs(ax-wantX) > 1e-12 || math.Abs(ay-wantY) > 1e-12 {
		t.Errorf("force = (%v, %v), want (%v, %v)", ax, ay, wantX, wantY)
	}
}

func TestRectForceOrigin(t *testing.T) {
	terms, err := BuildTerms([]int{CodeLogarithmicHalo}, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	defer terms.Release()

	_, _, err = terms.RectForce(0, 0, 0)
	if !errors.Is(err, orbit.ErrOriginSingularity) {
		t.Errorf("expected ErrOriginSingularity, got %v", err)
	}
}

func TestRectForceRepeatable(t *testing.T) {
	terms, err := BuildTerms([]int{CodeIsochrone}, []float64{1, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	defer terms.Release()

	ax1, ay1, _ := terms.RectForce(0, 0.3, 0.4)
	ax2, ay2, _ := terms.RectForce(5, 0.3, 0.4)
	if ax1 != ax2 || ay1 != ay2 {
		t.Errorf("evaluator retained state between calls")
	}
}
