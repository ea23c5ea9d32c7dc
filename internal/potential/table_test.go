package potential

import (
	"errors"
	"math"
	"testing"

	"github.com/rokroskar/galpy/internal/orbit"
)

func TestLookupKnownCodes(t *testing.T) {
	for _, code := range Codes() {
		d, err := Lookup(code)
		if err != nil {
			t.Fatalf("Lookup(%d): %v", code, err)
		}
		if d.RForce == nil || d.PhiForce == nil || d.Value == nil {
			t.Errorf("code %d has nil force law", code)
		}
	}
}

func TestLookupUnknownCode(t *testing.T) {
	_, err := Lookup(99)
	if !errors.Is(err, orbit.ErrUnknownPotential) {
		t.Errorf("expected ErrUnknownPotential, got %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	err := Register(CodeKepler, Descriptor{Name: "dup", NArgs: 1, RForce: keplerRForce})
	if err == nil {
		t.Errorf("expected error registering existing code")
	}
}

func TestForceLawClosedForms(t *testing.T) {
	cases := []struct {
		name string
		fn   ForceFunc
		r    float64
		phi  float64
		args []float64
		want float64
	}{
		{"loghalo unit circle", logHaloRForce, 1, 0, []float64{1, 0}, -1},
		{"loghalo cored", logHaloRForce, 2, 0, []float64{1.5, 1}, -1.5 * 2 / 5},
		{"kepler", keplerRForce, 2, 0, []float64{4}, -1},
		{"hernquist", hernquistRForce, 1, 0, []float64{4, 1}, -1},
		{"isochrone b=0 is kepler", isochroneRForce, 2, 0, []float64{4, 0}, -1},
		{"cosmphi radial", cosmphiRForce, 1, 0, []float64{0.5, 2, 1, 0}, -0.5},
		{"cosmphi angular peak", cosmphiPhiForce, 1, math.Pi / 4, []float64{0.5, 2, 1, 0}, 0.5 * 2},
		{"cosmphi angular node", cosmphiPhiForce, 1, 0, []float64{0.5, 2, 1, 0}, 0},
	}
	for _, c := range cases {
		got := c.fn(c.r, c.phi, c.args)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestValueForceConsistency(t *testing.T) {
	// Radial force should match -dPhi/dR by central difference.
	laws := []struct {
		name   string
		rforce ForceFunc
		value  ForceFunc
		args   []float64
	}{
		{"loghalo", logHaloRForce, logHaloValue, []float64{1.3, 0.2}},
		{"kepler", keplerRForce, keplerValue, []float64{2.1}},
		{"hernquist", hernquistRForce, hernquistValue, []float64{1.7, 0.6}},
		{"isochrone", isochroneRForce, isochroneValue, []float64{1.1, 0.9}},
	}
	const h = 1e-6
	for _, l := range laws {
		for _, r := range []float64{0.5, 1.0, 2.5} {
			want := -(l.value(r+h, 0, l.args) - l.value(r-h, 0, l.args)) / (2 * h)
			got := l.rforce(r, 0, l.args)
			if math.Abs(got-want) > 1e-5 {
				t.Errorf("%s at R=%v: Rforce %v, -dPhi/dR %v", l.name, r, got, want)
			}
		}
	}
}
