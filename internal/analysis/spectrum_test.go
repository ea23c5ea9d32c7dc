package analysis

import (
	"math"
	"testing"

	"github.com/rokroskar/galpy/internal/orbit"
)

func TestPowerSpectrumPureTone(t *testing.T) {
	// 4 Hz tone sampled at 128 Hz for 1 s peaks in bin 4.
	n := 128
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	maxIdx := 0
	for i := range ps {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx != 4 {
		t.Errorf("peak at bin %d, want 4", maxIdx)
	}
}

func TestDominantFrequency(t *testing.T) {
	// Padded length 8 at rate 2: bin 2 sits at 2*2/8 = 0.5.
	ps := []float64{0, 0.1, 5, 0.2}
	if got := DominantFrequency(ps, 2); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("dominant frequency = %v, want 0.5", got)
	}
	if DominantFrequency(nil, 2) != 0 {
		t.Errorf("empty spectrum should yield 0")
	}
}

func TestDominantFrequencyPaddedTone(t *testing.T) {
	// 100 samples at 10 Hz pad to 128; the reported frequency must stay
	// on the sampling-rate axis, not the padded-duration axis.
	n := 100
	dt := 0.1
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 2 * float64(i) * dt)
	}

	ps := PowerSpectrum(data)
	got := DominantFrequency(ps, 1/dt)
	if math.Abs(got-2) > 0.08 {
		t.Errorf("dominant frequency = %v, want 2 within one bin", got)
	}
}

func TestRadialSpectrumConstantR(t *testing.T) {
	// Circular orbit: R is constant, so no bin should dominate.
	states := make([]orbit.State, 64)
	for i := range states {
		phi := float64(i) * 0.1
		states[i] = orbit.State{math.Cos(phi), math.Sin(phi), 0, 0}
	}
	ps := RadialSpectrum(states)
	for i, p := range ps {
		if p > 1e-9 {
			t.Errorf("bin %d = %v on constant R", i, p)
		}
	}
}
