// Package metrics provides conserved-quantity observers over sampled
// orbits. Symplectic runs are judged by how little energy and angular
// momentum drift across the output samples.
package metrics

import (
	"math"

	"github.com/rokroskar/galpy/internal/orbit"
)

// Metric observes sampled states and reduces them to one diagnostic
// value per run.
type Metric interface {
	Name() string
	Observe(x orbit.State, t float64)
	Value() float64
	Reset()
}

// EnergyDrift tracks the maximum relative drift of total specific energy
// from its value at the first sample. The energy function is supplied by
// the caller (kinetic plus the run's bound potential terms).
type EnergyDrift struct {
	energy  func(orbit.State) float64
	initial float64
	max     float64
	samples int
}

func NewEnergyDrift(energy func(orbit.State) float64) *EnergyDrift {
	return &EnergyDrift{energy: energy}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(x orbit.State, t float64) {
	en := e.energy(x)
	if e.samples == 0 {
		e.initial = en
	}
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(en-e.initial) / math.Abs(e.initial)
		if drift > e.max {
			e.max = drift
		}
	}
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
}

// LzDrift tracks the maximum absolute drift of planar angular momentum
// Lz = x*vy - y*vx. Lz is conserved under axisymmetric potentials only,
// so the drift is reported absolutely rather than relatively.
type LzDrift struct {
	initial float64
	max     float64
	samples int
}

func NewLzDrift() *LzDrift {
	return &LzDrift{}
}

func (l *LzDrift) Name() string { return "lz_drift" }

func (l *LzDrift) Observe(x orbit.State, t float64) {
	lz := x.Lz()
	if l.samples == 0 {
		l.initial = lz
	}
	l.samples++
	drift := math.Abs(lz - l.initial)
	if drift > l.max {
		l.max = drift
	}
}

func (l *LzDrift) Value() float64 { return l.max }

func (l *LzDrift) Reset() {
	l.initial = 0
	l.max = 0
	l.samples = 0
}

// MaxR tracks the largest cylindrical radius reached over the run.
type MaxR struct {
	max float64
}

func NewMaxR() *MaxR { return &MaxR{} }

func (m *MaxR) Name() string { return "max_r" }

func (m *MaxR) Observe(x orbit.State, t float64) {
	if r := x.R(); r > m.max {
		m.max = r
	}
}

func (m *MaxR) Value() float64 { return m.max }

func (m *MaxR) Reset() { m.max = 0 }
