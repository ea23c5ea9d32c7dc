// Package sim drives single-orbit and ensemble integrations: it binds a
// potential request to force terms, hands the force evaluator to the
// symplectic engine, and guarantees the terms are released on every exit
// path.
package sim

import (
	"fmt"

	"github.com/rokroskar/galpy/internal/leapfrog"
	"github.com/rokroskar/galpy/internal/metrics"
	"github.com/rokroskar/galpy/internal/orbit"
	"github.com/rokroskar/galpy/internal/potential"
)

// Request is one integration call: an initial rectangular state, the
// output time grid (first entry is the initial epoch), the potential
// superposition as type codes plus a flat parameter sequence, and the
// tolerances forwarded to the engine.
type Request struct {
	State  orbit.State
	Times  []float64
	Codes  []int
	Params []float64
	Rtol   float64
	Atol   float64
}

// Driver integrates one orbit per call. A Driver with no extra metrics
// and no observer installed is safe for concurrent use: each call owns
// its force terms exclusively. Extra metrics and the observer are shared
// across calls and observe from whichever goroutine integrates.
type Driver struct {
	engine  leapfrog.Config
	extra   []metrics.Metric
	observe func(x orbit.State, t float64)
}

func New() *Driver {
	return &Driver{engine: leapfrog.DefaultConfig()}
}

// AddMetric registers an additional per-run metric. Not safe to call
// concurrently with Integrate.
func (d *Driver) AddMetric(m metrics.Metric) { d.extra = append(d.extra, m) }

// SetObserver installs a callback invoked for each output sample.
func (d *Driver) SetObserver(fn func(x orbit.State, t float64)) { d.observe = fn }

// Integrate runs one orbit. The force terms are built first; a build
// failure propagates before the engine is ever invoked, and the terms
// are released exactly once regardless of outcome.
func (d *Driver) Integrate(req Request) (*orbit.Result, error) {
	if len(req.State) != orbit.PhaseDim {
		return nil, fmt.Errorf("initial state has %d values, want %d: %w",
			len(req.State), orbit.PhaseDim, orbit.ErrDimension)
	}

	terms, err := potential.BuildTerms(req.Codes, req.Params)
	if err != nil {
		return nil, err
	}
	defer terms.Release()

	cfg := d.engine
	cfg.Rtol = req.Rtol
	cfg.Atol = req.Atol

	force := func(t float64, q, a []float64) error {
		ax, ay, err := terms.RectForce(t, q[0], q[1])
		if err != nil {
			return err
		}
		a[0], a[1] = ax, ay
		return nil
	}

	rows, err := leapfrog.Integrate(force, orbit.HalfDim, req.State, req.Times, cfg)
	if err != nil {
		return nil, err
	}

	result := &orbit.Result{
		Times:   append([]float64(nil), req.Times...),
		States:  make([]orbit.State, len(rows)),
		Metrics: make(map[string]float64),
	}
	for i, row := range rows {
		result.States[i] = orbit.State(row)
	}

	ms := []metrics.Metric{
		metrics.NewEnergyDrift(terms.Energy),
		metrics.NewLzDrift(),
		metrics.NewMaxR(),
	}
	ms = append(ms, d.extra...)
	for _, m := range ms {
		m.Reset()
	}
	for i, s := range result.States {
		for _, m := range ms {
			m.Observe(s, result.Times[i])
		}
		if d.observe != nil {
			d.observe(s, result.Times[i])
		}
	}
	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
