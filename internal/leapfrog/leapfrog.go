// Package leapfrog implements the symplectic kick-drift-kick integrator
// driving planar orbit integration.
//
// The engine is consumed through a single callback contract: a
// [ForceFunc] mapping (t, position) to acceleration. It chooses one step
// size up front by step-doubling against the combined tolerance scale
// atol + rtol*|y|, then subdivides each output interval into whole
// substeps of at most that size. Symplectic updates favour a fixed step;
// the tolerances control how fine that step is.
package leapfrog

import (
	"fmt"
	"math"

	"github.com/rokroskar/galpy/internal/orbit"
)

// ForceFunc evaluates the acceleration at time t and position q, writing
// it into a. len(a) == len(q) == the half-dimension. The engine may call
// it several times per step and out of order.
type ForceFunc func(t float64, q, a []float64) error

// Config carries the engine tolerances and guards.
type Config struct {
	// Rtol and Atol build the per-component error scale atol + rtol*|y|.
	Rtol float64
	Atol float64
	// MinStep aborts step refinement; below it the tolerance is
	// considered unreachable.
	MinStep float64
	// MaxSteps bounds the total number of substeps across the whole run.
	MaxSteps int
}

func DefaultConfig() Config {
	return Config{
		Rtol:     1e-8,
		Atol:     1e-8,
		MinStep:  1e-10,
		MaxSteps: 100_000_000,
	}
}

// Integrate advances y0 across the output time grid and returns one row
// per grid entry, the first row being the initial state. The state
// layout is flat positions then velocities, halfDim of each.
func Integrate(force ForceFunc, halfDim int, y0 []float64, times []float64, cfg Config) ([][]float64, error) {
	n := 2 * halfDim
	if len(y0) != n {
		return nil, fmt.Errorf("got %d values, want %d: %w", len(y0), n, orbit.ErrDimension)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("empty grid: %w", orbit.ErrTimeGrid)
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return nil, fmt.Errorf("times[%d] < times[%d]: %w", i, i-1, orbit.ErrTimeGrid)
		}
	}

	out := make([][]float64, len(times))
	out[0] = append([]float64(nil), y0...)
	if len(times) == 1 {
		return out, nil
	}

	dt, err := estimateStep(force, halfDim, y0, times, cfg)
	if err != nil {
		return nil, err
	}

	q := append([]float64(nil), y0[:halfDim]...)
	v := append([]float64(nil), y0[halfDim:]...)
	a := make([]float64, halfDim)
	steps := 0

	for i := 1; i < len(times); i++ {
		span := times[i] - times[i-1]
		if span == 0 {
			out[i] = append([]float64(nil), out[i-1]...)
			continue
		}

		ndt := int(math.Ceil(span / dt))
		h := span / float64(ndt)
		t := times[i-1]

		if err := force(t, q, a); err != nil {
			return nil, &orbit.IntegrationError{Step: steps, Time: t, Wrapped: err}
		}
		for k := 0; k < ndt; k++ {
			steps++
			if cfg.MaxSteps > 0 && steps > cfg.MaxSteps {
				return nil, &orbit.IntegrationError{Step: steps, Time: t, Wrapped: orbit.ErrMaxSteps}
			}
			for j := 0; j < halfDim; j++ {
				v[j] += 0.5 * h * a[j]
				q[j] += h * v[j]
			}
			t = times[i-1] + float64(k+1)*h
			if err := force(t, q, a); err != nil {
				return nil, &orbit.IntegrationError{Step: steps, Time: t, Wrapped: err}
			}
			for j := 0; j < halfDim; j++ {
				v[j] += 0.5 * h * a[j]
			}
		}

		row := make([]float64, n)
		copy(row, q)
		copy(row[halfDim:], v)
		out[i] = row
	}

	return out, nil
}

// estimateStep picks the step size by step-doubling: one full step is
// compared against two half steps, halving until the scaled difference
// is within tolerance.
func estimateStep(force ForceFunc, halfDim int, y0, times []float64, cfg Config) (float64, error) {
	dt := 0.0
	for i := 1; i < len(times); i++ {
		if span := times[i] - times[i-1]; span > 0 {
			dt = span
			break
		}
	}
	if dt == 0 {
		// All output intervals are zero-length; any step will do.
		return 1, nil
	}

	scale := make([]float64, 2*halfDim)
	for i, y := range y0 {
		scale[i] = cfg.Atol + cfg.Rtol*math.Abs(y)
	}

	t0 := times[0]
	full := make([]float64, 2*halfDim)
	half := make([]float64, 2*halfDim)
	for {
		copy(full, y0)
		copy(half, y0)
		if err := step(force, halfDim, full, t0, dt); err != nil {
			return 0, &orbit.IntegrationError{Time: t0, Wrapped: err}
		}
		if err := step(force, halfDim, half, t0, dt/2); err != nil {
			return 0, &orbit.IntegrationError{Time: t0, Wrapped: err}
		}
		if err := step(force, halfDim, half, t0+dt/2, dt/2); err != nil {
			return 0, &orbit.IntegrationError{Time: t0, Wrapped: err}
		}

		errMax := 0.0
		for i := range full {
			diff := math.Abs(full[i] - half[i])
			if math.IsNaN(diff) {
				errMax = math.Inf(1)
				break
			}
			// An exactly zero error meets any tolerance, including a
			// zero scale; dividing would make it 0/0.
			if diff == 0 {
				continue
			}
			if e := diff / scale[i]; e > errMax {
				errMax = e
			}
		}
		if errMax <= 1 {
			return dt, nil
		}
		dt /= 2
		if dt < cfg.MinStep {
			return 0, fmt.Errorf("dt = %g: %w", dt, orbit.ErrStepTooSmall)
		}
	}
}

// step performs one in-place kick-drift-kick update of y over h.
func step(force ForceFunc, halfDim int, y []float64, t, h float64) error {
	q := y[:halfDim]
	v := y[halfDim:]
	a := make([]float64, halfDim)

	if err := force(t, q, a); err != nil {
		return err
	}
	for j := 0; j < halfDim; j++ {
		v[j] += 0.5 * h * a[j]
		q[j] += h * v[j]
	}
	if err := force(t+h, q, a); err != nil {
		return err
	}
	for j := 0; j < halfDim; j++ {
		v[j] += 0.5 * h * a[j]
	}
	return nil
}
