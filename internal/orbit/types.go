package orbit

import "math"

const (
	// HalfDim is the number of position coordinates in the plane.
	HalfDim = 2
	// PhaseDim is the full phase-space dimension (x, y, vx, vy).
	PhaseDim = 2 * HalfDim
)

// State is a flat phase-space vector (x, y, vx, vy).
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// R returns the cylindrical radius of the position part.
func (s State) R() float64 {
	return math.Sqrt(s[0]*s[0] + s[1]*s[1])
}

// Lz returns the planar angular momentum x*vy - y*vx.
func (s State) Lz() float64 {
	return s[0]*s[3] - s[1]*s[2]
}

// Kinetic returns the specific kinetic energy of the velocity part.
func (s State) Kinetic() float64 {
	return 0.5 * (s[2]*s[2] + s[3]*s[3])
}

// Result holds one sampled state per requested output time, in order,
// plus conserved-quantity diagnostics computed over the samples.
type Result struct {
	Times   []float64
	States  []State
	Metrics map[string]float64
}
