package potential

import (
	"fmt"
	"sort"

	"github.com/rokroskar/galpy/internal/orbit"
)

// ForceFunc evaluates one force component of a potential at (R, phi)
// given the potential's bound parameters.
type ForceFunc func(r, phi float64, args []float64) float64

// Descriptor describes one potential family: its force laws, potential
// value, and the number of parameters a bound instance requires.
type Descriptor struct {
	Name     string
	NArgs    int
	RForce   ForceFunc
	PhiForce ForceFunc
	Value    ForceFunc
}

// Potential type codes, matching the wire codes used by the toolkit's
// Python layer.
const (
	CodeLogarithmicHalo = 0
	CodeKepler          = 1
	CodeHernquist       = 2
	CodeIsochrone       = 3
	CodeCosmphiDisk     = 4
)

var table = map[int]Descriptor{
	CodeLogarithmicHalo: {
		Name:     "logarithmic-halo",
		NArgs:    2,
		RForce:   logHaloRForce,
		PhiForce: zeroForce,
		Value:    logHaloValue,
	},
	CodeKepler: {
		Name:     "kepler",
		NArgs:    1,
		RForce:   keplerRForce,
		PhiForce: zeroForce,
		Value:    keplerValue,
	},
	CodeHernquist: {
		Name:     "hernquist",
		NArgs:    2,
		RForce:   hernquistRForce,
		PhiForce: zeroForce,
		Value:    hernquistValue,
	},
	CodeIsochrone: {
		Name:     "isochrone",
		NArgs:    2,
		RForce:   isochroneRForce,
		PhiForce: zeroForce,
		Value:    isochroneValue,
	},
	CodeCosmphiDisk: {
		Name:     "cosmphi-disk",
		NArgs:    4,
		RForce:   cosmphiRForce,
		PhiForce: cosmphiPhiForce,
		Value:    cosmphiValue,
	},
}

// Lookup returns the descriptor for a type code.
func Lookup(code int) (Descriptor, error) {
	d, ok := table[code]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %d", orbit.ErrUnknownPotential, code)
	}
	return d, nil
}

// Register adds a potential family to the table. It is meant to be called
// during startup, before any integration runs; registering an existing
// code is an error.
func Register(code int, d Descriptor) error {
	if _, ok := table[code]; ok {
		return fmt.Errorf("potential: code %d already registered", code)
	}
	if d.RForce == nil || d.NArgs < 0 {
		return fmt.Errorf("potential: invalid descriptor for code %d", code)
	}
	if d.PhiForce == nil {
		d.PhiForce = zeroForce
	}
	if d.Value == nil {
		d.Value = zeroForce
	}
	table[code] = d
	return nil
}

// Codes returns the registered type codes in ascending order.
func Codes() []int {
	codes := make([]int, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
