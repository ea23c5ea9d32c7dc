package orbit

import "errors"

// Domain errors for orbit integration.
var (
	// ErrUnknownPotential indicates a potential type code with no table entry.
	ErrUnknownPotential = errors.New("orbit: unknown potential type code")

	// ErrParamCount indicates the flat parameter sequence does not match
	// the summed parameter counts of the requested potentials.
	ErrParamCount = errors.New("orbit: potential parameter count mismatch")

	// ErrOriginSingularity indicates a force evaluation at R = 0, where
	// the polar decomposition is undefined.
	ErrOriginSingularity = errors.New("orbit: force evaluation at R = 0")

	// ErrTimeGrid indicates a time grid that is empty or decreasing.
	ErrTimeGrid = errors.New("orbit: time grid must be non-decreasing")

	// ErrStepTooSmall indicates the symplectic step needed to reach the
	// requested tolerance fell below the minimum.
	ErrStepTooSmall = errors.New("orbit: symplectic step below minimum")

	// ErrMaxSteps indicates the integration step budget was exhausted.
	ErrMaxSteps = errors.New("orbit: step budget exhausted")

	// ErrDimension indicates a state vector of the wrong length.
	ErrDimension = errors.New("orbit: state dimension mismatch")
)

// IntegrationError wraps an engine failure with the step and time at
// which it occurred.
type IntegrationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *IntegrationError) Error() string {
	return e.Wrapped.Error()
}

func (e *IntegrationError) Unwrap() error {
	return e.Wrapped
}
