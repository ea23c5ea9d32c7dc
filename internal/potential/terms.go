package potential

import (
	"fmt"

	"github.com/rokroskar/galpy/internal/orbit"
)

// Term is one potential bound to its concrete parameter values. It owns
// its args copy until released.
type Term struct {
	desc Descriptor
	args []float64
}

func (t *Term) Name() string { return t.desc.Name }

func (t *Term) NArgs() int { return t.desc.NArgs }

// Args returns the bound parameter values. The slice is owned by the
// term and becomes invalid after release.
func (t *Term) Args() []float64 { return t.args }

func (t *Term) release() {
	if t.args != nil {
		putArgs(t.args)
		t.args = nil
	}
}

// Terms is an ordered sequence of bound force terms. Forces sum
// commutatively; the order only preserves the request for debuggability.
type Terms []*Term

// BuildTerms decodes a sequence of potential type codes and a single flat
// parameter sequence into bound terms. Each term copies exactly NArgs
// values from the current read position. Any failure releases the terms
// built so far before returning.
func BuildTerms(codes []int, params []float64) (Terms, error) {
	terms := make(Terms, 0, len(codes))
	rest := params
	for i, code := range codes {
		d, err := Lookup(code)
		if err != nil {
			terms.Release()
			return nil, fmt.Errorf("potential %d: %w", i, err)
		}
		if len(rest) < d.NArgs {
			terms.Release()
			return nil, fmt.Errorf("potential %d (%s): need %d params, have %d: %w",
				i, d.Name, d.NArgs, len(rest), orbit.ErrParamCount)
		}
		args := getArgs(d.NArgs)
		copy(args, rest[:d.NArgs])
		rest = rest[d.NArgs:]
		terms = append(terms, &Term{desc: d, args: args})
	}
	if len(rest) != 0 {
		terms.Release()
		return nil, fmt.Errorf("%d unconsumed params: %w", len(rest), orbit.ErrParamCount)
	}
	return terms, nil
}

// Release returns every term's parameter buffer to the pool. Safe to call
// once per build; the driver guarantees exactly one call via defer.
func (ts Terms) Release() {
	for _, t := range ts {
		t.release()
	}
}

// RForce sums the radial force of all terms at (R, phi).
func (ts Terms) RForce(r, phi float64) float64 {
	sum := 0.0
	for _, t := range ts {
		sum += t.desc.RForce(r, phi, t.args)
	}
	return sum
}

// PhiForce sums the angular force of all terms at (R, phi).
func (ts Terms) PhiForce(r, phi float64) float64 {
	sum := 0.0
	for _, t := range ts {
		sum += t.desc.PhiForce(r, phi, t.args)
	}
	return sum
}

// Value sums the potential value of all terms at (R, phi), used for
// energy diagnostics.
func (ts Terms) Value(r, phi float64) float64 {
	sum := 0.0
	for _, t := range ts {
		sum += t.desc.Value(r, phi, t.args)
	}
	return sum
}

// RectForce evaluates the net rectangular force at time t and position
// (x, y): transform to polar, superpose the per-term radial and angular
// contributions, transform back. The 1/R factor converting the angular
// force to a tangential component makes R = 0 a domain error.
func (ts Terms) RectForce(t, x, y float64) (ax, ay float64, err error) {
	r, phi, err := orbit.ToPolar(x, y)
	if err != nil {
		return 0, 0, err
	}
	cosphi := x / r
	sinphi := y / r
	fr := ts.RForce(r, phi)
	fphi := ts.PhiForce(r, phi)
	ax = cosphi*fr - sinphi*fphi/r
	ay = sinphi*fr + cosphi*fphi/r
	return ax, ay, nil
}

// Energy returns the total specific energy of a phase-space state under
// these terms: kinetic energy plus the summed potential value.
func (ts Terms) Energy(s orbit.State) float64 {
	r, phi, err := orbit.ToPolar(s[0], s[1])
	if err != nil {
		return s.Kinetic()
	}
	return s.Kinetic() + ts.Value(r, phi)
}
