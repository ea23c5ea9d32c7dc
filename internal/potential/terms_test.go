package potential

import (
	"errors"
	"testing"

	"github.com/rokroskar/galpy/internal/orbit"
)

func TestBuildTermsParameterAccounting(t *testing.T) {
	codes := []int{CodeLogarithmicHalo, CodeLogarithmicHalo, CodeLogarithmicHalo}

	terms, err := BuildTerms(codes, []float64{1, 0, 2, 0.5, 3, 1})
	if err != nil {
		t.Fatalf("BuildTerms with exact params: %v", err)
	}
	defer terms.Release()

	if len(terms) != 3 {
		t.Fatalf("got %d terms, want 3", len(terms))
	}
	for i, term := range terms {
		if term.NArgs() != 2 {
			t.Errorf("term %d: NArgs = %d, want 2", i, term.NArgs())
		}
	}
	if terms[1].Args()[0] != 2 || terms[1].Args()[1] != 0.5 {
		t.Errorf("term 1 params = %v, want [2 0.5]", terms[1].Args())
	}
}

func TestBuildTermsTooFewParams(t *testing.T) {
	codes := []int{CodeLogarithmicHalo, CodeLogarithmicHalo, CodeLogarithmicHalo}
	_, err := BuildTerms(codes, []float64{1, 0, 2, 0.5, 3})
	if !errors.Is(err, orbit.ErrParamCount) {
		t.Errorf("5 params for 3x2: expected ErrParamCount, got %v", err)
	}
}

func TestBuildTermsTooManyParams(t *testing.T) {
	codes := []int{CodeLogarithmicHalo, CodeLogarithmicHalo, CodeLogarithmicHalo}
	_, err := BuildTerms(codes, []float64{1, 0, 2, 0.5, 3, 1, 4})
	if !errors.Is(err, orbit.ErrParamCount) {
		t.Errorf("7 params for 3x2: expected ErrParamCount, got %v", err)
	}
}

func TestBuildTermsUnknownCode(t *testing.T) {
	_, err := BuildTerms([]int{CodeLogarithmicHalo, 99}, []float64{1, 0})
	if !errors.Is(err, orbit.ErrUnknownPotential) {
		t.Errorf("expected ErrUnknownPotential, got %v", err)
	}
}

func TestSuperpositionLinearity(t *testing.T) {
	// Two identical halos must match a single halo with doubled amplitude.
	double, err := BuildTerms([]int{0, 0}, []float64{1, 0.5, 1, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	defer double.Release()

	scaled, err := BuildTerms([]int{0}, []float64{2, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	defer scaled.Release()

	for _, r := range []float64{0.3, 1, 2.7} {
		if got, want := double.RForce(r, 0), scaled.RForce(r, 0); got != want {
			t.Errorf("RForce at R=%v: two terms %v, scaled term %v", r, got, want)
		}
		if got, want := double.PhiForce(r, 0), scaled.PhiForce(r, 0); got != want {
			t.Errorf("PhiForce at R=%v: two terms %v, scaled term %v", r, got, want)
		}
	}
}

func TestReleaseClearsOwnership(t *testing.T) {
	terms, err := BuildTerms([]int{CodeKepler}, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	terms.Release()
	if terms[0].Args() != nil {
		t.Errorf("params still owned after release")
	}
	// A second release must not panic or double-free.
	terms.Release()
}
