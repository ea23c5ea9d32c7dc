package orbit

import (
	"math"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3, 4}
	c := s.Clone()
	c[0] = 9
	if s[0] != 1 {
		t.Errorf("clone aliases the original")
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{1, 0, 0, 1}).IsValid() {
		t.Errorf("finite state reported invalid")
	}
	if (State{1, math.NaN(), 0, 1}).IsValid() {
		t.Errorf("NaN state reported valid")
	}
	if (State{1, 0, math.Inf(1), 1}).IsValid() {
		t.Errorf("Inf state reported valid")
	}
}

func TestStateDerivedQuantities(t *testing.T) {
	s := State{3, 4, 1, 2}
	if got := s.R(); math.Abs(got-5) > 1e-15 {
		t.Errorf("R = %v, want 5", got)
	}
	if got := s.Lz(); math.Abs(got-(3*2-4*1)) > 1e-15 {
		t.Errorf("Lz = %v, want 2", got)
	}
	if got := s.Kinetic(); math.Abs(got-2.5) > 1e-15 {
		t.Errorf("Kinetic = %v, want 2.5", got)
	}
}
