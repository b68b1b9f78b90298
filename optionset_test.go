package cubescan

import "testing"

func TestOptionSetInit(t *testing.T) {
	var s optionSet

	s.init(&cornerLayout)
	if s.rem != 24 {
		t.Errorf("corner option set starts with %d options, want 24", s.rem)
	}
	if s.err || s.colset != 0 || s.ori != -1 || s.cubie != -1 {
		t.Errorf("corner option set derived fields not reset: %+v", s)
	}

	s.init(&edgeLayout)
	if s.rem != 24 {
		t.Errorf("edge option set starts with %d options, want 24", s.rem)
	}
}

func TestOptionSetNarrowing(t *testing.T) {
	var s optionSet
	s.init(&cornerLayout)

	// U at position 0 pins orientation 0 and forces U into the color set;
	// four corners carry U.
	s.hasPosCol(0, U)
	if s.rem != 4 {
		t.Fatalf("after U at pos 0: %d options, want 4", s.rem)
	}
	if s.ori != 0 {
		t.Errorf("orientation not unanimous: %d, want 0", s.ori)
	}
	if s.cubie != -1 {
		t.Errorf("cubie resolved too early: %d", s.cubie)
	}
	if !s.colset.has(U) || s.colset.has(R) {
		t.Errorf("colset %06b, want only U forced", s.colset)
	}

	// Dropping R leaves ufl and ulb.
	s.hasNotCol(R)
	if s.rem != 2 {
		t.Fatalf("after dropping R: %d options, want 2", s.rem)
	}

	// F at position 1 pins ufl.
	s.hasPosCol(1, F)
	if s.rem != 1 {
		t.Fatalf("after F at pos 1: %d options, want 1", s.rem)
	}
	if s.cubie != ufl {
		t.Errorf("cubie = %d, want %d", s.cubie, ufl)
	}
	if s.colset != 1<<U|1<<F|1<<L {
		t.Errorf("colset %06b, want U|F|L", s.colset)
	}

	// A contradicting restriction empties the residual.
	s.hasNotCol(F)
	if !s.err {
		t.Error("contradiction not flagged")
	}
}

func TestOptionSetOriNeverRecomputed(t *testing.T) {
	var s optionSet
	s.init(&edgeLayout)

	// U at position 0 leaves the four U edges at orientation 0.
	s.hasPosCol(0, U)
	if s.ori != 0 {
		t.Fatalf("orientation = %d, want 0", s.ori)
	}
	// Further narrowing must not clear the resolved orientation.
	s.isNotCubie(ur)
	if s.ori != 0 {
		t.Errorf("orientation lost after narrowing: %d", s.ori)
	}
}
