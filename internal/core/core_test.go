package core

import (
	"slices"
	"testing"
	"time"
)

func TestByteGridRows(t *testing.T) {
	g := NewByteGrid(3, 5, 3, 2)
	copy(g.Cells(), []uint8{1, 2, 3, 4, 5, 6})

	if g.At(2, 1) != 6 {
		t.Fatalf("At(2,1)=%d, want 6", g.At(2, 1))
	}
	rows := g.Rows()
	if len(rows) != 2 || !slices.Equal(rows[0], []uint8{1, 2, 3}) || !slices.Equal(rows[1], []uint8{4, 5, 6}) {
		t.Fatalf("unexpected rows %v", rows)
	}
	rows[0][0] = 9
	if g.At(0, 0) != 1 {
		t.Fatal("Rows must return copies")
	}
}

func TestByteGridEmpty(t *testing.T) {
	g := NewByteGrid(0, 0, -1, 4)
	if !g.Empty() || g.W != 0 || len(g.Cells()) != 0 {
		t.Fatalf("expected empty grid, got %dx%d", g.W, g.H)
	}
	if len(g.Rows()) != 4 {
		t.Fatalf("expected 4 empty rows, got %d", len(g.Rows()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		va, vb := a.Valuen(5), b.Valuen(5)
		if va != vb {
			t.Fatalf("draw %d differs: %d vs %d", i, va, vb)
		}
		if va >= 5 {
			t.Fatalf("value %d out of range", va)
		}
	}
	if NewRNG(1).Valuen(1) != 0 {
		t.Fatal("Valuen(1) must always be 0")
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not fire before the step elapses")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should fire once the step elapsed")
	}

	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("Reset should rearm immediate firing")
	}
}

func TestSequenceRegistry(t *testing.T) {
	RegisterSequence("", func(int, int64) Sequence { return nil })
	RegisterSequence("zero-test", func(int, int64) Sequence { return func(int) uint8 { return 0 } })
	if _, ok := Sequences()[""]; ok {
		t.Fatal("empty name must be ignored")
	}
	if !slices.Contains(SequenceNames(), "zero-test") {
		t.Fatalf("registered sequence missing from %v", SequenceNames())
	}
}

func TestParameterLookup(t *testing.T) {
	s := Merge(
		ParameterSnapshot{Groups: []ParameterGroup{{Name: "View", Params: []Parameter{IntParam("cell", "Cell size", 8)}}}},
		ParameterSnapshot{Groups: []ParameterGroup{{Name: "Pattern", Params: []Parameter{StringParam("seq", "Sequence", "random")}}}},
	)
	p, ok := s.Lookup("cell")
	if !ok || p.Value != "8" {
		t.Fatalf("lookup cell = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("lookup of missing key should fail")
	}
}
