package model

import "testing"

func TestStepperBlinkerAlternates(t *testing.T) {
	line := MustPopulation(Coord{5, 4}, Coord{5, 5}, Coord{5, 6})
	successor := NextGeneration(line)

	s := NewStepper(line)
	for i := 1; i <= 50; i++ {
		p := s.Advance()
		want := line
		if i%2 == 1 {
			want = successor
		}
		if !p.Equal(want) {
			t.Fatalf("step %d: got %v, want %v", i, p, want)
		}
		if s.Step() != i {
			t.Fatalf("Step() = %d, want %d", s.Step(), i)
		}
	}
}

func TestStepperKeepsProducingEmpty(t *testing.T) {
	s := NewStepper(MustPopulation(Coord{1, 1}))
	for i := range 5 {
		if p := s.Advance(); !p.Empty() {
			t.Fatalf("step %d: expected empty, got %v", i, p)
		}
	}
}

func TestStepperAll(t *testing.T) {
	var n int
	for p := range NewStepper(Block()).All() {
		if !p.Equal(Block()) {
			t.Fatalf("block changed at %d: %v", n, p)
		}
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Fatalf("expected 10 generations, got %d", n)
	}
}
