package model

import "iter"

// Generation is one value produced by a Sequencer.
//
// While the run is live, Population is the current population and Step its index.
// The final value has Done set, an empty Population and Step holding the signal:
// -1 for extinction, otherwise the step at which the repeating cycle started.
type Generation struct {
	Population Population
	Step       int
	Done       bool
	// Period is the cycle length on a cyclic ending, 0 otherwise
	Period int
}

// Extinct reports whether the run ended because every cell died
func (g Generation) Extinct() bool {
	return g.Done && g.Step == -1
}

// Cyclic reports whether the run ended on a repeated canonical form
func (g Generation) Cyclic() bool {
	return g.Done && g.Step >= 0
}

// Sequencer runs one simulation and stops once it becomes extinct or starts repeating.
// The zero value runs from the empty population. A Sequencer is not safe for concurrent use.
type Sequencer struct {
	current Population
	step    int
	done    bool

	// history holds every canonical form seen, seeded with the empty population
	history []Population
	index   map[string]int
}

// NewSequencer starts a run from start
func NewSequencer(start Population) *Sequencer {
	s := &Sequencer{current: start}
	s.seed()
	return s
}

// seed records the empty population as history entry 0
func (s *Sequencer) seed() {
	empty := fromSet(nil)
	s.history = []Population{empty}
	s.index = map[string]int{Key(empty): 0}
}

// Advance performs exactly one step.
// It returns false once the terminal Generation has already been delivered.
func (s *Sequencer) Advance() (Generation, bool) {
	if s.done {
		return Generation{}, false
	}
	if s.index == nil {
		s.seed()
	}

	canonical := Canonical(s.current)
	key := Key(canonical)
	if i, seen := s.index[key]; seen {
		s.done = true
		s.current = fromSet(nil)
		g := Generation{Population: s.current, Step: i - 1, Done: true}
		if i > 0 {
			g.Period = s.step - (i - 1)
		}
		return g, true
	}

	s.index[key] = len(s.history)
	s.history = append(s.history, canonical)

	g := Generation{Population: s.current, Step: s.step}
	s.current = NextGeneration(s.current)
	s.step++
	return g, true
}

// HistoryLen returns how many canonical forms have been recorded, including the empty seed
func (s *Sequencer) HistoryLen() int {
	if s.index == nil {
		return 1
	}
	return len(s.history)
}

// All yields (population, step) pairs until the run ends; the last pair is (empty, signal).
func (s *Sequencer) All() iter.Seq2[Population, int] {
	return func(yield func(Population, int) bool) {
		for {
			g, ok := s.Advance()
			if !ok || !yield(g.Population, g.Step) {
				return
			}
		}
	}
}
