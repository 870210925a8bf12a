package model

import "iter"

// Stepper advances a population forever with no termination detection.
// Once extinct it keeps producing the empty population.
type Stepper struct {
	current Population
	step    int
}

func NewStepper(start Population) *Stepper {
	return &Stepper{current: start}
}

// Advance applies the rule once and returns the new population
func (s *Stepper) Advance() Population {
	s.current = NextGeneration(s.current)
	s.step++
	return s.current
}

// Step returns the number of generations produced so far
func (s *Stepper) Step() int {
	return s.step
}

// All yields one population per generation until the consumer stops.
func (s *Stepper) All() iter.Seq[Population] {
	return func(yield func(Population) bool) {
		for yield(s.Advance()) {
		}
	}
}
