package utils

import "time"

// populationSmoothing is the weight given to the newest sample in AveragePopulation
const populationSmoothing = 0.1

// Stats tracks throughput and population figures across a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats starts the runtime clock
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one displayed generation.
// duration is the time since the previous frame; zero leaves the rate unchanged.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1 / duration.Seconds()
	}

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation += populationSmoothing * (float64(population) - s.AveragePopulation)
}

// Runtime returns how long the run has been going
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
