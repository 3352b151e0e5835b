// Package spacing derives review schedules and knowledge scores from the
// append-only attempt log. Every function is pure: callers pass the logs and
// the current time, nothing is read from storage or the wall clock.
package spacing

import (
	"math"

	"github.com/vytor/srep/internal/models"
)

const (
	DefaultEase        = 2.5
	EaseDelta          = 0.12
	MinimumEase        = 1.3
	NonOptimalInterval = 3

	// HalfLifeFraction is the retention left after one full interval overdue.
	HalfLifeFraction = 0.5

	// ExperienceProblems is the number of distinct logged problems a tag needs
	// before its knowledge score is fully trusted.
	ExperienceProblems = 5

	EasyWeight   = 0.5
	MediumWeight = 0.75
	HardWeight   = 1.0
)

// InitialIntervals holds the first interval in days for results solved unaided.
// Every other first result starts at NonOptimalInterval.
var InitialIntervals = map[models.Result]int{
	models.KnewByHeart:              21,
	models.SolvedOptimallyInUnder25: 14,
	models.SolvedOptimallySlower:    7,
}

// Next returns the ease and interval in effect after an attempt with result r,
// given the annotated previous attempt of the same (problem, tag) pair.
// prev is nil for the first attempt.
func Next(prev *Entry, r models.Result) (float64, int) {
	if prev == nil {
		return DefaultEase, initialInterval(r)
	}

	ease := nextEase(prev.Ease, r)
	if !r.SolvedUnaided() {
		return ease, NonOptimalInterval
	}
	return ease, int(math.RoundToEven(ease * float64(prev.Interval)))
}

func initialInterval(r models.Result) int {
	if interval, ok := InitialIntervals[r]; ok {
		return interval
	}
	return NonOptimalInterval
}

func nextEase(ease float64, r models.Result) float64 {
	switch r {
	case models.KnewByHeart:
		return ease + EaseDelta
	case models.SolvedOptimallyInUnder25:
		return ease
	case models.SolvedOptimallySlower:
		return math.Max(ease-EaseDelta, MinimumEase)
	case models.SolvedOptimallyWithHint, models.SolvedSuboptimally, models.NoIdea:
		return DefaultEase
	default:
		return DefaultEase
	}
}
