package spacing

import (
	"math"
	"time"

	"github.com/vytor/srep/internal/models"
)

// Retention estimates the fraction of mastery still held. It is 1 until the
// review is due and then halves for every further interval overdue.
func Retention(interval int, last, now time.Time) float64 {
	if interval < 1 {
		interval = 1
	}
	elapsed := now.Sub(last).Hours() / 24
	overdue := math.Max(0, elapsed-float64(interval))
	rf := math.Pow(HalfLifeFraction, overdue/float64(interval))
	return math.Min(1, math.Max(0, rf))
}

// OverdueDays returns the fractional days past the due date, or 0 if not yet due.
func OverdueDays(s State, now time.Time) float64 {
	elapsed := now.Sub(s.LastTimestamp).Hours() / 24
	return math.Max(0, elapsed-float64(s.Interval))
}

// Knowledge is the scored state of a (problem, tag) pair.
type Knowledge struct {
	State
	RF float64
	KS float64
}

// Score weighs the retention of s by the quality of its last result.
func Score(s State, now time.Time) Knowledge {
	rf := Retention(s.Interval, s.LastTimestamp, now)
	return Knowledge{
		State: s,
		RF:    rf,
		KS:    rf * float64(s.LastResult.Ordinal()),
	}
}

// ScoreAll scores every state at now.
func ScoreAll(states map[Key]State, now time.Time) map[Key]Knowledge {
	scores := make(map[Key]Knowledge, len(states))
	for key, s := range states {
		scores[key] = Score(s, now)
	}
	return scores
}

// ScoreLogs replays logs and scores the latest state of every (problem, tag) pair.
func ScoreLogs(logs []models.ProblemLog, now time.Time) map[Key]Knowledge {
	return ScoreAll(LatestStates(logs), now)
}
