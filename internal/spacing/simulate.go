package spacing

import "github.com/vytor/srep/internal/models"

// Simulate replays a hypothetical sequence of results for one (problem, tag)
// pair. Attempts are spaced everyDays apart, or land exactly on each due date
// when everyDays is 0.
func Simulate(results []models.Result, everyDays int) []models.SimulationStep {
	steps := make([]models.SimulationStep, 0, len(results))
	var prev *Entry
	day := 0
	for i, r := range results {
		if prev != nil {
			if everyDays > 0 {
				day += everyDays
			} else {
				day += prev.Interval
			}
		}
		ease, interval := Next(prev, r)
		prev = &Entry{Result: r, Ease: ease, Interval: interval}
		steps = append(steps, models.SimulationStep{
			Day:        day,
			Repetition: i,
			Result:     r,
			Ease:       ease,
			Interval:   interval,
		})
	}
	return steps
}
