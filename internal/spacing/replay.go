package spacing

import (
	"sort"
	"time"

	"github.com/vytor/srep/internal/models"
)

// Key identifies one (problem, tag) pair.
type Key struct {
	ProblemID int64
	TagID     int64
}

// Entry is one attempt of a (problem, tag) pair. Ease and Interval are
// filled in by Replay and describe the schedule after the attempt.
type Entry struct {
	LogID     int64
	Result    models.Result
	Timestamp time.Time
	Ease      float64
	Interval  int
}

// State is the schedule of a (problem, tag) pair after its latest attempt.
type State struct {
	Ease          float64
	Interval      int
	LastResult    models.Result
	LastTimestamp time.Time
}

// DueAt returns when the next review becomes due.
func (s State) DueAt() time.Time {
	return s.LastTimestamp.AddDate(0, 0, s.Interval)
}

// Replay sorts the attempts of a single (problem, tag) pair by timestamp and
// annotates each with the ease and interval in effect after it. Attempts with
// equal timestamps keep their input order. The input slice is not modified.
func Replay(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	for i := range out {
		var prev *Entry
		if i > 0 {
			prev = &out[i-1]
		}
		out[i].Ease, out[i].Interval = Next(prev, out[i].Result)
	}
	return out
}

// GroupLogs splits logs into one attempt sequence per (problem, tag) pair.
// Within a group, attempts keep the order of logs.
func GroupLogs(logs []models.ProblemLog) map[Key][]Entry {
	groups := make(map[Key][]Entry)
	for _, l := range logs {
		seen := make(map[int64]bool, len(l.Tags))
		for _, t := range l.Tags {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			key := Key{ProblemID: l.ProblemID, TagID: t.ID}
			groups[key] = append(groups[key], Entry{
				LogID:     l.ID,
				Result:    l.Result,
				Timestamp: l.Timestamp,
			})
		}
	}
	return groups
}

// LatestStates replays every (problem, tag) group and keeps the state after
// its temporally last attempt.
func LatestStates(logs []models.ProblemLog) map[Key]State {
	groups := GroupLogs(logs)
	states := make(map[Key]State, len(groups))
	for key, group := range groups {
		replayed := Replay(group)
		if len(replayed) == 0 {
			continue
		}
		last := replayed[len(replayed)-1]
		states[key] = State{
			Ease:          last.Ease,
			Interval:      last.Interval,
			LastResult:    last.Result,
			LastTimestamp: last.Timestamp,
		}
	}
	return states
}
