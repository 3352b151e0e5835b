package models

import "time"

// ProblemScore is a problem merged with the mean knowledge of its tags.
// RF is nil when no tag of the problem was ever logged.
type ProblemScore struct {
	Problem    `yaml:",inline"`
	KS         float64    `json:"ks" yaml:"ks"`
	RF         *float64   `json:"rf" yaml:"rf"`
	LastAccess *time.Time `json:"last_access,omitempty" yaml:"last_access,omitempty"`
	LoggedTags int        `json:"logged_tags" yaml:"logged_tags"`
}

// NeedsAttention reports whether the problem has never been practiced.
func (p ProblemScore) NeedsAttention() bool {
	return p.LoggedTags == 0
}

// TagPriority ranks a tag for study; lower priority means more urgent.
type TagPriority struct {
	Tag         `yaml:",inline"`
	MeanEasy    float64 `json:"mean_ks_easy" yaml:"mean_ks_easy"`
	MeanMedium  float64 `json:"mean_ks_medium" yaml:"mean_ks_medium"`
	MeanHard    float64 `json:"mean_ks_hard" yaml:"mean_ks_hard"`
	WeightedKS  float64 `json:"weighted_ks" yaml:"weighted_ks"`
	Experience  float64 `json:"experience" yaml:"experience"`
	Priority    float64 `json:"priority" yaml:"priority"`
	NumProblems int     `json:"num_problems" yaml:"num_problems"`
	NumLogged   int     `json:"num_logged" yaml:"num_logged"`
}

// HistoryEntry is one logged attempt annotated with the spacing in effect after it.
type HistoryEntry struct {
	LogID     int64     `json:"log_id" yaml:"log_id"`
	Tag       string    `json:"tag" yaml:"tag"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Result    Result    `json:"result" yaml:"result"`
	Ease      float64   `json:"ease" yaml:"ease"`
	Interval  int       `json:"interval" yaml:"interval"`
	DueAt     time.Time `json:"due_at" yaml:"due_at"`
	Comment   string    `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ReviewItem is the current spacing state of one (problem, tag) pair.
type ReviewItem struct {
	ProblemID   int64      `json:"problem_id" yaml:"problem_id"`
	Problem     string     `json:"problem" yaml:"problem"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	URL         string     `json:"url,omitempty" yaml:"url,omitempty"`
	Tag         string     `json:"tag" yaml:"tag"`
	Ease        float64    `json:"ease" yaml:"ease"`
	Interval    int        `json:"interval" yaml:"interval"`
	LastResult  Result     `json:"last_result" yaml:"last_result"`
	LastAccess  time.Time  `json:"last_access" yaml:"last_access"`
	DueAt       time.Time  `json:"due_at" yaml:"due_at"`
	OverdueDays float64    `json:"overdue_days" yaml:"overdue_days"`
	RF          float64    `json:"rf" yaml:"rf"`
	KS          float64    `json:"ks" yaml:"ks"`
}

// LogReceipt confirms a stored attempt together with the resulting schedule per tag.
type LogReceipt struct {
	Problem Problem        `json:"problem" yaml:"problem"`
	Log     ProblemLog     `json:"log" yaml:"log"`
	Reviews []HistoryEntry `json:"reviews" yaml:"reviews"`
}

// SimulationStep is one attempt of a simulated learning path.
type SimulationStep struct {
	Day        int     `json:"day" yaml:"day"`
	Repetition int     `json:"repetition" yaml:"repetition"`
	Result     Result  `json:"result" yaml:"result"`
	Ease       float64 `json:"ease" yaml:"ease"`
	Interval   int     `json:"interval" yaml:"interval"`
}
