package models

import "time"

const (
	MaxTagNameLength     = 25
	MaxProblemNameLength = 100
	MaxURLLength         = 255
	MaxCommentLength     = 255

	DefaultExperienceTarget = 5
	MinExperienceTarget     = 1
	MaxExperienceTarget     = 15
)

type Tag struct {
	ID               int64     `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	ExperienceTarget int       `json:"experience_target" yaml:"experience_target"`
	CreatedAt        time.Time `json:"created_at" yaml:"created_at"`
}

type TagFilter struct {
	NameSubstr string
}

type Problem struct {
	ID         int64      `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	URL        string     `json:"url,omitempty" yaml:"url,omitempty"`
	Tags       []Tag      `json:"tags" yaml:"tags"`
	CreatedAt  time.Time  `json:"created_at" yaml:"created_at"`
}

// TagNames returns the names of the problem's tags in stored order.
func (p Problem) TagNames() []string {
	names := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		names[i] = t.Name
	}
	return names
}

// HasTag reports whether the problem carries a tag with the given name.
func (p Problem) HasTag(name string) bool {
	for _, t := range p.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

type ProblemFilter struct {
	NameSubstr string
	Tags       []string
	Difficulty Difficulty
}

// ProblemLog is one immutable attempt at a problem. Logs are only ever appended.
type ProblemLog struct {
	ID        int64     `json:"id" yaml:"id"`
	ProblemID int64     `json:"problem_id" yaml:"problem_id"`
	Result    Result    `json:"result" yaml:"result"`
	Tags      []Tag     `json:"tags" yaml:"tags"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Comment   string    `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ProblemLogFilter restricts logs to a set of problems. A nil ProblemIDs selects every log.
type ProblemLogFilter struct {
	ProblemIDs []int64
}
