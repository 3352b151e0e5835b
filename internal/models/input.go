package models

import "time"

type CreateTagInput struct {
	Name             string `json:"name" validate:"required,max=25"`
	ExperienceTarget int    `json:"experience_target" validate:"min=1,max=15"`
}

type CreateProblemInput struct {
	Name       string     `json:"name" validate:"required,max=100"`
	Difficulty Difficulty `json:"difficulty" validate:"difficulty"`
	URL        string     `json:"url" validate:"omitempty,max=255"`
	Tags       []string   `json:"tags" validate:"required,min=1,dive,required,max=25"`
}

// LogInput describes a new attempt. Empty Tags means every tag of the problem;
// a zero Timestamp means now.
type LogInput struct {
	ProblemName string    `json:"problem" validate:"required,max=100"`
	Result      Result    `json:"result" validate:"result"`
	Tags        []string  `json:"tags" validate:"dive,required,max=25"`
	Comment     string    `json:"comment" validate:"max=255"`
	Timestamp   time.Time `json:"timestamp"`
}

// ProblemSort selects the ordering of problem listings.
type ProblemSort struct {
	Key  string
	Desc bool
}

const (
	SortByKS         = "ks"
	SortByRF         = "rf"
	SortByName       = "name"
	SortByDifficulty = "difficulty"
	SortByLastAccess = "last_access"
)

// ProblemSortKeys lists the accepted ProblemSort keys.
func ProblemSortKeys() []string {
	return []string{SortByKS, SortByRF, SortByName, SortByDifficulty, SortByLastAccess}
}
