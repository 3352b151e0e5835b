package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Result is the ordered outcome of a single attempt at a problem.
// Its ordinal (0..5) doubles as the quality weight of a knowledge score.
type Result int

const (
	NoIdea Result = iota
	SolvedSuboptimally
	SolvedOptimallyWithHint
	SolvedOptimallySlower
	SolvedOptimallyInUnder25
	KnewByHeart
)

var resultNames = [...]string{
	NoIdea:                   "NO_IDEA",
	SolvedSuboptimally:       "SOLVED_SUBOPTIMALLY",
	SolvedOptimallyWithHint:  "SOLVED_OPTIMALLY_WITH_HINT",
	SolvedOptimallySlower:    "SOLVED_OPTIMALLY_SLOWER",
	SolvedOptimallyInUnder25: "SOLVED_OPTIMALLY_IN_UNDER_25",
	KnewByHeart:              "KNEW_BY_HEART",
}

// Results lists every result from worst to best.
func Results() []Result {
	return []Result{NoIdea, SolvedSuboptimally, SolvedOptimallyWithHint, SolvedOptimallySlower, SolvedOptimallyInUnder25, KnewByHeart}
}

func (r Result) String() string {
	if r.IsValid() {
		return resultNames[r]
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// IsValid reports whether r is one of the six known results.
func (r Result) IsValid() bool {
	return r >= NoIdea && r <= KnewByHeart
}

// Ordinal returns the quality weight of the result, 0 for NO_IDEA up to 5 for KNEW_BY_HEART.
func (r Result) Ordinal() int {
	return int(r)
}

// SolvedUnaided reports whether the problem was solved optimally without help, however slowly.
func (r Result) SolvedUnaided() bool {
	return r >= SolvedOptimallySlower
}

func (r Result) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid result: %d", int(r))
	}
	return []byte(resultNames[r]), nil
}

func (r *Result) UnmarshalText(text []byte) error {
	v, err := ParseResult(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseResult accepts a result name (case-insensitive, dashes allowed) or its ordinal.
func ParseResult(s string) (Result, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		r := Result(n)
		if !r.IsValid() {
			return 0, fmt.Errorf("invalid result %q: ordinal must be between 0 and 5", s)
		}
		return r, nil
	}
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for i, n := range resultNames {
		if n == name {
			return Result(i), nil
		}
	}
	return 0, fmt.Errorf("invalid result %q (must be one of %s)", s, strings.Join(resultNames[:], ", "))
}

// Difficulty is the nominal difficulty of a problem.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var difficultyNames = [...]string{Easy: "EASY", Medium: "MEDIUM", Hard: "HARD"}

// Difficulties lists the difficulties from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) String() string {
	if d.IsValid() {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func (d Difficulty) IsValid() bool {
	return d >= Easy && d <= Hard
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid difficulty: %d", int(d))
	}
	return []byte(difficultyNames[d]), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDifficulty accepts "easy", "medium", "hard" in any case, or 1..3.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		d := Difficulty(n)
		if !d.IsValid() {
			return 0, fmt.Errorf("invalid difficulty %q: must be between 1 (easy) and 3 (hard)", s)
		}
		return d, nil
	}
	switch strings.ToUpper(s) {
	case "EASY":
		return Easy, nil
	case "MEDIUM":
		return Medium, nil
	case "HARD":
		return Hard, nil
	}
	return 0, fmt.Errorf("invalid difficulty %q (must be easy, medium or hard)", s)
}
