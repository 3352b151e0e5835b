package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
	"github.com/vytor/srep/internal/spacing"
	"github.com/vytor/srep/internal/validation"
)

// ProblemService handles problem-related business logic
type ProblemService interface {
	Create(ctx context.Context, input models.CreateProblemInput) (*models.Problem, error)
	// List scores the problems matching filter at now. The tag filter only
	// selects problems; scores always cover every tag of a problem.
	List(ctx context.Context, filter models.ProblemFilter, order models.ProblemSort, now time.Time) ([]models.ProblemScore, error)
}

type problemService struct {
	tags     repository.TagRepository
	problems repository.ProblemRepository
	logs     repository.ProblemLogRepository
}

// NewProblemService creates a new ProblemService
func NewProblemService(tags repository.TagRepository, problems repository.ProblemRepository, logs repository.ProblemLogRepository) ProblemService {
	return &problemService{tags: tags, problems: problems, logs: logs}
}

func (s *problemService) Create(ctx context.Context, input models.CreateProblemInput) (*models.Problem, error) {
	log := logger.FromContext(ctx)

	input.Name = validation.SanitizeText(input.Name)
	input.URL = validation.SanitizeText(input.URL)
	input.Tags = validation.SanitizeNames(input.Tags)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	log.Debug("creating problem: name=%s, difficulty=%s, tags=%v", input.Name, input.Difficulty, input.Tags)

	existing, err := s.problems.GetByName(ctx, input.Name)
	if err != nil {
		log.Error("failed to look up problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if existing != nil {
		return nil, errors.NewDuplicateError("problem", input.Name)
	}

	tags, err := s.tags.ListByNames(ctx, input.Tags)
	if err != nil {
		log.Error("failed to resolve tags: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if missing := missingNames(input.Tags, tags); len(missing) > 0 {
		return nil, errors.NewMissingReferenceError("tag", missing)
	}

	id, err := s.problems.Insert(ctx, models.Problem{
		Name:       input.Name,
		Difficulty: input.Difficulty,
		URL:        input.URL,
		Tags:       tags,
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.NewDuplicateError("problem", input.Name)
		}
		log.Error("failed to insert problem: %v", err)
		return nil, errors.NewInternalError(err)
	}

	p, err := s.problems.Get(ctx, id)
	if err == nil && p == nil {
		err = errMissingAfterInsert
	}
	if err != nil {
		log.Error("failed to reload problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return p, nil
}

// missingNames returns the requested names absent from found, in request order.
func missingNames(requested []string, found []models.Tag) []string {
	have := make(map[string]bool, len(found))
	for _, t := range found {
		have[t.Name] = true
	}
	var missing []string
	for _, n := range requested {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

func (s *problemService) List(ctx context.Context, filter models.ProblemFilter, order models.ProblemSort, now time.Time) ([]models.ProblemScore, error) {
	log := logger.FromContext(ctx)

	less, err := problemOrder(order.Key)
	if err != nil {
		return nil, err
	}
	filter.Tags = validation.SanitizeNames(filter.Tags)
	log.Debug("listing problems: name=%q, tags=%v, difficulty=%d, sort=%s, desc=%t",
		filter.NameSubstr, filter.Tags, int(filter.Difficulty), order.Key, order.Desc)

	problems, err := s.problems.List(ctx, filter)
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, errors.NewInternalError(err)
	}

	ids := make([]int64, len(problems))
	for i, p := range problems {
		ids[i] = p.ID
	}
	logs, err := s.logs.List(ctx, models.ProblemLogFilter{ProblemIDs: ids})
	if err != nil {
		log.Error("failed to list problem logs: %v", err)
		return nil, errors.NewInternalError(err)
	}

	rows := spacing.AggregateProblems(problems, spacing.ScoreLogs(logs, now))
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if order.Desc {
			a, b = b, a
		}
		if c := less(a, b); c != 0 {
			return c < 0
		}
		return rows[i].Name < rows[j].Name
	})
	return rows, nil
}

type problemCompare func(a, b models.ProblemScore) int

// problemOrder returns the comparison for a sort key. Undefined values sort first.
func problemOrder(key string) (problemCompare, error) {
	switch key {
	case "", models.SortByKS:
		return func(a, b models.ProblemScore) int { return compareFloat(a.KS, b.KS) }, nil
	case models.SortByRF:
		return func(a, b models.ProblemScore) int {
			return compareFloat(optional(a.RF), optional(b.RF))
		}, nil
	case models.SortByName:
		return func(a, b models.ProblemScore) int { return strings.Compare(a.Name, b.Name) }, nil
	case models.SortByDifficulty:
		return func(a, b models.ProblemScore) int { return int(a.Difficulty) - int(b.Difficulty) }, nil
	case models.SortByLastAccess:
		return func(a, b models.ProblemScore) int {
			switch {
			case a.LastAccess == nil && b.LastAccess == nil:
				return 0
			case a.LastAccess == nil:
				return -1
			case b.LastAccess == nil:
				return 1
			}
			return a.LastAccess.Compare(*b.LastAccess)
		}, nil
	}
	return nil, errors.NewValidationError("sort", fmt.Sprintf("must be one of %s", strings.Join(models.ProblemSortKeys(), ", ")))
}

func optional(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
