package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
	"github.com/vytor/srep/internal/spacing"
	"github.com/vytor/srep/internal/validation"
)

// TagService handles tag-related business logic
type TagService interface {
	Create(ctx context.Context, input models.CreateTagInput) (*models.Tag, error)
	List(ctx context.Context, filter models.TagFilter) ([]models.Tag, error)
	// Prioritize ranks the tags matching filter by study priority at now, most urgent first.
	Prioritize(ctx context.Context, filter models.TagFilter, now time.Time) ([]models.TagPriority, error)
}

var errMissingAfterInsert = stderrors.New("row missing after insert")

type tagService struct {
	tags     repository.TagRepository
	problems repository.ProblemRepository
	logs     repository.ProblemLogRepository
}

// NewTagService creates a new TagService
func NewTagService(tags repository.TagRepository, problems repository.ProblemRepository, logs repository.ProblemLogRepository) TagService {
	return &tagService{tags: tags, problems: problems, logs: logs}
}

func (s *tagService) Create(ctx context.Context, input models.CreateTagInput) (*models.Tag, error) {
	log := logger.FromContext(ctx)

	input.Name = validation.SanitizeText(input.Name)
	if input.ExperienceTarget == 0 {
		input.ExperienceTarget = models.DefaultExperienceTarget
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	log.Debug("creating tag: name=%s", input.Name)

	existing, err := s.tags.GetByName(ctx, input.Name)
	if err != nil {
		log.Error("failed to look up tag: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if existing != nil {
		return nil, errors.NewDuplicateError("tag", input.Name)
	}

	if _, err := s.tags.Insert(ctx, models.Tag{Name: input.Name, ExperienceTarget: input.ExperienceTarget}); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.NewDuplicateError("tag", input.Name)
		}
		log.Error("failed to insert tag: %v", err)
		return nil, errors.NewInternalError(err)
	}

	tag, err := s.tags.GetByName(ctx, input.Name)
	if err == nil && tag == nil {
		err = errMissingAfterInsert
	}
	if err != nil {
		log.Error("failed to reload tag: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return tag, nil
}

func (s *tagService) List(ctx context.Context, filter models.TagFilter) ([]models.Tag, error) {
	tags, err := s.tags.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list tags: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return tags, nil
}

func (s *tagService) Prioritize(ctx context.Context, filter models.TagFilter, now time.Time) ([]models.TagPriority, error) {
	log := logger.FromContext(ctx)
	log.Debug("prioritizing tags: name=%q, now=%s", filter.NameSubstr, now.Format(time.RFC3339))

	tags, err := s.tags.List(ctx, filter)
	if err != nil {
		log.Error("failed to list tags: %v", err)
		return nil, errors.NewInternalError(err)
	}
	problems, err := s.problems.List(ctx, models.ProblemFilter{})
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, errors.NewInternalError(err)
	}
	logs, err := s.logs.List(ctx, models.ProblemLogFilter{})
	if err != nil {
		log.Error("failed to list problem logs: %v", err)
		return nil, errors.NewInternalError(err)
	}

	scores := spacing.ScoreLogs(logs, now)
	priorities := spacing.PrioritizeTags(tags, spacing.DenormalizeTags(problems, scores))
	log.Debug("prioritized %d tags from %d problems and %d logs", len(priorities), len(problems), len(logs))
	return priorities, nil
}
