package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
	"github.com/vytor/srep/internal/spacing"
	"github.com/vytor/srep/internal/validation"
)

// LogService records attempts and replays their history
type LogService interface {
	// Log appends an attempt. Empty input tags mean every tag of the problem.
	Log(ctx context.Context, input models.LogInput) (*models.LogReceipt, error)
	// History replays every attempt of a problem, optionally for one tag only.
	History(ctx context.Context, problemName, tagName string) ([]models.HistoryEntry, error)
}

type logService struct {
	problems repository.ProblemRepository
	logs     repository.ProblemLogRepository
	now      func() time.Time
}

// NewLogService creates a new LogService
func NewLogService(problems repository.ProblemRepository, logs repository.ProblemLogRepository) LogService {
	return &logService{problems: problems, logs: logs, now: time.Now}
}

func (s *logService) Log(ctx context.Context, input models.LogInput) (*models.LogReceipt, error) {
	log := logger.FromContext(ctx)

	input.ProblemName = validation.SanitizeText(input.ProblemName)
	input.Comment = validation.SanitizeText(input.Comment)
	input.Tags = validation.SanitizeNames(input.Tags)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	problem, err := s.problem(ctx, input.ProblemName)
	if err != nil {
		return nil, err
	}

	tags, err := problemTags(*problem, input.Tags)
	if err != nil {
		return nil, err
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}
	entry := models.ProblemLog{
		ProblemID: problem.ID,
		Result:    input.Result,
		Tags:      tags,
		Timestamp: ts.UTC(),
		Comment:   input.Comment,
	}
	log.Debug("logging attempt: problem=%s, result=%s, tags=%v", problem.Name, entry.Result, input.Tags)

	id, err := s.logs.Insert(ctx, entry)
	if err != nil {
		log.Error("failed to insert problem log: %v", err)
		return nil, errors.NewInternalError(err)
	}
	entry.ID = id

	history, err := s.replay(ctx, *problem)
	if err != nil {
		return nil, err
	}

	receipt := &models.LogReceipt{Problem: *problem, Log: entry}
	for _, t := range tags {
		entries := history[t.ID]
		if len(entries) == 0 {
			continue
		}
		receipt.Reviews = append(receipt.Reviews, entries[len(entries)-1])
	}
	return receipt, nil
}

func (s *logService) History(ctx context.Context, problemName, tagName string) ([]models.HistoryEntry, error) {
	problem, err := s.problem(ctx, validation.SanitizeText(problemName))
	if err != nil {
		return nil, err
	}

	tags := problem.Tags
	if tagName = validation.SanitizeText(tagName); tagName != "" {
		if tags, err = problemTags(*problem, []string{tagName}); err != nil {
			return nil, err
		}
	}

	history, err := s.replay(ctx, *problem)
	if err != nil {
		return nil, err
	}

	var out []models.HistoryEntry
	for _, t := range tags {
		out = append(out, history[t.ID]...)
	}
	return out, nil
}

func (s *logService) problem(ctx context.Context, name string) (*models.Problem, error) {
	problem, err := s.problems.GetByName(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Error("failed to look up problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if problem == nil {
		return nil, errors.NewNotFoundError("problem", name)
	}
	return problem, nil
}

// replay returns the annotated attempts of problem keyed by tag ID.
func (s *logService) replay(ctx context.Context, problem models.Problem) (map[int64][]models.HistoryEntry, error) {
	logs, err := s.logs.List(ctx, models.ProblemLogFilter{ProblemIDs: []int64{problem.ID}})
	if err != nil {
		logger.FromContext(ctx).Error("failed to list problem logs: %v", err)
		return nil, errors.NewInternalError(err)
	}

	comments := make(map[int64]string, len(logs))
	for _, l := range logs {
		comments[l.ID] = l.Comment
	}
	names := make(map[int64]string, len(problem.Tags))
	for _, t := range problem.Tags {
		names[t.ID] = t.Name
	}

	out := make(map[int64][]models.HistoryEntry)
	for key, entries := range spacing.GroupLogs(logs) {
		for _, e := range spacing.Replay(entries) {
			out[key.TagID] = append(out[key.TagID], models.HistoryEntry{
				LogID:     e.LogID,
				Tag:       names[key.TagID],
				Timestamp: e.Timestamp,
				Result:    e.Result,
				Ease:      e.Ease,
				Interval:  e.Interval,
				DueAt:     e.Timestamp.AddDate(0, 0, e.Interval),
				Comment:   comments[e.LogID],
			})
		}
	}
	return out, nil
}

// problemTags resolves names against the problem's own tags. No names selects all of them.
func problemTags(problem models.Problem, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return problem.Tags, nil
	}
	byName := make(map[string]models.Tag, len(problem.Tags))
	for _, t := range problem.Tags {
		byName[t.Name] = t
	}
	tags := make([]models.Tag, 0, len(names))
	for _, n := range names {
		t, ok := byName[n]
		if !ok {
			return nil, errors.NewValidationError("tags", fmt.Sprintf("'%s' is not a tag of problem '%s'", n, problem.Name))
		}
		tags = append(tags, t)
	}
	return tags, nil
}
