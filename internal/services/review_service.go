package services

import (
	"context"
	"sort"
	"time"

	"github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
	"github.com/vytor/srep/internal/spacing"
)

// ReviewService answers which (problem, tag) pairs are due for review
type ReviewService interface {
	// Due returns the pairs whose review date is at or before now, lowest
	// retention first. A limit of zero or less returns every due pair.
	Due(ctx context.Context, now time.Time, limit int) ([]models.ReviewItem, error)
}

type reviewService struct {
	problems repository.ProblemRepository
	logs     repository.ProblemLogRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(problems repository.ProblemRepository, logs repository.ProblemLogRepository) ReviewService {
	return &reviewService{problems: problems, logs: logs}
}

func (s *reviewService) Due(ctx context.Context, now time.Time, limit int) ([]models.ReviewItem, error) {
	log := logger.FromContext(ctx)
	log.Debug("finding due reviews: now=%s, limit=%d", now.Format(time.RFC3339), limit)

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

	byID := make(map[int64]models.Problem, len(problems))
	tagNames := make(map[int64]string)
	for _, p := range problems {
		byID[p.ID] = p
		for _, t := range p.Tags {
			tagNames[t.ID] = t.Name
		}
	}

	var items []models.ReviewItem
	for key, k := range spacing.ScoreAll(spacing.LatestStates(logs), now) {
		due := k.DueAt()
		if due.After(now) {
			continue
		}
		p, ok := byID[key.ProblemID]
		if !ok {
			continue
		}
		items = append(items, models.ReviewItem{
			ProblemID:   p.ID,
			Problem:     p.Name,
			Difficulty:  p.Difficulty,
			URL:         p.URL,
			Tag:         tagNames[key.TagID],
			Ease:        k.Ease,
			Interval:    k.Interval,
			LastResult:  k.LastResult,
			LastAccess:  k.LastTimestamp,
			DueAt:       due,
			OverdueDays: spacing.OverdueDays(k.State, now),
			RF:          k.RF,
			KS:          k.KS,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.RF != b.RF {
			return a.RF < b.RF
		}
		if !a.DueAt.Equal(b.DueAt) {
			return a.DueAt.Before(b.DueAt)
		}
		if a.Problem != b.Problem {
			return a.Problem < b.Problem
		}
		return a.Tag < b.Tag
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	log.Debug("%d reviews due", len(items))
	return items, nil
}
