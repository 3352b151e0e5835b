package repository

import (
	"context"
	"errors"

	"github.com/vytor/srep/internal/models"
)

// TagRepository handles tag data access
type TagRepository interface {
	Insert(ctx context.Context, tag models.Tag) (int64, error)
	// GetByName returns nil, nil when no tag has the name.
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	ListByNames(ctx context.Context, names []string) ([]models.Tag, error)
	List(ctx context.Context, filter models.TagFilter) ([]models.Tag, error)
}

// ProblemRepository handles problem data access. Every returned problem carries all of its tags.
type ProblemRepository interface {
	Insert(ctx context.Context, problem models.Problem) (int64, error)
	Get(ctx context.Context, id int64) (*models.Problem, error)
	// GetByName returns nil, nil when no problem has the name.
	GetByName(ctx context.Context, name string) (*models.Problem, error)
	List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error)
}

// ProblemLogRepository is the append-only attempt log. There is no update or delete.
type ProblemLogRepository interface {
	Insert(ctx context.Context, log models.ProblemLog) (int64, error)
	// List returns logs ordered by timestamp, ties in insertion order.
	List(ctx context.Context, filter models.ProblemLogFilter) ([]models.ProblemLog, error)
}

// ErrDuplicate is wrapped by Insert when a unique name is already taken.
var ErrDuplicate = errors.New("duplicate name")
