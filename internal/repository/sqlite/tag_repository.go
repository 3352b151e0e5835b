package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
)

var tagColumns = []string{"id", "name", "experience_target", "created_at"}

type tagRepository struct {
	db *sql.DB
}

// NewTagRepository creates a new TagRepository implementation
func NewTagRepository(db *sql.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Insert(ctx context.Context, t models.Tag) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("inserting tag: name=%s, experience_target=%d", t.Name, t.ExperienceTarget)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tags (name, experience_target)
VALUES (?, ?)
`, t.Name, t.ExperienceTarget)
	if err != nil {
		log.Error("failed to insert tag: %v", err)
		return 0, wrapUnique(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get tag id: %v", err)
		return 0, err
	}
	log.Debug("tag inserted: id=%d", id)
	return id, nil
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("getting tag: name=%s", name)

	t, err := scanTag(r.db.QueryRowContext(ctx, `
SELECT id, name, experience_target, created_at
FROM tags
WHERE name = ?
`, name).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("tag not found: name=%s", name)
			return nil, nil
		}
		log.Error("failed to get tag: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *tagRepository) ListByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("listing tags by name: %v", names)

	if len(names) == 0 {
		return nil, nil
	}
	return r.list(ctx, sqlBuilder.Select(tagColumns...).From("tags").Where(squirrel.Eq{"name": names}))
}

func (r *tagRepository) List(ctx context.Context, filter models.TagFilter) ([]models.Tag, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("listing tags with filter: name=%q", filter.NameSubstr)

	query := sqlBuilder.Select(tagColumns...).From("tags")
	if filter.NameSubstr != "" {
		query = query.Where(containsLike("name", filter.NameSubstr))
	}
	return r.list(ctx, query)
}

func (r *tagRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]models.Tag, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")

	stmt, args, err := query.OrderBy("name").ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Error("failed to list tags: %v", err)
		return nil, err
	}
	defer rows.Close()
	var tags []models.Tag
	for rows.Next() {
		t, err := scanTag(rows.Scan)
		if err != nil {
			log.Error("failed to scan tag row: %v", err)
			return nil, err
		}
		tags = append(tags, t)
	}
	log.Debug("found %d tags", len(tags))
	return tags, rows.Err()
}
