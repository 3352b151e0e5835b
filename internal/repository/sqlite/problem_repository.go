package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
)

var problemColumns = []string{"p.id", "p.name", "p.difficulty", "p.url", "p.created_at"}

type problemRepository struct {
	db *sql.DB
}

// NewProblemRepository creates a new ProblemRepository implementation
func NewProblemRepository(db *sql.DB) repository.ProblemRepository {
	return &problemRepository{db: db}
}

// Insert stores the problem and its tag links in one transaction. Tag IDs must be set.
func (r *problemRepository) Insert(ctx context.Context, p models.Problem) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("inserting problem: name=%s, difficulty=%s, tags=%v", p.Name, p.Difficulty, p.TagNames())

	var id int64
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		var url sql.NullString
		if p.URL != "" {
			url = sql.NullString{String: p.URL, Valid: true}
		}
		res, err := tx.ExecContext(ctx, `
INSERT INTO problems (name, difficulty, url)
VALUES (?, ?, ?)
`, p.Name, int(p.Difficulty), url)
		if err != nil {
			return wrapUnique(err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		return insertLinks(ctx, tx, "problem_tags", "problem_id", id, p.Tags)
	})
	if err != nil {
		log.Error("failed to insert problem: %v", err)
		return 0, err
	}
	log.Debug("problem inserted: id=%d", id)
	return id, nil
}

func (r *problemRepository) Get(ctx context.Context, id int64) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("getting problem: id=%d", id)

	return r.getOne(ctx, squirrel.Eq{"p.id": id})
}

func (r *problemRepository) GetByName(ctx context.Context, name string) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("getting problem: name=%s", name)

	return r.getOne(ctx, squirrel.Eq{"p.name": name})
}

func (r *problemRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Problem, error) {
	problems, err := r.query(ctx, sqlBuilder.Select(problemColumns...).From("problems p").Where(where))
	if err != nil {
		return nil, err
	}
	if len(problems) == 0 {
		logger.FromContext(ctx).WithPrefix("problem_repo").Debug("problem not found")
		return nil, nil
	}
	return &problems[0], nil
}

// List returns the problems matching every set field of filter. A tag filter
// matches problems carrying any of the given tags.
func (r *problemRepository) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("listing problems with filter: name=%q, tags=%v, difficulty=%d",
		filter.NameSubstr, filter.Tags, int(filter.Difficulty))

	query := sqlBuilder.Select(problemColumns...).From("problems p")
	if filter.NameSubstr != "" {
		query = query.Where(containsLike("p.name", filter.NameSubstr))
	}
	if filter.Difficulty != 0 {
		query = query.Where(squirrel.Eq{"p.difficulty": int(filter.Difficulty)})
	}
	if len(filter.Tags) > 0 {
		sub, args, err := sqlBuilder.Select("pt.problem_id").
			From("problem_tags pt").
			Join("tags t ON t.id = pt.tag_id").
			Where(squirrel.Eq{"t.name": filter.Tags}).
			ToSql()
		if err != nil {
			log.Error("failed to build tag filter: %v", err)
			return nil, err
		}
		query = query.Where("p.id IN ("+sub+")", args...)
	}
	return r.query(ctx, query.OrderBy("p.name"))
}

func (r *problemRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")

	stmt, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, err
	}
	var problems []models.Problem
	for rows.Next() {
		var (
			p   models.Problem
			d   int
			url sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &d, &url, &p.CreatedAt); err != nil {
			rows.Close()
			log.Error("failed to scan problem row: %v", err)
			return nil, err
		}
		p.Difficulty = models.Difficulty(d)
		p.URL = url.String
		p.CreatedAt = utc(p.CreatedAt)
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if err := r.attachTags(ctx, problems); err != nil {
		log.Error("failed to load problem tags: %v", err)
		return nil, err
	}
	log.Debug("found %d problems", len(problems))
	return problems, nil
}

func (r *problemRepository) attachTags(ctx context.Context, problems []models.Problem) error {
	if len(problems) == 0 {
		return nil
	}
	ids := make([]int64, len(problems))
	for i, p := range problems {
		ids[i] = p.ID
	}

	stmt, args, err := sqlBuilder.Select("pt.problem_id", "t.id", "t.name", "t.experience_target", "t.created_at").
		From("problem_tags pt").
		Join("tags t ON t.id = pt.tag_id").
		Where(squirrel.Eq{"pt.problem_id": ids}).
		OrderBy("pt.problem_id", "t.name").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byProblem := make(map[int64][]models.Tag, len(problems))
	for rows.Next() {
		var problemID int64
		var t models.Tag
		if err := rows.Scan(&problemID, &t.ID, &t.Name, &t.ExperienceTarget, &t.CreatedAt); err != nil {
			return err
		}
		t.CreatedAt = utc(t.CreatedAt)
		byProblem[problemID] = append(byProblem[problemID], t)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for i := range problems {
		problems[i].Tags = byProblem[problems[i].ID]
	}
	return nil
}
