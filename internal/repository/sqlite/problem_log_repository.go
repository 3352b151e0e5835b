package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
)

type problemLogRepository struct {
	db *sql.DB
}

// NewProblemLogRepository creates a new ProblemLogRepository implementation
func NewProblemLogRepository(db *sql.DB) repository.ProblemLogRepository {
	return &problemLogRepository{db: db}
}

// Insert appends the attempt and its tag links in one transaction. Tag IDs must be set.
func (r *problemLogRepository) Insert(ctx context.Context, l models.ProblemLog) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("log_repo")
	log.Debug("inserting problem log: problem_id=%d, result=%s, tags=%d", l.ProblemID, l.Result, len(l.Tags))

	var id int64
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO problem_logs (problem_id, result, logged_at, comment)
VALUES (?, ?, ?, ?)
`, l.ProblemID, int(l.Result), utc(l.Timestamp), l.Comment)
		if err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		return insertLinks(ctx, tx, "problem_log_tags", "log_id", id, l.Tags)
	})
	if err != nil {
		log.Error("failed to insert problem log: %v", err)
		return 0, err
	}
	log.Debug("problem log inserted: id=%d", id)
	return id, nil
}

func (r *problemLogRepository) List(ctx context.Context, filter models.ProblemLogFilter) ([]models.ProblemLog, error) {
	log := logger.FromContext(ctx).WithPrefix("log_repo")
	log.Debug("listing problem logs: problem_ids=%v", filter.ProblemIDs)

	if filter.ProblemIDs != nil && len(filter.ProblemIDs) == 0 {
		return nil, nil
	}

	query := sqlBuilder.Select("l.id", "l.problem_id", "l.result", "l.logged_at", "l.comment").
		From("problem_logs l").
		OrderBy("l.logged_at", "l.id")
	if filter.ProblemIDs != nil {
		query = query.Where(squirrel.Eq{"l.problem_id": filter.ProblemIDs})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Error("failed to list problem logs: %v", err)
		return nil, err
	}
	var logs []models.ProblemLog
	for rows.Next() {
		var (
			l      models.ProblemLog
			result int
		)
		if err := rows.Scan(&l.ID, &l.ProblemID, &result, &l.Timestamp, &l.Comment); err != nil {
			rows.Close()
			log.Error("failed to scan problem log row: %v", err)
			return nil, err
		}
		l.Result = models.Result(result)
		l.Timestamp = utc(l.Timestamp)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if err := r.attachTags(ctx, logs, filter); err != nil {
		log.Error("failed to load problem log tags: %v", err)
		return nil, err
	}
	log.Debug("found %d problem logs", len(logs))
	return logs, nil
}

func (r *problemLogRepository) attachTags(ctx context.Context, logs []models.ProblemLog, filter models.ProblemLogFilter) error {
	if len(logs) == 0 {
		return nil
	}

	query := sqlBuilder.Select("lt.log_id", "t.id", "t.name", "t.experience_target", "t.created_at").
		From("problem_log_tags lt").
		Join("tags t ON t.id = lt.tag_id").
		OrderBy("lt.log_id", "t.name")
	if filter.ProblemIDs != nil {
		query = query.
			Join("problem_logs l ON l.id = lt.log_id").
			Where(squirrel.Eq{"l.problem_id": filter.ProblemIDs})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return err
	}
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byLog := make(map[int64][]models.Tag, len(logs))
	for rows.Next() {
		var logID int64
		var t models.Tag
		if err := rows.Scan(&logID, &t.ID, &t.Name, &t.ExperienceTarget, &t.CreatedAt); err != nil {
			return err
		}
		t.CreatedAt = utc(t.CreatedAt)
		byLog[logID] = append(byLog[logID], t)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for i := range logs {
		logs[i].Tags = byLog[logs[i].ID]
	}
	return nil
}
