package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Helper functions shared across repository implementations

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	log := logger.FromContext(ctx).WithPrefix("repo")
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		log.Debug("transaction rolled back due to error: %v", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction: %v", err)
		return err
	}
	log.Debug("transaction committed")
	return nil
}

// wrapUnique marks unique constraint violations as repository.ErrDuplicate.
func wrapUnique(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	}
	return err
}

// containsLike matches substr anywhere in column, treating LIKE wildcards literally.
func containsLike(column, substr string) squirrel.Sqlizer {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(substr)
	return squirrel.Expr(column+` LIKE ? ESCAPE '\'`, "%"+escaped+"%")
}

func utc(t time.Time) time.Time {
	return t.UTC()
}

func scanTag(scan func(dest ...any) error) (models.Tag, error) {
	var t models.Tag
	if err := scan(&t.ID, &t.Name, &t.ExperienceTarget, &t.CreatedAt); err != nil {
		return t, err
	}
	t.CreatedAt = utc(t.CreatedAt)
	return t, nil
}

// insertLinks writes (owner, tag) rows into a join table.
func insertLinks(ctx context.Context, q querier, table, ownerColumn string, ownerID int64, tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	insert := sqlBuilder.Insert(table).Columns(ownerColumn, "tag_id").Options("OR IGNORE")
	for _, t := range tags {
		insert = insert.Values(ownerID, t.ID)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, query, args...)
	return err
}
