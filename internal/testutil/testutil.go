package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/srep/internal/db"
	"github.com/vytor/srep/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The pool is pinned to one connection so every query sees the same database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB), "failed to apply migrations")
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Epoch is a fixed reference time for tests.
var Epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// Day returns Epoch shifted by n days.
func Day(n int) time.Time {
	return Epoch.AddDate(0, 0, n)
}

// Tag builds a stored-looking tag.
func Tag(id int64, name string) models.Tag {
	return models.Tag{ID: id, Name: name, ExperienceTarget: models.DefaultExperienceTarget, CreatedAt: Epoch}
}

// Problem builds a stored-looking problem carrying tags.
func Problem(id int64, name string, d models.Difficulty, tags ...models.Tag) models.Problem {
	return models.Problem{ID: id, Name: name, Difficulty: d, Tags: tags, CreatedAt: Epoch}
}

// Log builds a stored-looking attempt.
func Log(id, problemID int64, r models.Result, at time.Time, tags ...models.Tag) models.ProblemLog {
	return models.ProblemLog{ID: id, ProblemID: problemID, Result: r, Timestamp: at, Tags: tags}
}
