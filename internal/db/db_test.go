package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/srep/internal/db"
)

func TestOpen_CreatesDirectoryAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "srep.db")

	database, err := db.Open(ctx, path)
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"tags", "problems", "problem_tags", "problem_logs", "problem_log_tags"} {
		var name string
		err := database.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "srep.db")

	first, err := db.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.Open(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestProblemLogsAreAppendOnly(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.ExecContext(ctx, `INSERT INTO problems (name, difficulty) VALUES ('two-sum', 1)`)
	require.NoError(t, err)
	_, err = database.ExecContext(ctx, `INSERT INTO problem_logs (problem_id, result, logged_at) VALUES (1, 3, ?)`, time.Now().UTC())
	require.NoError(t, err)

	_, err = database.ExecContext(ctx, `UPDATE problem_logs SET result = 5 WHERE id = 1`)
	assert.ErrorContains(t, err, "append-only")

	_, err = database.ExecContext(ctx, `DELETE FROM problem_logs WHERE id = 1`)
	assert.ErrorContains(t, err, "append-only")
}

func TestForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.ExecContext(ctx, `INSERT INTO problem_tags (problem_id, tag_id) VALUES (42, 42)`)
	assert.Error(t, err)
}
