package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/srep/internal/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.Level
	}{
		{"debug", logger.DEBUG},
		{"INFO", logger.INFO},
		{"warning", logger.WARN},
		{"Warn", logger.WARN},
		{"ERROR", logger.ERROR},
		{"bogus", logger.INFO},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	l.Debug("hidden %d", 1)
	l.Info("hidden too")
	l.Warn("shown %s", "here")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown here")
}

func TestLogger_PrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.DEBUG), logger.WithJSON(true))

	l.WithPrefix("tag_repo").WithField("tag", "dp").Info("inserted tag id=%d", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "tag_repo", entry["logger"])
	assert.Equal(t, "dp", entry["tag"])
	assert.Equal(t, "inserted tag id=7", entry["msg"])
	assert.Equal(t, "info", entry["level"])
}

func TestLogger_WithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.DEBUG), logger.WithJSON(true))

	_ = parent.WithFields(map[string]any{"problem": "two-sum"})
	parent.Info("plain")

	assert.NotContains(t, buf.String(), "two-sum")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.ERROR))
	child := l.WithPrefix("child")

	assert.False(t, child.Enabled(logger.DEBUG))
	l.SetLevel(logger.DEBUG)
	assert.True(t, child.Enabled(logger.DEBUG))

	child.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestContext(t *testing.T) {
	l := logger.New(logger.WithOutput(&bytes.Buffer{}))

	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
	assert.Same(t, l, logger.FromContext(logger.NewContext(context.Background(), l)))
}
