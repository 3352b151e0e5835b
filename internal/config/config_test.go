package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/srep/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		DBPath:    "test.db",
		LogLevel:  "WARN",
		LogFormat: config.LogFormatConsole,
		Output:    config.OutputTable,
		DueLimit:  20,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = "  "

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SREP_DB_PATH cannot be empty")
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"DEBUG", true},
		{"info", true},
		{"Warning", true},
		{"ERROR", true},
		{"", false},
		{"TRACE", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "SREP_LOG_LEVEL")
			}
		})
	}
}

func TestValidate_OutputAndFormat(t *testing.T) {
	for _, out := range []string{config.OutputTable, config.OutputJSON, config.OutputYAML} {
		cfg := validConfig()
		cfg.Output = out
		assert.NoError(t, cfg.Validate(), out)
	}

	cfg := validConfig()
	cfg.Output = "csv"
	cfg.LogFormat = "logfmt"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SREP_OUTPUT")
	assert.Contains(t, err.Error(), "SREP_LOG_FORMAT")
}

func TestValidate_DueLimit(t *testing.T) {
	cfg := validConfig()
	cfg.DueLimit = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SREP_DUE_LIMIT")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "SREP_DB_PATH cannot be empty")
	assert.Contains(t, errStr, "SREP_LOG_LEVEL")
	assert.Contains(t, errStr, "SREP_LOG_FORMAT")
	assert.Contains(t, errStr, "SREP_OUTPUT")
	assert.Contains(t, errStr, "SREP_DUE_LIMIT")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("SREP_DB_PATH", "custom.db")
	t.Setenv("SREP_OUTPUT", "json")
	t.Setenv("SREP_DUE_LIMIT", "5")

	cfg := config.Load()

	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 5, cfg.DueLimit)
}

func TestLoad_Defaults(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("SREP_DB_PATH", "")
	t.Setenv("SREP_LOG_LEVEL", "")
	t.Setenv("SREP_OUTPUT", "")
	t.Setenv("SREP_DUE_LIMIT", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, filepath.Join(dataHome, "srep", "srep.db"), cfg.DBPath)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.Equal(t, 20, cfg.DueLimit)
	assert.NoError(t, cfg.Validate())
}
