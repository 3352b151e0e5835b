package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/validation"
)

func TestStruct_CreateTagInput(t *testing.T) {
	tests := []struct {
		name    string
		input   models.CreateTagInput
		message string
	}{
		{"valid", models.CreateTagInput{Name: "dp", ExperienceTarget: 5}, ""},
		{"empty name", models.CreateTagInput{Name: "", ExperienceTarget: 5}, "validation failed for name: is required"},
		{"name too long", models.CreateTagInput{Name: strings.Repeat("x", 26), ExperienceTarget: 5}, "validation failed for name: must be at most 25 characters"},
		{"name at limit", models.CreateTagInput{Name: strings.Repeat("x", 25), ExperienceTarget: 5}, ""},
		{"target too low", models.CreateTagInput{Name: "dp", ExperienceTarget: 0}, "validation failed for experience_target: must be at least 1"},
		{"target too high", models.CreateTagInput{Name: "dp", ExperienceTarget: 16}, "validation failed for experience_target: must be at most 15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.input)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestStruct_CreateProblemInput(t *testing.T) {
	valid := models.CreateProblemInput{Name: "two-sum", Difficulty: models.Easy, Tags: []string{"arrays"}}
	assert.NoError(t, validation.Struct(valid))

	noTags := valid
	noTags.Tags = nil
	assert.True(t, apperrors.IsValidation(validation.Struct(noTags)))

	badDifficulty := valid
	badDifficulty.Difficulty = 0
	err := validation.Struct(badDifficulty)
	require.Error(t, err)
	assert.Contains(t, apperrors.Message(err), "difficulty: must be one of EASY, MEDIUM, HARD")

	longTag := valid
	longTag.Tags = []string{"ok", strings.Repeat("t", 26)}
	err = validation.Struct(longTag)
	require.Error(t, err)
	assert.Contains(t, apperrors.Message(err), "tags[1]")

	longURL := valid
	longURL.URL = "https://" + strings.Repeat("u", 250)
	assert.True(t, apperrors.IsValidation(validation.Struct(longURL)))
}

func TestStruct_LogInput(t *testing.T) {
	valid := models.LogInput{ProblemName: "two-sum", Result: models.NoIdea}
	assert.NoError(t, validation.Struct(valid), "NO_IDEA is a valid zero result")

	badResult := valid
	badResult.Result = 6
	err := validation.Struct(badResult)
	require.Error(t, err)
	assert.Contains(t, apperrors.Message(err), "result: must be one of NO_IDEA")

	longComment := valid
	longComment.Comment = strings.Repeat("c", 256)
	err = validation.Struct(longComment)
	require.Error(t, err)
	assert.Equal(t, "validation failed for comment: must be at most 255 characters", apperrors.Message(err))

	atLimit := valid
	atLimit.Comment = strings.Repeat("c", 255)
	assert.NoError(t, validation.Struct(atLimit))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "dp", validation.SanitizeText("  dp \t"))
	assert.Equal(t, "ab", validation.SanitizeText("a\x00b"))
	assert.Equal(t, "line\nnext", validation.SanitizeText("line\nnext"))
}

func TestSanitizeNames(t *testing.T) {
	assert.Equal(t, []string{"dp", "graphs"}, validation.SanitizeNames([]string{" dp", "graphs", "", "dp "}))
	assert.Empty(t, validation.SanitizeNames(nil))
}
