package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/models"
)

const dateLayout = "2006-01-02"

// exactArgs is cobra.ExactArgs reporting a validation error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.NewValidationError("arguments", fmt.Sprintf("%s accepts %d arg(s), received %d", cmd.CommandPath(), n, len(args)))
		}
		return nil
	}
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return errors.NewValidationError("arguments", fmt.Sprintf("%s requires at least %d arg(s), only received %d", cmd.CommandPath(), n, len(args)))
		}
		return nil
	}
}

// parseTime accepts RFC3339 timestamps or plain dates, which are taken as UTC midnight.
func parseTime(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewValidationError(field, fmt.Sprintf("%q is not an RFC3339 timestamp or YYYY-MM-DD date", s))
}

func parseResult(field, s string) (models.Result, error) {
	r, err := models.ParseResult(s)
	if err != nil {
		return 0, errors.NewValidationError(field, err.Error())
	}
	return r, nil
}

func parseDifficulty(field, s string) (models.Difficulty, error) {
	d, err := models.ParseDifficulty(s)
	if err != nil {
		return 0, errors.NewValidationError(field, err.Error())
	}
	return d, nil
}
