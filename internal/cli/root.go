// Package cli wires configuration, storage and services into the srep command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vytor/srep/internal/config"
	"github.com/vytor/srep/internal/db"
	"github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/logger"
	"github.com/vytor/srep/internal/presenter"
	"github.com/vytor/srep/internal/repository/sqlite"
	"github.com/vytor/srep/internal/services"
)

const skipDBAnnotation = "skip-db"

// app holds everything a command needs once the root pre-run has finished.
type app struct {
	cfg      config.Config
	now      time.Time
	log      *logger.Logger
	out      *presenter.Presenter
	database *db.DB

	tags     services.TagService
	problems services.ProblemService
	logs     services.LogService
	reviews  services.ReviewService
}

// NewRootCmd builds the srep command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "srep",
		Short: "Spaced repetition for algorithm practice",
		Long: `srep tracks attempts at algorithm problems, schedules reviews per
(problem, tag) pair and ranks tags by how urgently they need practice.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides SREP_DB_PATH)")
	flags.String("log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (overrides SREP_LOG_LEVEL)")
	flags.StringP("output", "o", "", "Output format: table, json or yaml (overrides SREP_OUTPUT)")
	flags.String("now", "", "Score as of this time (RFC3339 or YYYY-MM-DD) instead of the current time")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewValidationError("flags", err.Error())
	})

	rootCmd.AddCommand(
		newTagCmd(a),
		newProblemCmd(a),
		newLogCmd(a),
		newHistoryCmd(a),
		newDueCmd(a),
		newSimulateCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	// PersistentPostRunE is skipped when a command fails.
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	if err == nil {
		return 0
	}
	// Anything cobra rejects before a command runs is a usage problem.
	if _, ok := errors.As(err); !ok {
		err = errors.NewValidationError("usage", err.Error())
	}
	fmt.Fprintf(stderr, "Error: %s\n", errors.Message(err))
	return errors.ExitStatus(err)
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Load()

	flags := cmd.Flags()
	if v, _ := flags.GetString("db"); v != "" {
		a.cfg.DBPath = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		a.cfg.LogLevel = v
	}
	if v, _ := flags.GetString("output"); v != "" {
		a.cfg.Output = v
	}
	if err := a.cfg.Validate(); err != nil {
		return errors.NewValidationError("configuration", err.Error())
	}

	a.now = time.Now().UTC()
	if v, _ := flags.GetString("now"); v != "" {
		now, err := parseTime("now", v)
		if err != nil {
			return err
		}
		a.now = now
	}

	stderr := cmd.ErrOrStderr()
	_, isFile := stderr.(*os.File)
	a.log = logger.New(
		logger.WithOutput(stderr),
		logger.WithLevel(logger.ParseLevel(a.cfg.LogLevel)),
		logger.WithJSON(a.cfg.LogFormat == config.LogFormatJSON),
		logger.WithColors(isFile),
	)
	logger.SetDefault(a.log)
	a.log.Debug("configuration loaded")
	a.log.Debug("db_path=%s", a.cfg.DBPath)
	a.log.Debug("output=%s", a.cfg.Output)
	a.log.Debug("due_limit=%d", a.cfg.DueLimit)
	a.log.Debug("now=%s", a.now.Format(time.RFC3339))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.NewContext(ctx, a.log.WithField("command", cmd.CommandPath()))
	cmd.SetContext(ctx)

	out, err := presenter.New(a.cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return errors.NewValidationError("output", err.Error())
	}
	a.out = out

	if cmd.Annotations[skipDBAnnotation] == "true" || cmd.Name() == "help" {
		return nil
	}

	database, err := db.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return errors.NewInternalError(fmt.Errorf("open database %s: %w", a.cfg.DBPath, err))
	}
	a.database = database

	tagRepo := sqlite.NewTagRepository(database.DB)
	problemRepo := sqlite.NewProblemRepository(database.DB)
	logRepo := sqlite.NewProblemLogRepository(database.DB)

	a.tags = services.NewTagService(tagRepo, problemRepo, logRepo)
	a.problems = services.NewProblemService(tagRepo, problemRepo, logRepo)
	a.logs = services.NewLogService(problemRepo, logRepo)
	a.reviews = services.NewReviewService(problemRepo, logRepo)
	return nil
}

func (a *app) close() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.database == nil {
		return nil
	}
	err := a.database.Close()
	a.database = nil
	if err != nil {
		return errors.NewInternalError(fmt.Errorf("close database: %w", err))
	}
	return nil
}
