package cli

import (
	"github.com/spf13/cobra"

	"github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/spacing"
)

func newDueCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List (problem, tag) pairs whose review is due, least retained first",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.DueLimit
			}
			items, err := a.reviews.Due(cmd.Context(), a.now, limit)
			if err != nil {
				return err
			}
			return a.out.Reviews(items)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of reviews to show, 0 for all (default from SREP_DUE_LIMIT)")
	return cmd
}

func newSimulateCmd(a *app) *cobra.Command {
	var every int

	cmd := &cobra.Command{
		Use:   "simulate RESULT...",
		Short: "Show the schedule a sequence of results would produce",
		Example: `  srep simulate knew_by_heart solved_optimally_slower no_idea
  srep simulate 5 5 5 --every 30`,
		Args:        minimumArgs(1),
		Annotations: map[string]string{skipDBAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if every < 0 {
				return errors.NewValidationError("every", "must not be negative")
			}
			results := make([]models.Result, 0, len(args))
			for _, arg := range args {
				r, err := parseResult("results", arg)
				if err != nil {
					return err
				}
				results = append(results, r)
			}
			return a.out.Simulation(spacing.Simulate(results, every))
		},
	}
	cmd.Flags().IntVar(&every, "every", 0, "Days between attempts (default: attempt exactly when due)")
	return cmd
}
