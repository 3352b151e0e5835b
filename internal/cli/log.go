package cli

import (
	"github.com/spf13/cobra"

	"github.com/vytor/srep/internal/models"
)

func newLogCmd(a *app) *cobra.Command {
	var (
		result  string
		tags    []string
		comment string
		at      string
	)

	cmd := &cobra.Command{
		Use:   "log PROBLEM",
		Short: "Record an attempt at a problem",
		Long: `Record an attempt at a problem. The result is one of NO_IDEA,
SOLVED_SUBOPTIMALLY, SOLVED_OPTIMALLY_WITH_HINT, SOLVED_OPTIMALLY_SLOWER,
SOLVED_OPTIMALLY_IN_UNDER_25 or KNEW_BY_HEART, or its ordinal 0 to 5.
Without --tags the attempt counts for every tag of the problem.`,
		Example: `  srep log "two sum" --result knew_by_heart
  srep log "edit distance" -r 3 --tags dp --comment "forgot the base case"`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseResult("result", result)
			if err != nil {
				return err
			}
			ts := a.now
			if at != "" {
				if ts, err = parseTime("at", at); err != nil {
					return err
				}
			}

			receipt, err := a.logs.Log(cmd.Context(), models.LogInput{
				ProblemName: args[0],
				Result:      r,
				Tags:        tags,
				Comment:     comment,
				Timestamp:   ts,
			})
			if err != nil {
				return err
			}
			return a.out.ProblemLogged(*receipt)
		},
	}
	cmd.Flags().StringVarP(&result, "result", "r", "", "Outcome of the attempt")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Tags practised by the attempt (default: every tag of the problem)")
	cmd.Flags().StringVarP(&comment, "comment", "m", "", "Free-form note")
	cmd.Flags().StringVar(&at, "at", "", "When the attempt happened (default: now)")
	_ = cmd.MarkFlagRequired("result")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "history PROBLEM",
		Short: "Show every attempt at a problem with the schedule it produced",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.logs.History(cmd.Context(), args[0], tag)
			if err != nil {
				return err
			}
			return a.out.History(entries)
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only attempts counted for this tag")
	return cmd
}
