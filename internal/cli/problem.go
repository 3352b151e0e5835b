package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vytor/srep/internal/errors"
	"github.com/vytor/srep/internal/models"
)

func newProblemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problem",
		Short: "Manage problems",
	}
	cmd.AddCommand(newProblemAddCmd(a), newProblemListCmd(a))
	return cmd
}

func newProblemAddCmd(a *app) *cobra.Command {
	var (
		difficulty string
		tags       []string
		url        string
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a problem tagged with existing tags",
		Example: `  srep problem add "two sum" --difficulty easy --tags arrays,hashing
  srep problem add "edit distance" -d hard -t dp --url https://example.com/edit-distance`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDifficulty("difficulty", difficulty)
			if err != nil {
				return err
			}
			problem, err := a.problems.Create(cmd.Context(), models.CreateProblemInput{
				Name:       args[0],
				Difficulty: d,
				URL:        url,
				Tags:       tags,
			})
			if err != nil {
				return err
			}
			return a.out.ProblemCreated(*problem)
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "EASY, MEDIUM or HARD")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Comma-separated tag names")
	cmd.Flags().StringVar(&url, "url", "", "Link to the problem statement")
	_ = cmd.MarkFlagRequired("difficulty")
	_ = cmd.MarkFlagRequired("tags")
	return cmd
}

func newProblemListCmd(a *app) *cobra.Command {
	var (
		name       string
		tags       []string
		difficulty string
		sortKey    string
		desc       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List problems with their knowledge and retention scores",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.ProblemFilter{NameSubstr: name, Tags: tags}
			if difficulty != "" {
				d, err := parseDifficulty("difficulty", difficulty)
				if err != nil {
					return err
				}
				filter.Difficulty = d
			}
			key := strings.ToLower(strings.TrimSpace(sortKey))
			if !validSortKey(key) {
				return errors.NewValidationError("sort", fmt.Sprintf("must be one of %s", strings.Join(models.ProblemSortKeys(), ", ")))
			}

			scores, err := a.problems.List(cmd.Context(), filter, models.ProblemSort{Key: key, Desc: desc}, a.now)
			if err != nil {
				return err
			}
			return a.out.Problems(scores)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Only problems whose name contains this text")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Only problems carrying any of these tags")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Only problems of this difficulty")
	cmd.Flags().StringVar(&sortKey, "sort", models.SortByKS, "Sort by "+strings.Join(models.ProblemSortKeys(), ", "))
	cmd.Flags().BoolVar(&desc, "desc", false, "Reverse the sort order")
	return cmd
}

func validSortKey(key string) bool {
	for _, k := range models.ProblemSortKeys() {
		if k == key {
			return true
		}
	}
	return false
}
