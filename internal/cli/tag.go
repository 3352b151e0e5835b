package cli

import (
	"github.com/spf13/cobra"

	"github.com/vytor/srep/internal/models"
)

func newTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}
	cmd.AddCommand(newTagAddCmd(a), newTagListCmd(a))
	return cmd
}

func newTagAddCmd(a *app) *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a tag",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.tags.Create(cmd.Context(), models.CreateTagInput{
				Name:             args[0],
				ExperienceTarget: target,
			})
			if err != nil {
				return err
			}
			return a.out.TagCreated(*tag)
		},
	}
	cmd.Flags().IntVar(&target, "target", models.DefaultExperienceTarget, "Number of problems that count as full experience with the tag")
	return cmd
}

func newTagListCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags ranked by study priority, most urgent first",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			priorities, err := a.tags.Prioritize(cmd.Context(), models.TagFilter{NameSubstr: name}, a.now)
			if err != nil {
				return err
			}
			return a.out.Tags(priorities)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Only tags whose name contains this text")
	return cmd
}
