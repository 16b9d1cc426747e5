package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/builderhub/builderhub/cli/internal/profile"
)

// SkillsCmd returns the `builderhub skills` command.
func SkillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List every skill in the directory with its definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			builders, err := buildersFor(cmd)
			if err != nil {
				return err
			}
			skills := profile.UniqueSkills(builders)
			if len(skills) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no skills found")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("SKILL", "DEFINITION")
			for _, s := range skills {
				t.Row(s, profile.DefineSkill(s))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}
