package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/builderhub/builderhub/cli/internal/profile"
)

// ListCmd returns the `builderhub list` command.
func ListCmd() *cobra.Command {
	var (
		query  string
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List builders in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			builders, err := buildersFor(cmd)
			if err != nil {
				return err
			}
			matches := profile.Filter(builders, query)
			out := cmd.OutOrStdout()

			switch format {
			case "yaml":
				data, err := profile.MarshalFile(matches)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			case "table", "":
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", format)
			}

			if len(matches) == 0 {
				fmt.Fprintln(out, "No builders found matching your criteria.")
				return nil
			}
			fmt.Fprintln(out, buildersTable(matches))
			stats := profile.ComputeStats(matches)
			fmt.Fprintf(out, "%d builders, %d projects, %d skills\n", stats.Builders, stats.Projects, stats.Skills)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name, role, or skill")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or yaml")
	return cmd
}

func buildersTable(builders []profile.Builder) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "ROLE", "SKILLS")
	for _, b := range builders {
		t.Row(b.Name, b.Role, strings.Join(b.Skills, ", "))
	}
	return t.String()
}

// ShowCmd returns the `builderhub show` command.
func ShowCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one builder's full profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builders, err := buildersFor(cmd)
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			b, ok := profile.FindByName(builders, name)
			if !ok {
				return fmt.Errorf("builder %q not found", name)
			}

			md := b.Markdown()
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("create renderer: %w", err)
			}
			rendered, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("render profile: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without styling")
	return cmd
}
