package profile

import (
	"fmt"
	"strings"
)

// Markdown renders the full profile as a markdown document.
func (b Builder) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", b.Name)
	if b.Role != "" {
		fmt.Fprintf(&sb, "**%s**\n\n", b.Role)
	}
	if about := strings.TrimSpace(b.About()); about != "" {
		sb.WriteString("## About\n\n")
		sb.WriteString(about)
		sb.WriteString("\n\n")
	}
	if len(b.Skills) > 0 {
		sb.WriteString("## Skills\n\n")
		for _, s := range b.Skills {
			fmt.Fprintf(&sb, "- **%s**: %s\n", s, DefineSkill(s))
		}
		sb.WriteString("\n")
	}
	if len(b.Projects) > 0 {
		sb.WriteString("## Projects\n\n")
		for _, p := range b.Projects {
			fmt.Fprintf(&sb, "- [%s](%s)", p.Name, p.URL)
			if p.Description != "" {
				fmt.Fprintf(&sb, " %s", p.Description)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	if len(b.Socials) > 0 {
		sb.WriteString("## Links\n\n")
		for _, s := range b.Socials {
			fmt.Fprintf(&sb, "- %s: %s\n", s.Platform, s.URL)
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
