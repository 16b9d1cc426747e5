package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	boxMinWidth = 40
	boxMaxWidth = 84
	// boxChrome is the rounded border plus two columns of padding per side.
	boxChrome = 6
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	boxActiveStyle = boxStyle.
			BorderForeground(colorPrimary)

	errorBoxStyle = boxStyle.
			BorderForeground(colorErrorBd)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	boxMutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	boxLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(colorErrorFg).
				Bold(true)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))

	chipStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorAccent).
			Padding(0, 1)

	barFillStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	barTrackStyle = lipgloss.NewStyle().
			Foreground(colorFaint)
)

// boxWidth is ~70% of the terminal, kept between boxMinWidth and boxMaxWidth.
// Unknown widths (<= 0) leave the box unsized.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	return min(max(width*70/100, boxMinWidth), boxMaxWidth)
}

// safeBoxWidth is boxWidth clamped to the terminal itself.
func safeBoxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	return min(boxWidth(width), width)
}

// BoxContentWidth returns the inner content width excluding border and padding.
func BoxContentWidth(width int) int {
	return max(safeBoxWidth(width)-boxChrome, 0)
}

// ClampTextWidth flattens text to one sanitized line no wider than width.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(errorHeaderStyle.Render(title) + "\n\n")
	}
	b.WriteString(errorBodyStyle.Render(message))
	return errorBoxStyle.Width(safeBoxWidth(width)).Render(b.String())
}

// TitledBox renders a box with "[ title ]" set into its top border.
func TitledBox(title, content string, width int) string {
	return titledBox(boxStyle, colorBorder, title, content, width)
}

// ActiveTitledBox is TitledBox with the highlighted border, used for the
// focused modal.
func ActiveTitledBox(title, content string, width int) string {
	return titledBox(boxActiveStyle, colorPrimary, title, content, width)
}

func titledBox(style lipgloss.Style, borderColor lipgloss.Color, title, content string, width int) string {
	boxed := style.Width(safeBoxWidth(width)).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	outer := lipgloss.Width(lines[0])
	if outer < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	inner := outer - 2
	label := truncateRunes(fmt.Sprintf(" [ %s ] ", SanitizeOneLine(title)), inner)
	left := (inner - lipgloss.Width(label)) / 2
	right := inner - lipgloss.Width(label) - left

	edge := lipgloss.NewStyle().Foreground(borderColor)
	lines[0] = edge.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		boxHeaderStyle.Render(label) +
		edge.Render(strings.Repeat(border.Top, right)+border.TopRight)
	return strings.Join(lines, "\n")
}

// truncateRunes keeps the first n runes of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

// Chip renders a skill tag.
func Chip(text string) string {
	return chipStyle.Render(SanitizeOneLine(text))
}

// Chips renders up to limit tags on one line, with a "+n" overflow marker.
// limit <= 0 renders them all.
func Chips(items []string, limit int) string {
	if len(items) == 0 {
		return ""
	}
	shown := items
	if limit > 0 && len(items) > limit {
		shown = items[:limit]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, it := range shown {
		parts = append(parts, Chip(it))
	}
	if rest := len(items) - len(shown); rest > 0 {
		parts = append(parts, boxMutedStyle.Render(fmt.Sprintf("+%d", rest)))
	}
	return strings.Join(parts, " ")
}

// ProgressBar renders a fixed-width bar filled to pct percent.
func ProgressBar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	filled := min(max(pct, 0), 100) * width / 100
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barTrackStyle.Render(strings.Repeat("░", width-filled))
}
