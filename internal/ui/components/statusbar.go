package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
	keyCapStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// StatusBar renders the bottom hint bar. Hints that do not fit on one line
// wrap onto centred rows.
func StatusBar(hints []string, width int) string {
	segments := lo.Map(hints, func(h string, _ int) string { return segmentStyle.Render(h) })
	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	if width <= 0 {
		return statusBarStyle.Render(rows[0])
	}

	rowWidth := lo.Max(lo.Map(rows, func(r string, _ int) int { return lipgloss.Width(r) }))
	centred := lo.Map(rows, func(r string, _ int) string {
		return lipgloss.NewStyle().Width(rowWidth).Align(lipgloss.Center).Render(r)
	})
	return statusBarStyle.Width(width).Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Left, centred...))
}

// Hint formats one key hint as "Desc [key]".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

// BindingHints turns enabled key bindings into hints, title-casing the help
// text.
func BindingHints(bindings ...key.Binding) []string {
	enabled := lo.Filter(bindings, func(b key.Binding, _ int) bool { return b.Enabled() })
	return lo.Map(enabled, func(b key.Binding, _ int) string {
		h := b.Help()
		return Hint(h.Key, titleCase(h.Desc))
	})
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// wrapSegments packs segments greedily into rows no wider than width. A
// segment wider than width gets a row of its own.
func wrapSegments(segments []string, width int) []string {
	if len(segments) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	var rows [][]string
	used := width + 1
	for _, seg := range segments {
		w := lipgloss.Width(seg)
		if used+w > width {
			rows = append(rows, nil)
			used = 0
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], seg)
		used += w
	}
	return lo.Map(rows, func(r []string, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, r...)
	})
}
