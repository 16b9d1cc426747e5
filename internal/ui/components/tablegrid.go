package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
)

// TableColumn defines a single column for TableGrid.
//
// Width is the visual width of the column content (excluding separators).
// Align controls how cell text is aligned within the column.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const tableGridLeftOffset = 2

var (
	gridActiveBg = lipgloss.Color("#10222c")

	gridLineStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	gridHeaderStyle = boxLabelStyle

	gridActiveRowStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(gridActiveBg).
				Bold(true)
)

// TableGrid renders rows under a header rule with column separators only.
// Every returned line is exactly tableWidth wide.
func TableGrid(columns []TableColumn, rows [][]string, tableWidth int) string {
	return TableGridWithActiveRow(columns, rows, tableWidth, -1)
}

// TableGridWithActiveRow is like TableGrid but highlights one data row by index.
// activeRow is a 0-based index into rows; pass -1 to disable highlighting.
func TableGridWithActiveRow(columns []TableColumn, rows [][]string, tableWidth int, activeRow int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	cols := fitGridColumns(columns, tableWidth)
	cells := func(raw []string) []string {
		return lo.Map(cols, func(c TableColumn, i int) string {
			text := ""
			if i < len(raw) {
				text = SanitizeOneLine(raw[i])
			}
			return renderGridCell(text, c.Width, c.Align)
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(gridLineStyle).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(true).
		BorderHeader(true).
		Headers(cells(lo.Map(cols, func(c TableColumn, _ int) string { return c.Header }))...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return gridHeaderStyle
			case row == activeRow:
				return gridActiveRowStyle
			}
			return lipgloss.NewStyle()
		})
	for _, r := range rows {
		t.Row(cells(r)...)
	}

	indent := strings.Repeat(" ", tableGridLeftOffset)
	lines := strings.Split(t.String(), "\n")
	for i, line := range lines {
		lines[i] = padRight(indent+line, tableWidth)
	}
	return strings.Join(lines, "\n")
}

// fitGridColumns stretches or shrinks the last column so the columns and
// their separators fill tableWidth.
func fitGridColumns(columns []TableColumn, tableWidth int) []TableColumn {
	fitted := lo.Map(columns, func(c TableColumn, _ int) TableColumn {
		c.Width = max(c.Width, 1)
		return c
	})
	content := max(tableWidth-tableGridLeftOffset, len(fitted))
	used := lo.SumBy(fitted, func(c TableColumn) int { return c.Width }) + len(fitted) - 1
	last := &fitted[len(fitted)-1]
	last.Width = max(last.Width+content-used, 1)
	return fitted
}

func renderGridCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	clamped := truncateRunes(ClampTextWidth(text, width), width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return clamped
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
