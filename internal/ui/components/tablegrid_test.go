package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGridKeepsExactWidth(t *testing.T) {
	cols := []TableColumn{
		{Header: "Skill", Width: 12},
		{Header: "Builders", Width: 8, Align: lipgloss.Right},
	}
	out := TableGrid(cols, [][]string{{"TypeScript", "2"}, {"A very long skill name indeed", "1"}}, 40)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
	assert.Contains(t, lines[0], "Skill")
	assert.Contains(t, lines[2], "TypeScript")
}

func TestTableGridActiveRowAndAlignment(t *testing.T) {
	cols := []TableColumn{{Header: "N", Width: 3, Align: lipgloss.Right}}
	out := TableGridWithActiveRow(cols, [][]string{{"7"}}, 10, 0)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, SanitizeText(lines[2]), "7")
}

func TestTableGridDegenerateInput(t *testing.T) {
	assert.Empty(t, TableGrid([]TableColumn{{Header: "x", Width: 1}}, nil, 0))
	assert.Equal(t, 5, lipgloss.Width(TableGrid(nil, nil, 5)))
}

func TestRenderGridCellAlign(t *testing.T) {
	assert.Equal(t, "ab  ", renderGridCell("ab", 4, lipgloss.Left))
	assert.Equal(t, "  ab", renderGridCell("ab", 4, lipgloss.Right))
	assert.Equal(t, " ab ", renderGridCell("ab", 4, lipgloss.Center))
	assert.Equal(t, "abc", renderGridCell("abcdef", 3, lipgloss.Left))
}
