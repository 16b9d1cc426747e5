package components

import "github.com/charmbracelet/lipgloss"

// Shared palette for the component renderers. The ui package mirrors these
// in its theme.
var (
	colorPrimary = lipgloss.Color("#00d4ff")
	colorAccent  = lipgloss.Color("#00ff88")
	colorText    = lipgloss.Color("#d7d9da")
	colorMuted   = lipgloss.Color("#8b93a7")
	colorFaint   = lipgloss.Color("#4a5263")
	colorBorder  = lipgloss.Color("#1f3440")
	colorBase    = lipgloss.Color("#0a0a14")
	colorErrorBd = lipgloss.Color("#7a2f3a")
	colorErrorFg = lipgloss.Color("#e06c75")
)
