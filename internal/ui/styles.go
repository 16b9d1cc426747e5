package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#00d4ff") // cyan
	ColorSecondary  = lipgloss.Color("#3b82f6") // blue
	ColorAccent     = lipgloss.Color("#00ff88") // terminal green
	ColorBackground = lipgloss.Color("#0a0a14") // near black
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#8b93a7") // muted text
	ColorFaint      = lipgloss.Color("#4a5263") // far cards
	ColorSuccess    = lipgloss.Color("#10b981") // green
	ColorError      = lipgloss.Color("#e06c75") // red
	ColorWarning    = lipgloss.Color("#f97316") // orange
	ColorBorder     = lipgloss.Color("#1f3440") // border
	ColorFeatured   = lipgloss.Color("#a855f7") // featured badge
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FaintStyle = lipgloss.NewStyle().
			Foreground(ColorFaint)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			PaddingBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	FeaturedBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorBackground).
				Background(ColorFeatured).
				Bold(true).
				Padding(0, 1)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Carousel cards. The centre card gets the thick primary border.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardActiveStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)
)
