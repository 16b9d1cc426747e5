package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
██████╗ ██╗   ██╗██╗██╗     ██████╗ ███████╗██████╗ ██╗  ██╗██╗   ██╗██████╗
██╔══██╗██║   ██║██║██║     ██╔══██╗██╔════╝██╔══██╗██║  ██║██║   ██║██╔══██╗
██████╔╝██║   ██║██║██║     ██║  ██║█████╗  ██████╔╝███████║██║   ██║██████╔╝
██╔══██╗██║   ██║██║██║     ██║  ██║██╔══╝  ██╔══██╗██╔══██║██║   ██║██╔══██╗
██████╔╝╚██████╔╝██║███████╗██████╔╝███████╗██║  ██║██║  ██║╚██████╔╝██████╔╝
╚═════╝  ╚═════╝ ╚═╝╚══════╝╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝`

const bannerSubtitle = "Builder Discovery Platform • Terminal Edition"

// bannerGradient runs top to bottom from cyan to terminal green.
var bannerGradient = []lipgloss.Color{"#00d4ff", "#00dcdf", "#00e4c0", "#00eca8", "#00f594", "#00ff88"}

// compactBannerWidth is the narrowest terminal that gets the full art.
const compactBannerWidth = 80

// RenderBanner returns the styled ASCII banner. Terminals narrower than the
// art get a one-line wordmark instead.
func RenderBanner(width int) string {
	if width > 0 && width < compactBannerWidth {
		return "\n" + BannerStyle.Render("BUILDERHUB") + "\n" + MutedStyle.Render(bannerSubtitle) + "\n"
	}

	lines := splitLines(bannerArt)
	var rendered strings.Builder

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	row := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		color := bannerGradient[min(row, len(bannerGradient)-1)]
		rendered.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(line) + "\n")
		row++
	}

	subtitleWidth := lipgloss.Width(bannerSubtitle)
	blockWidth := max(maxWidth, subtitleWidth)

	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(bannerSubtitle)

	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return "\n" + rendered.String() + "\n" + subtitle + "\n" + underline + "\n"
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
