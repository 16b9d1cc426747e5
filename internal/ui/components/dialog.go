package components

import (
	"github.com/charmbracelet/lipgloss"
)

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorBorder).
	Padding(1, 2).
	Width(44)

var (
	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(colorText)
	dialogHintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	header := dialogTitleStyle.Render(SanitizeOneLine(title))
	body := dialogBodyStyle.Render(SanitizeText(message))
	hint := dialogHintStyle.Render("\ny: confirm | n: cancel")

	return dialogStyle.Render(header + "\n\n" + body + hint)
}

// NoticeDialog renders a message that any key dismisses.
func NoticeDialog(title, message string) string {
	header := dialogTitleStyle.Render(SanitizeOneLine(title))
	body := dialogBodyStyle.Render(SanitizeText(message))
	hint := dialogHintStyle.Render("\nesc: close")

	return dialogStyle.Render(header + "\n\n" + body + hint)
}
