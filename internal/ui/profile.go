package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/builderhub/builderhub/cli/internal/profile"
	"github.com/builderhub/builderhub/cli/internal/ui/components"
)

const (
	profileModalDefaultWidth = 72
	profileModalChrome       = 8 // box border, padding, and title row
	profileModalMinHeight    = 6
)

// ProfileModal shows one builder's full profile in a scrollable viewport.
type ProfileModal struct {
	builder profile.Builder
	vp      viewport.Model
	width   int
	height  int
}

// NewProfileModal renders b for a terminal of the given size.
func NewProfileModal(b profile.Builder, width, height int) ProfileModal {
	m := ProfileModal{builder: b}
	m.resize(width, height)
	return m
}

// Builder returns the builder on display.
func (m ProfileModal) Builder() profile.Builder {
	return m.builder
}

func (m *ProfileModal) resize(width, height int) {
	m.width, m.height = width, height
	w := components.BoxContentWidth(width)
	if w <= 0 {
		w = profileModalDefaultWidth
	}
	h := height - profileModalChrome
	if height <= 0 {
		h = 20
	}
	h = max(h, profileModalMinHeight)

	m.vp = viewport.New(w, h)
	m.vp.SetContent(renderProfileMarkdown(m.builder, w))
}

// renderProfileMarkdown renders the profile with glamour, falling back to
// the sanitized markdown when the renderer fails.
func renderProfileMarkdown(b profile.Builder, width int) string {
	md := components.SanitizeText(b.Markdown())
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// Update scrolls the viewport. Closing is handled by the app.
func (m ProfileModal) Update(msg tea.Msg) (ProfileModal, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ProfileModal) View() string {
	scroll := ""
	if !m.vp.AtTop() || !m.vp.AtBottom() {
		scroll = "\n" + MutedStyle.Render(scrollHint(m.vp.ScrollPercent()))
	}
	title := components.SanitizeOneLine(m.builder.Name)
	return components.ActiveTitledBox(title, m.vp.View()+scroll, m.width)
}

func scrollHint(pct float64) string {
	switch {
	case pct <= 0:
		return "↓ more"
	case pct >= 1:
		return "↑ top"
	default:
		return "↑/↓ scroll"
	}
}
