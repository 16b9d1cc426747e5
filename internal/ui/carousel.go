package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/builderhub/builderhub/cli/internal/carousel"
	"github.com/builderhub/builderhub/cli/internal/profile"
	"github.com/builderhub/builderhub/cli/internal/sound"
	"github.com/builderhub/builderhub/cli/internal/ui/components"
)

const (
	emptyDirectoryText = "No builders found matching your criteria."

	baseCardWidth = 30
	cardHeight    = 9
	// cardChrome is border plus horizontal padding.
	cardChrome = 4
)

// builderActivatedMsg is emitted when the centre card is opened.
type builderActivatedMsg struct {
	builder profile.Builder
}

// CarouselModel renders the directory as a fan of cards around the focus.
type CarouselModel struct {
	win    *carousel.Windower[profile.Builder]
	dots   paginator.Model
	keys   CarouselKeyMap
	player sound.Player
	width  int
}

// NewCarouselModel creates an empty carousel.
func NewCarouselModel(player sound.Player) CarouselModel {
	if player == nil {
		player = sound.Muted{}
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = SelectedStyle.Render("●")
	p.InactiveDot = FaintStyle.Render("○")
	p.KeyMap = paginator.KeyMap{}

	return CarouselModel{
		win:    carousel.New(profile.BuilderID),
		dots:   p,
		keys:   DefaultCarouselKeyMap(),
		player: player,
	}
}

// SetBuilders replaces the source list.
func (m *CarouselModel) SetBuilders(builders []profile.Builder) {
	m.win.SetSource(builders)
	m.syncDots()
}

// Builders returns the current source list.
func (m CarouselModel) Builders() []profile.Builder {
	return m.win.Source()
}

// Center returns the focused builder.
func (m CarouselModel) Center() (profile.Builder, bool) {
	return m.win.Center()
}

// ActiveDot returns the source index under the focus, -1 when empty.
func (m CarouselModel) ActiveDot() int {
	return m.win.ActiveDot()
}

func (m *CarouselModel) syncDots() {
	m.dots.TotalPages = m.win.SourceLen()
	m.dots.Page = max(m.win.ActiveDot(), 0)
}

// Update handles carousel keys. Callers route keys here only when no modal
// or text field owns the keyboard.
func (m CarouselModel) Update(msg tea.Msg) (CarouselModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.win.Empty() {
			return m, nil
		}
		// A single builder has no navigation, only activation.
		nav := m.win.CanNavigate()
		switch {
		case nav && key.Matches(msg, m.keys.Prev):
			m.win.Prev()
			m.player.Play(sound.Click)
		case nav && key.Matches(msg, m.keys.Next):
			m.win.Next()
			m.player.Play(sound.Click)
		case nav && key.Matches(msg, m.keys.Jump):
			idx, _ := digitKey(msg)
			if m.win.JumpTo(idx) {
				m.player.Play(sound.Click)
			}
		case key.Matches(msg, m.keys.Activate):
			b, ok := m.win.Center()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return builderActivatedMsg{builder: b} }
		}
		m.syncDots()
	}
	return m, nil
}

// View renders the window, the dots, and the navigation hint.
func (m CarouselModel) View() string {
	if m.win.Empty() {
		return components.TitledBox("Builders", MutedStyle.Render(emptyDirectoryText), m.width)
	}

	radius := visibleRadius(m.width)
	cards := make([]string, 0, 2*carousel.WindowRadius+1)
	for _, e := range m.win.Window() {
		if abs(e.Offset) > radius {
			continue
		}
		cards = append(cards, renderCard(e, carousel.TransformFor(e.Offset)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	var b strings.Builder
	b.WriteString(row)
	b.WriteString("\n\n")
	if m.win.CanNavigate() {
		counter := MutedStyle.Render(fmt.Sprintf("%d / %d", m.win.ActiveDot()+1, m.win.SourceLen()))
		b.WriteString(centerUnder(m.dots.View()+"  "+counter, lipgloss.Width(row)))
		b.WriteString("\n")
		b.WriteString(centerUnder(MutedStyle.Render("← prev   1-9 jump   next →"), lipgloss.Width(row)))
	}
	return b.String()
}

// visibleRadius trims the fan on narrow terminals; unknown widths get all
// five cards.
func visibleRadius(width int) int {
	if width <= 0 {
		return carousel.WindowRadius
	}
	for r := carousel.WindowRadius; r > 0; r-- {
		if fanWidth(r) <= width {
			return r
		}
	}
	return 0
}

func fanWidth(radius int) int {
	total := 0
	for off := -radius; off <= radius; off++ {
		total += cardWidth(carousel.TransformFor(off)) + cardChrome
	}
	return total
}

func cardWidth(t carousel.Transform) int {
	return int(math.Round(baseCardWidth * t.Scale))
}

// renderCard maps a slot transform onto terminal styling: scale sets the
// width, the arch becomes a top margin, opacity and blur pick the ink.
func renderCard(e carousel.Entry[profile.Builder], t carousel.Transform) string {
	width := cardWidth(t)
	drop := int(math.Round(t.Y / carousel.ArchY))

	ink := lipgloss.NewStyle().Foreground(cardInk(t.Opacity))
	if t.Blur >= 2*carousel.BlurStep {
		ink = ink.Faint(true)
	}

	b := e.Item
	name := components.ClampTextWidth(b.Name, width)
	role := components.ClampTextWidth(b.Role, width)
	maxChips := 2
	if e.Offset == 0 {
		maxChips = 3
	}

	style, nameStyle := CardStyle, ink.Bold(true)
	if e.Offset == 0 {
		style, nameStyle = CardActiveStyle, SelectedStyle
	}

	var lines []string
	if e.Offset == 0 && b.Featured {
		lines = append(lines, FeaturedBadgeStyle.Render("FEATURED"))
	}
	lines = append(lines,
		nameStyle.Render(name),
		ink.Render(role),
		"",
		components.Chips(b.Skills, maxChips),
	)
	if e.Offset == 0 {
		lines = append(lines, "", MutedStyle.Render(fmt.Sprintf("%d projects", len(b.Projects))))
	}

	body := lipgloss.NewStyle().Width(width).Height(cardHeight - drop).Render(strings.Join(lines, "\n"))
	return style.MarginTop(drop).Render(body)
}

func cardInk(opacity float64) lipgloss.Color {
	switch {
	case opacity >= 0.95:
		return ColorText
	case opacity >= 0.75:
		return ColorMuted
	default:
		return ColorFaint
	}
}

func centerUnder(s string, width int) string {
	w := lipgloss.Width(s)
	if width <= w {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
