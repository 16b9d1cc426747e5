package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builderhub/builderhub/cli/internal/carousel"
	"github.com/builderhub/builderhub/cli/internal/profile"
	"github.com/builderhub/builderhub/cli/internal/sound"
)

type recordingPlayer struct {
	played []sound.Effect
}

func (p *recordingPlayer) Play(e sound.Effect) {
	p.played = append(p.played, e)
}

func seededCarousel(t *testing.T) (CarouselModel, *recordingPlayer) {
	t.Helper()
	p := &recordingPlayer{}
	m := NewCarouselModel(p)
	m.SetBuilders(profile.Seed())
	return m, p
}

func centerName(t *testing.T, m CarouselModel) string {
	t.Helper()
	b, ok := m.Center()
	require.True(t, ok)
	return b.Name
}

func TestCarouselEmptyState(t *testing.T) {
	m := NewCarouselModel(nil)
	_, ok := m.Center()
	assert.False(t, ok)
	assert.Equal(t, -1, m.ActiveDot())
	assert.Contains(t, m.View(), emptyDirectoryText)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), emptyDirectoryText)
}

func TestCarouselNavigationWrapsAround(t *testing.T) {
	m, p := seededCarousel(t)
	assert.Equal(t, "Robert Petillo", centerName(t, m))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Samuel McFarlane", centerName(t, m))
	assert.Equal(t, 1, m.ActiveDot())

	m, _ = m.Update(runeKey('h'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Don Grier", centerName(t, m))
	assert.Equal(t, 3, m.ActiveDot())

	assert.Equal(t, []sound.Effect{sound.Click, sound.Click, sound.Click}, p.played)
}

func TestCarouselDigitJumps(t *testing.T) {
	m, p := seededCarousel(t)

	m, _ = m.Update(runeKey('3'))
	assert.Equal(t, "Jacob Williams", centerName(t, m))
	assert.Equal(t, 2, m.ActiveDot())

	// Out of range for four builders.
	m, _ = m.Update(runeKey('9'))
	assert.Equal(t, "Jacob Williams", centerName(t, m))
	assert.Len(t, p.played, 1)
}

func TestCarouselActivateEmitsCenter(t *testing.T) {
	m, _ := seededCarousel(t)
	m, _ = m.Update(runeKey('l'))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(builderActivatedMsg)
	require.True(t, ok)
	assert.Equal(t, "Samuel McFarlane", msg.builder.Name)
}

func TestCarouselViewShowsHintsOnlyWhenNavigable(t *testing.T) {
	m, _ := seededCarousel(t)
	out := m.View()
	assert.Contains(t, out, "Robert Petillo")
	assert.Contains(t, out, "1 / 4")
	assert.Contains(t, out, "1-9 jump")
	assert.Contains(t, out, "FEATURED")

	m.SetBuilders(profile.Seed()[3:])
	out = m.View()
	assert.Contains(t, out, "Don Grier")
	assert.NotContains(t, out, "1-9 jump")
	assert.NotContains(t, out, "1 / 1")
}

func TestCarouselSingleBuilderIgnoresNavigation(t *testing.T) {
	p := &recordingPlayer{}
	m := NewCarouselModel(p)
	m.SetBuilders(profile.Seed()[3:])

	for _, k := range []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyLeft}, runeKey('l'), runeKey('1')} {
		m, _ = m.Update(k)
	}
	assert.Equal(t, 0, m.win.Focus())
	assert.Empty(t, p.played)
	assert.Equal(t, "Don Grier", centerName(t, m))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "Don Grier", cmd().(builderActivatedMsg).builder.Name)
}

func TestCarouselFilterResetsFocus(t *testing.T) {
	m, _ := seededCarousel(t)
	m, _ = m.Update(runeKey('l'))
	m, _ = m.Update(runeKey('l'))

	m.SetBuilders(profile.Filter(profile.Seed(), "typescript"))
	assert.Equal(t, 0, m.ActiveDot())
}

func TestVisibleRadiusShrinksOnNarrowTerminals(t *testing.T) {
	assert.Equal(t, carousel.WindowRadius, visibleRadius(0))
	assert.Equal(t, carousel.WindowRadius, visibleRadius(fanWidth(carousel.WindowRadius)))
	assert.Equal(t, 1, visibleRadius(fanWidth(carousel.WindowRadius)-1))
	assert.Equal(t, 0, visibleRadius(10))
}

func TestCardWidthFollowsScale(t *testing.T) {
	center := cardWidth(carousel.TransformFor(0))
	side := cardWidth(carousel.TransformFor(1))
	far := cardWidth(carousel.TransformFor(-2))

	assert.Equal(t, baseCardWidth, center)
	assert.Less(t, side, center)
	assert.Less(t, far, side)
}
