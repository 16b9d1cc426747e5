package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(runeKey('q')))
	assert.False(t, isQuit(runeKey('a')))
	assert.True(t, isForceQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.False(t, isForceQuit(runeKey('q')))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsUpDown(t *testing.T) {
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyDown}))
	assert.True(t, isDown(runeKey('j')))
	assert.False(t, isDown(tea.KeyMsg{Type: tea.KeyUp}))
	assert.True(t, isUp(tea.KeyMsg{Type: tea.KeyUp}))
	assert.True(t, isUp(runeKey('k')))
	assert.False(t, isUp(tea.KeyMsg{Type: tea.KeyDown}))
}

func TestDigitKey(t *testing.T) {
	idx, ok := digitKey(runeKey('1'))
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = digitKey(runeKey('9'))
	assert.True(t, ok)
	assert.Equal(t, 8, idx)

	_, ok = digitKey(runeKey('0'))
	assert.False(t, ok)
	_, ok = digitKey(runeKey('x'))
	assert.False(t, ok)
	_, ok = digitKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, ok)
}

func TestIsKey(t *testing.T) {
	assert.True(t, isKey(runeKey('s'), "s"))
	assert.True(t, isKey(tea.KeyMsg{Type: tea.KeyBackspace}, "backspace"))
	assert.True(t, isKey(tea.KeyMsg{Type: tea.KeyLeft}, "left"))
	assert.False(t, isKey(runeKey('s'), "a"))
	assert.False(t, isKey(tea.KeyMsg{Type: tea.KeyLeft}, "right"))
}

func TestCarouselKeyMapMatches(t *testing.T) {
	km := DefaultCarouselKeyMap()
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, km.Prev))
	assert.True(t, key.Matches(runeKey('h'), km.Prev))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRight}, km.Next))
	assert.True(t, key.Matches(runeKey('l'), km.Next))
	assert.True(t, key.Matches(runeKey('4'), km.Jump))
	assert.False(t, key.Matches(runeKey('0'), km.Jump))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Activate))
	assert.Len(t, km.Bindings(), 4)
}
