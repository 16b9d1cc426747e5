package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isForceQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up", "k")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down", "j")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

// digitKey maps "1".."9" to a 0-based dot index.
func digitKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// CarouselKeyMap holds the carousel bindings. They only fire while the
// carousel is mounted and nothing else owns the keyboard.
type CarouselKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Jump     key.Binding
	Activate key.Binding
}

// DefaultCarouselKeyMap returns the standard carousel bindings.
func DefaultCarouselKeyMap() CarouselKeyMap {
	return CarouselKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view profile"),
		),
	}
}

// Bindings lists the bindings in display order.
func (k CarouselKeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.Activate}
}
