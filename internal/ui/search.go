package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchModel is the directory filter field.
type SearchModel struct {
	input textinput.Model
}

// NewSearchModel creates an unfocused, empty search field.
func NewSearchModel() SearchModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search by name, role, or skill"
	ti.CharLimit = 64
	ti.Width = 36
	ti.PromptStyle = SelectedStyle
	ti.TextStyle = NormalStyle
	ti.PlaceholderStyle = FaintStyle
	return SearchModel{input: ti}
}

// Focus gives the field the keyboard.
func (m *SearchModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur releases the keyboard and keeps the query.
func (m *SearchModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the field owns the keyboard.
func (m SearchModel) Focused() bool {
	return m.input.Focused()
}

// Query returns the current filter text.
func (m SearchModel) Query() string {
	return m.input.Value()
}

// SetQuery replaces the filter text.
func (m *SearchModel) SetQuery(q string) {
	m.input.SetValue(q)
	m.input.CursorEnd()
}

// Update edits the query while focused; esc and enter hand the keyboard back.
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && (isBack(key) || isEnter(key)) {
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SearchModel) View() string {
	return m.input.View()
}
