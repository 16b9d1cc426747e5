package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/builderhub/builderhub/cli/internal/profile"
	"github.com/builderhub/builderhub/cli/internal/ui/components"
)

const skillPickerPageSize = 10

// skillFilterMsg asks the app to filter the directory by one skill.
type skillFilterMsg struct {
	skill string
}

// skillPickerClosedMsg closes the picker without a filter.
type skillPickerClosedMsg struct{}

type skillRow struct {
	name     string
	builders int
}

// SkillPicker lists every skill in the directory with its builder count.
// Enter shows the definition, f filters by the skill.
type SkillPicker struct {
	list       *components.List[skillRow]
	definition string
	width      int
}

// NewSkillPicker builds the picker over the given builders.
func NewSkillPicker(builders []profile.Builder, width int) SkillPicker {
	counts := lo.CountValuesBy(lo.FlatMap(builders, func(b profile.Builder, _ int) []string {
		return lo.Uniq(b.Skills)
	}), func(s string) string { return s })

	rows := lo.Map(profile.UniqueSkills(builders), func(s string, _ int) skillRow {
		return skillRow{name: s, builders: counts[s]}
	})
	l := components.NewList[skillRow](skillPickerPageSize)
	l.SetItems(rows)
	return SkillPicker{list: l, width: width}
}

// Len returns the number of skills.
func (m SkillPicker) Len() int {
	return m.list.Len()
}

// Selected returns the highlighted skill.
func (m SkillPicker) Selected() (string, bool) {
	row, ok := m.list.Current()
	return row.name, ok
}

// ShowingDefinition reports whether the definition dialog is open.
func (m SkillPicker) ShowingDefinition() bool {
	return m.definition != ""
}

func (m SkillPicker) Update(msg tea.Msg) (SkillPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if m.definition != "" {
			m.definition = ""
			return m, nil
		}
		switch {
		case isBack(msg):
			return m, func() tea.Msg { return skillPickerClosedMsg{} }
		case isUp(msg):
			m.list.Up()
		case isDown(msg):
			m.list.Down()
		case isEnter(msg):
			if name, ok := m.Selected(); ok {
				m.definition = profile.DefineSkill(name)
			}
		case isKey(msg, "f"):
			if name, ok := m.Selected(); ok {
				return m, func() tea.Msg { return skillFilterMsg{skill: name} }
			}
		}
	}
	return m, nil
}

func (m SkillPicker) View() string {
	if m.definition != "" {
		name, _ := m.Selected()
		return components.NoticeDialog(name, m.definition)
	}
	if m.list.Len() == 0 {
		return components.TitledBox("Skills", MutedStyle.Render("No skills yet."), m.width)
	}

	tableWidth := components.BoxContentWidth(m.width)
	if tableWidth <= 0 {
		tableWidth = 48
	}
	countWidth := 10
	cols := []components.TableColumn{
		{Header: "Skill", Width: max(tableWidth-countWidth-3, 8), Align: lipgloss.Left},
		{Header: "Builders", Width: countWidth, Align: lipgloss.Right},
	}

	visible := m.list.Visible()
	rows := make([][]string, 0, len(visible))
	active := -1
	for i, r := range visible {
		rows = append(rows, []string{r.name, strconv.Itoa(r.builders)})
		if m.list.IsSelected(m.list.RelToAbs(i)) {
			active = i
		}
	}
	body := components.TableGridWithActiveRow(cols, rows, tableWidth, active) +
		"\n\n" + MutedStyle.Render("enter define   f filter   esc close")
	return components.TitledBox("Skills", body, m.width)
}
