package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/builderhub/builderhub/cli/internal/enhance"
	"github.com/builderhub/builderhub/cli/internal/profile"
	"github.com/builderhub/builderhub/cli/internal/ui/components"
)

const enhanceTimeout = 20 * time.Second

// Field order, top to bottom. The bio is the textarea.
const (
	fieldName = iota
	fieldRole
	fieldBio
	fieldSkills
	fieldGithub
	fieldTwitter
	fieldWebsite
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Role", "Bio", "Skills", "GitHub", "Twitter", "Website"}

// bioEnhancedMsg is tagged with the generation of the form that asked, so a
// reply reaching a newer form is dropped.
type bioEnhancedMsg struct {
	gen  int
	text string
	err  error
}

// profileSubmittedMsg carries a validated new builder to the app.
type profileSubmittedMsg struct {
	builder profile.Builder
}

// formCancelledMsg asks the app to close the form.
type formCancelledMsg struct {
	dirty bool
}

// FormModel is the add-profile form.
type FormModel struct {
	inputs    [fieldCount]textinput.Model
	bio       textarea.Model
	focus     int
	gen       int
	enhancer  enhance.Enhancer
	enhancing bool
	spin      spinner.Model
	errs      map[int]string
	notice    string
	warn      bool
	build     profile.BuildOptions
	width     int
}

// NewFormModel returns an empty form focused on the name field.
func NewFormModel(enhancer enhance.Enhancer, build profile.BuildOptions) FormModel {
	if enhancer == nil {
		enhancer = enhance.Noop{}
	}
	m := FormModel{enhancer: enhancer, build: build, errs: map[int]string{}}

	placeholders := [fieldCount]string{
		fieldName:    "Ada Lovelace",
		fieldRole:    "Full Stack Engineer",
		fieldSkills:  "Go, Rust, Design",
		fieldGithub:  "https://github.com/...",
		fieldTwitter: "https://x.com/...",
		fieldWebsite: "https://...",
	}
	for i := range m.inputs {
		if i == fieldBio {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		ti.Width = 48
		ti.PlaceholderStyle = FaintStyle
		m.inputs[i] = ti
	}

	ta := textarea.New()
	ta.Placeholder = "What do you build?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(4)
	m.bio = ta

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SelectedStyle
	m.spin = s

	m.focusField(fieldName)
	return m
}

// Init starts the cursor blink.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Draft returns the raw form input.
func (m FormModel) Draft() profile.Draft {
	return profile.Draft{
		Name:    m.inputs[fieldName].Value(),
		Role:    m.inputs[fieldRole].Value(),
		Bio:     m.bio.Value(),
		Skills:  m.inputs[fieldSkills].Value(),
		Github:  m.inputs[fieldGithub].Value(),
		Twitter: m.inputs[fieldTwitter].Value(),
		Website: m.inputs[fieldWebsite].Value(),
	}
}

// Dirty reports whether anything has been typed.
func (m FormModel) Dirty() bool {
	return m.Draft().Dirty()
}

// Enhancing reports whether a bio enhancement is in flight.
func (m FormModel) Enhancing() bool {
	return m.enhancing
}

func (m *FormModel) focusField(idx int) tea.Cmd {
	m.focus = (idx%fieldCount + fieldCount) % fieldCount
	for i := range m.inputs {
		if i != fieldBio {
			m.inputs[i].Blur()
		}
	}
	m.bio.Blur()
	if m.focus == fieldBio {
		return m.bio.Focus()
	}
	return m.inputs[m.focus].Focus()
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.enhancing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case bioEnhancedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.enhancing = false
		if msg.err != nil {
			m.notice = "Enhancement failed: " + msg.err.Error()
			m.warn = true
			return m, nil
		}
		m.bio.SetValue(msg.text)
		m.notice, m.warn = "Bio enhanced.", false
		delete(m.errs, fieldBio)
		return m, nil

	case tea.KeyMsg:
		switch {
		case isBack(msg):
			dirty := m.Dirty()
			return m, func() tea.Msg { return formCancelledMsg{dirty: dirty} }
		case isKey(msg, "tab"):
			return m, m.focusField(m.focus + 1)
		case isKey(msg, "shift+tab"):
			return m, m.focusField(m.focus - 1)
		case isKey(msg, "ctrl+e"):
			return m.startEnhance()
		case isKey(msg, "ctrl+s"):
			return m.submit()
		case isEnter(msg) && m.focus != fieldBio:
			return m, m.focusField(m.focus + 1)
		}

		var cmd tea.Cmd
		if m.focus == fieldBio {
			m.bio, cmd = m.bio.Update(msg)
		} else {
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		}
		delete(m.errs, m.focus)
		return m, cmd
	}
	return m, nil
}

func (m FormModel) startEnhance() (FormModel, tea.Cmd) {
	if m.enhancing {
		return m, nil
	}
	d := m.Draft()
	if strings.TrimSpace(d.Bio) == "" {
		m.notice, m.warn = "Write a short draft bio first.", true
		return m, nil
	}
	m.enhancing = true
	m.notice = ""
	req := enhance.Request{Bio: d.Bio, Role: d.Role, Skills: d.SkillList()}
	enhancer, gen := m.enhancer, m.gen
	run := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), enhanceTimeout)
		defer cancel()
		text, err := enhancer.Enhance(ctx, req)
		return bioEnhancedMsg{gen: gen, text: text, err: err}
	}
	return m, tea.Batch(m.spin.Tick, run)
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	b, err := m.Draft().Build(m.build)
	if err != nil {
		m.errs = fieldErrors(err)
		m.notice = ""
		return m, nil
	}
	m.errs = map[int]string{}
	return m, func() tea.Msg { return profileSubmittedMsg{builder: b} }
}

func fieldErrors(err error) map[int]string {
	out := map[int]string{}
	if errors.Is(err, profile.ErrNameRequired) {
		out[fieldName] = profile.ErrNameRequired.Error()
	}
	if errors.Is(err, profile.ErrRoleRequired) {
		out[fieldRole] = profile.ErrRoleRequired.Error()
	}
	if errors.Is(err, profile.ErrBioRequired) {
		out[fieldBio] = profile.ErrBioRequired.Error()
	}
	return out
}

func (m FormModel) View() string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := LabelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = SelectedStyle.Render("› " + fieldLabels[i])
		}
		b.WriteString(label + "\n")
		if i == fieldBio {
			b.WriteString(m.bio.View())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n")
		if msg, ok := m.errs[i]; ok {
			b.WriteString(ErrorStyle.Render("  "+msg) + "\n")
		}
		if i < fieldCount-1 {
			b.WriteString("\n")
		}
	}

	if m.enhancing {
		b.WriteString("\n" + m.spin.View() + " " + MutedStyle.Render("Enhancing bio..."))
	} else if m.notice != "" {
		style := AccentStyle
		if m.warn {
			style = WarningStyle
		}
		b.WriteString("\n" + style.Render(components.SanitizeOneLine(m.notice)))
	}
	return components.ActiveTitledBox("Add Builder", b.String(), m.width)
}
