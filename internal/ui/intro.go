package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/builderhub/builderhub/cli/internal/ui/components"
)

type introPhase int

const (
	introPhaseLoading introPhase = iota
	introPhaseProfile
	introPhaseSkills
	introPhaseProjects
	introPhaseGranted
	introPhaseFinished
)

// Step and pause timings of the boot sequence.
const (
	introLoadStep     = 30 * time.Millisecond
	introLoadPause    = 300 * time.Millisecond
	introLineStep     = 200 * time.Millisecond
	introLinePause    = 400 * time.Millisecond
	introSkillStart   = 200 * time.Millisecond
	introSkillStep    = 15 * time.Millisecond
	introSkillGap     = 80 * time.Millisecond
	introSkillPause   = 300 * time.Millisecond
	introProjectStep  = 250 * time.Millisecond
	introProjectPause = 600 * time.Millisecond
	introGrantedHold  = 800 * time.Millisecond

	introLoadIncrement  = 4
	introSkillIncrement = 6
)

var introProfileLines = []struct{ label, value string }{
	{"NAME", "BUILDERHUB"},
	{"TITLE", "BUILDER DISCOVERY PLATFORM"},
	{"LOCATION", "[NEW YORK CITY]"},
	{"STATUS", "ACTIVE // ACCESS LEVEL: NEXUS"},
}

var introSkills = []struct {
	name   string
	target int
}{
	{"REACT", 95},
	{"TYPESCRIPT", 92},
	{"AI/ML", 88},
	{"NODE.JS", 85},
	{"FULL-STACK", 90},
}

var introProjects = []struct{ year, name string }{
	{"2026", "BUILDERHUB PLATFORM - LIVE"},
	{"2025", "AI NATIVE PROGRAM - PURSUIT"},
	{"2024", "COMMUNITY BUILDER NETWORK"},
}

// introTickMsg advances the sequence. gen ties a tick to one run so ticks
// still in flight after a skip are dropped.
type introTickMsg struct{ gen int }

// introDoneMsg tells the app to show the directory.
type introDoneMsg struct{}

// IntroModel is the timed boot sequence shown before the directory.
type IntroModel struct {
	gen      int
	phase    introPhase
	loading  int
	lines    int
	skill    int
	progress []int
	projects int
	width    int
}

// NewIntroModel returns a sequence at its first frame.
func NewIntroModel() IntroModel {
	return IntroModel{gen: 1, progress: make([]int, len(introSkills))}
}

// Init schedules the first tick.
func (m IntroModel) Init() tea.Cmd {
	return m.tick(introLoadStep)
}

// Done reports whether the sequence has finished or was skipped.
func (m IntroModel) Done() bool {
	return m.phase == introPhaseFinished
}

func (m IntroModel) tick(d time.Duration) tea.Cmd {
	gen := m.gen
	return tea.Tick(d, func(time.Time) tea.Msg { return introTickMsg{gen: gen} })
}

func (m IntroModel) Update(msg tea.Msg) (IntroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if m.Done() {
			return m, nil
		}
		return m.skip()
	case introTickMsg:
		if msg.gen != m.gen || m.Done() {
			return m, nil
		}
		next := m.step()
		if m.Done() {
			return m, func() tea.Msg { return introDoneMsg{} }
		}
		return m, m.tick(next)
	}
	return m, nil
}

func (m IntroModel) skip() (IntroModel, tea.Cmd) {
	m.gen++
	m.phase = introPhaseFinished
	return m, func() tea.Msg { return introDoneMsg{} }
}

// step advances one frame and returns the delay before the next one.
func (m *IntroModel) step() time.Duration {
	switch m.phase {
	case introPhaseLoading:
		m.loading = min(m.loading+introLoadIncrement, 100)
		if m.loading == 100 {
			m.phase = introPhaseProfile
			return introLoadPause
		}
		return introLoadStep

	case introPhaseProfile:
		m.lines++
		if m.lines >= len(introProfileLines) {
			m.phase = introPhaseSkills
			return introLinePause + introSkillStart
		}
		return introLineStep

	case introPhaseSkills:
		target := introSkills[m.skill].target
		m.progress[m.skill] = min(m.progress[m.skill]+introSkillIncrement, target)
		if m.progress[m.skill] < target {
			return introSkillStep
		}
		m.skill++
		if m.skill >= len(introSkills) {
			m.phase = introPhaseProjects
			return introSkillPause
		}
		return introSkillGap

	case introPhaseProjects:
		m.projects++
		if m.projects >= len(introProjects) {
			m.phase = introPhaseGranted
			return introProjectPause
		}
		return introProjectStep

	case introPhaseGranted:
		m.phase = introPhaseFinished
		return 0
	}
	return 0
}

func (m IntroModel) View() string {
	var b strings.Builder
	prompt := AccentStyle.Render("> ")

	b.WriteString(prompt + NormalStyle.Render("INITIALIZING BUILDERHUB") + "\n")
	b.WriteString(components.ProgressBar(m.loading, 40) + " " + MutedStyle.Render(fmt.Sprintf("%3d%%", m.loading)) + "\n")

	if m.phase >= introPhaseProfile {
		b.WriteString("\n")
		for i := 0; i < min(m.lines, len(introProfileLines)); i++ {
			line := introProfileLines[i]
			b.WriteString(LabelStyle.Render(fmt.Sprintf("%-9s", line.label)) + NormalStyle.Render(line.value) + "\n")
		}
	}

	if m.phase >= introPhaseSkills {
		b.WriteString("\n" + prompt + NormalStyle.Render("SKILL MATRIX") + "\n")
		for i, s := range introSkills {
			if i > m.skill {
				break
			}
			pct := m.progress[i]
			b.WriteString(fmt.Sprintf("%-11s", s.name) + components.ProgressBar(pct, 30) + MutedStyle.Render(fmt.Sprintf(" %3d%%", pct)) + "\n")
		}
	}

	if m.phase >= introPhaseProjects {
		b.WriteString("\n" + prompt + NormalStyle.Render("TIMELINE") + "\n")
		for i := 0; i < min(m.projects, len(introProjects)); i++ {
			p := introProjects[i]
			b.WriteString(AccentStyle.Render(p.year) + "  " + NormalStyle.Render(p.name) + "\n")
		}
	}

	if m.phase >= introPhaseGranted {
		b.WriteString("\n" + SuccessStyle.Bold(true).Render("ACCESS GRANTED") + "\n")
	}

	b.WriteString("\n" + FaintStyle.Render("press any key to skip"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 3).
		Render(b.String())
	return centerBlockUniform(box, m.width)
}
