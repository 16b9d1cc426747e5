package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/builderhub/builderhub/cli/internal/config"
	"github.com/builderhub/builderhub/cli/internal/enhance"
	"github.com/builderhub/builderhub/cli/internal/profile"
	"github.com/builderhub/builderhub/cli/internal/sound"
	"github.com/builderhub/builderhub/cli/internal/ui/components"
)

// --- Screens ---

type screen int

const (
	screenIntro screen = iota
	screenDirectory
)

type modal int

const (
	modalNone modal = iota
	modalProfile
	modalForm
	modalSkills
)

const skillStripMax = 8

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}

// reloadMsg carries one result from the profiles watcher.
type reloadMsg struct {
	reload profile.Reload
	ok     bool
}

type appToast struct {
	level string
	text  string
}

// AppOptions wires the app to its collaborators. Zero values fall back to
// seed data, no enhancement, and muted sound.
type AppOptions struct {
	Config    *config.Config
	Directory *profile.Directory
	Enhancer  enhance.Enhancer
	Sound     *sound.Toggle
	Logger    *zap.Logger
	Reloads   <-chan profile.Reload
	SkipIntro bool
	Build     profile.BuildOptions
}

// App is the root model: intro, then the builder directory with its modals.
type App struct {
	cfg      *config.Config
	dir      *profile.Directory
	enhancer enhance.Enhancer
	sound    *sound.Toggle
	logger   *zap.Logger
	reloads  <-chan profile.Reload
	build    profile.BuildOptions

	screen   screen
	modal    modal
	intro    IntroModel
	carousel CarouselModel
	search   SearchModel
	profile  ProfileModal
	form     FormModel
	formGen  int
	skills   SkillPicker

	helpOpen       bool
	quitConfirm    bool
	discardConfirm bool

	err    string
	toast  *appToast
	width  int
	height int
}

// NewApp builds the root model.
func NewApp(opts AppOptions) App {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Directory == nil {
		opts.Directory = profile.NewDirectory(profile.Seed())
	}
	if opts.Enhancer == nil {
		opts.Enhancer = enhance.Noop{}
	}
	if opts.Sound == nil {
		opts.Sound = sound.NewToggle(sound.Muted{}, false)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	a := App{
		cfg:      opts.Config,
		dir:      opts.Directory,
		enhancer: opts.Enhancer,
		sound:    opts.Sound,
		logger:   opts.Logger,
		reloads:  opts.Reloads,
		build:    opts.Build,
		screen:   screenIntro,
		intro:    NewIntroModel(),
		carousel: NewCarouselModel(opts.Sound),
		search:   NewSearchModel(),
	}
	if opts.SkipIntro || opts.Config.SkipIntro {
		a.screen = screenDirectory
	}
	a.refilter()
	return a
}

func (a App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.screen == screenIntro {
		cmds = append(cmds, a.intro.Init())
	}
	cmds = append(cmds, waitForReload(a.reloads))
	return tea.Batch(cmds...)
}

func waitForReload(ch <-chan profile.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		return reloadMsg{reload: r, ok: ok}
	}
}

// refilter applies the search query to the directory and hands the result to
// the carousel. Stats stay computed over the whole directory.
func (a *App) refilter() {
	a.carousel.SetBuilders(profile.Filter(a.dir.All(), a.search.Query()))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.intro, _ = a.intro.Update(msg)
		a.carousel, _ = a.carousel.Update(msg)
		a.form, _ = a.form.Update(msg)
		a.skills, _ = a.skills.Update(msg)
		if a.modal == modalProfile {
			a.profile, _ = a.profile.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case introDoneMsg:
		a.screen = screenDirectory
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		return a, nil

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case reloadMsg:
		if !msg.ok {
			return a, nil
		}
		if msg.reload.Err != nil {
			a.err = msg.reload.Err.Error()
			return a, waitForReload(a.reloads)
		}
		a.err = ""
		a.dir.Replace(msg.reload.Builders)
		a.refilter()
		toast := a.setToast("info", fmt.Sprintf("Profiles reloaded (%d builders)", a.dir.Len()))
		return a, tea.Batch(toast, waitForReload(a.reloads))

	case builderActivatedMsg:
		a.profile = NewProfileModal(msg.builder, a.width, a.height)
		a.modal = modalProfile
		a.sound.Play(sound.Open)
		return a, nil

	case profileSubmittedMsg:
		a.dir.Add(msg.builder)
		a.refilter()
		a.modal = modalNone
		a.sound.Play(sound.Success)
		a.logger.Info("profile submitted",
			zap.String("id", msg.builder.ID),
			zap.String("name", msg.builder.Name),
			zap.Int("skills", len(msg.builder.Skills)),
		)
		return a, a.setToast("success", fmt.Sprintf("Welcome to BuilderHub, %s!", msg.builder.Name))

	case formCancelledMsg:
		if msg.dirty {
			a.discardConfirm = true
			return a, nil
		}
		a.closeModal()
		return a, nil

	case skillPickerClosedMsg:
		a.closeModal()
		return a, nil

	case skillFilterMsg:
		a.search.SetQuery(msg.skill)
		a.refilter()
		a.closeModal()
		return a, a.setToast("info", fmt.Sprintf("Filtering by %s", msg.skill))
	}

	// Async ticks (spinner, cursor blink, enhancement results) go to whoever
	// owns them.
	var cmd tea.Cmd
	switch {
	case a.screen == screenIntro:
		a.intro, cmd = a.intro.Update(msg)
	case a.modal == modalForm:
		a.form, cmd = a.form.Update(msg)
	case a.search.Focused():
		a.search, cmd = a.search.Update(msg)
	}
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.screen == screenIntro {
		var cmd tea.Cmd
		a.intro, cmd = a.intro.Update(msg)
		return a, cmd
	}

	// Any key dismisses a standing error.
	a.err = ""

	if a.quitConfirm {
		switch {
		case isKey(msg, "y", "Y"):
			return a, tea.Quit
		case isKey(msg, "n", "N") || isBack(msg):
			a.quitConfirm = false
		}
		return a, nil
	}

	if a.discardConfirm {
		switch {
		case isKey(msg, "y", "Y"):
			a.discardConfirm = false
			a.closeModal()
		case isKey(msg, "n", "N") || isBack(msg):
			a.discardConfirm = false
		}
		return a, nil
	}

	if a.helpOpen {
		if isBack(msg) || isKey(msg, "?") {
			a.helpOpen = false
		} else if isForceQuit(msg) {
			return a, tea.Quit
		}
		return a, nil
	}

	if isForceQuit(msg) {
		if a.hasUnsaved() {
			a.quitConfirm = true
			return a, nil
		}
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.modal {
	case modalProfile:
		if isBack(msg) || isKey(msg, "q") {
			a.closeModal()
			return a, nil
		}
		a.profile, cmd = a.profile.Update(msg)
		return a, cmd
	case modalForm:
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	case modalSkills:
		before, _ := a.skills.Selected()
		a.skills, cmd = a.skills.Update(msg)
		if after, _ := a.skills.Selected(); after != before {
			a.sound.Play(sound.Hover)
		}
		return a, cmd
	}

	if a.search.Focused() {
		before := a.search.Query()
		a.search, cmd = a.search.Update(msg)
		if a.search.Query() != before {
			a.refilter()
		}
		return a, cmd
	}

	switch {
	case isKey(msg, "?"):
		a.helpOpen = true
		return a, nil
	case isQuit(msg):
		return a, tea.Quit
	case isKey(msg, "/"):
		return a, a.search.Focus()
	case isKey(msg, "a"):
		a.formGen++
		a.form = NewFormModel(a.enhancer, a.build)
		a.form.gen = a.formGen
		a.form, _ = a.form.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.modal = modalForm
		a.sound.Play(sound.Open)
		return a, a.form.Init()
	case isKey(msg, "s"):
		a.skills = NewSkillPicker(a.dir.All(), a.width)
		a.modal = modalSkills
		a.sound.Play(sound.Open)
		return a, nil
	case isKey(msg, "m"):
		on := a.sound.Flip()
		state := "off"
		if on {
			state = "on"
			a.sound.Play(sound.Click)
		}
		return a, a.setToast("info", "Sound "+state)
	case isBack(msg):
		if a.search.Query() != "" {
			a.search.SetQuery("")
			a.refilter()
		}
		return a, nil
	}

	a.carousel, cmd = a.carousel.Update(msg)
	return a, cmd
}

func (a *App) closeModal() {
	if a.modal == modalNone {
		return
	}
	a.modal = modalNone
	a.sound.Play(sound.Close)
}

// hasUnsaved reports whether quitting would throw away form input.
func (a App) hasUnsaved() bool {
	return a.modal == modalForm && a.form.Dirty()
}

func (a App) View() string {
	if a.screen == screenIntro {
		return centerBlockUniform(a.intro.View(), a.width)
	}

	banner := centerBlockUniform(RenderBanner(a.width), a.width)
	stats := centerBlock(a.renderStats(), a.width)
	search := centerBlock(a.search.View(), a.width)

	var content string
	switch {
	case a.quitConfirm:
		content = a.renderQuitConfirm()
	case a.discardConfirm:
		content = components.Indent(components.ConfirmDialog("Discard", "Discard this profile draft?"), 1)
	case a.helpOpen:
		content = a.renderHelp()
	case a.modal == modalProfile:
		content = a.profile.View()
	case a.modal == modalForm:
		content = a.form.View()
	case a.modal == modalSkills:
		content = a.skills.View()
	default:
		content = a.carousel.View()
	}
	content = centerBlockUniform(content, a.width)

	strip := ""
	if skills := profile.UniqueSkills(a.dir.All()); len(skills) > 0 {
		strip = "\n\n" + centerBlock(HeaderStyle.Render("Skills")+"  "+components.Chips(skills, skillStripMax), a.width)
	}

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s%s\n\n%s%s", banner, stats, search, content, strip, hints, feedback)
}

func (a App) renderStats() string {
	s := profile.ComputeStats(a.dir.All())
	stat := func(n int, label string) string {
		return StatValueStyle.Render(fmt.Sprintf("%d", n)) + " " + MutedStyle.Render(label)
	}
	sep := FaintStyle.Render("  ·  ")
	return stat(s.Builders, "builders") + sep + stat(s.Projects, "projects") + sep + stat(s.Skills, "skills")
}

func (a App) statusHints() []string {
	switch {
	case a.quitConfirm, a.discardConfirm:
		return []string{components.Hint("y", "Confirm"), components.Hint("n", "Cancel")}
	case a.helpOpen:
		return []string{components.Hint("esc", "Close")}
	case a.modal == modalProfile:
		return []string{components.Hint("↑/↓", "Scroll"), components.Hint("esc", "Close")}
	case a.modal == modalForm:
		return []string{
			components.Hint("tab", "Next Field"),
			components.Hint("ctrl+e", "Enhance Bio"),
			components.Hint("ctrl+s", "Submit"),
			components.Hint("esc", "Cancel"),
		}
	case a.modal == modalSkills:
		return []string{
			components.Hint("↑/↓", "Select"),
			components.Hint("enter", "Define"),
			components.Hint("f", "Filter"),
			components.Hint("esc", "Close"),
		}
	case a.search.Focused():
		return []string{components.Hint("enter", "Done"), components.Hint("esc", "Done")}
	}
	return a.directoryHints()
}

func (a App) directoryHints() []string {
	var hints []string
	switch n := len(a.carousel.Builders()); {
	case n > 1:
		hints = components.BindingHints(a.carousel.keys.Bindings()...)
	case n == 1:
		hints = components.BindingHints(a.carousel.keys.Activate)
	}
	soundLabel := "Sound Off"
	if !a.sound.Enabled() {
		soundLabel = "Sound On"
	}
	return append(hints,
		components.Hint("/", "Search"),
		components.Hint("a", "Add Profile"),
		components.Hint("s", "Skills"),
		components.Hint("m", soundLabel),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	)
}

func (a App) renderHelp() string {
	hints := a.directoryHints()
	lines := make([]string, 0, len(hints)+2)
	lines = append(lines, MutedStyle.Render("esc to close"))
	lines = append(lines, "")
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	body := strings.Join(lines, "\n")
	return components.Indent(components.TitledBox("Help", body, a.width), 1)
}

func (a App) renderQuitConfirm() string {
	body := "You have unsaved changes. Quit anyway?"
	return components.Indent(components.ConfirmDialog("Quit", body), 1)
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox(title, a.toast.text, a.width)
}

func centerBlock(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth >= width {
			continue
		}
		pad := (width - lineWidth) / 2
		lines[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(lines, "\n")
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
