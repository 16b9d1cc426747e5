package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/builderhub/builderhub/cli/internal/profile"
	"github.com/builderhub/builderhub/cli/internal/sound"
)

func newTestApp(t *testing.T) (App, *recordingPlayer) {
	t.Helper()
	p := &recordingPlayer{}
	app := NewApp(AppOptions{
		Directory: profile.NewDirectory(profile.Seed()),
		Sound:     sound.NewToggle(p, true),
		SkipIntro: true,
		Build:     fixedBuild(),
	})
	return app, p
}

func send(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	updated, ok := model.(App)
	require.True(t, ok)
	return updated, cmd
}

func press(t *testing.T, app App, keys ...tea.KeyMsg) App {
	t.Helper()
	for _, k := range keys {
		app, _ = send(t, app, k)
	}
	return app
}

func TestAppIntroHandsOverToDirectory(t *testing.T) {
	app := NewApp(AppOptions{})
	assert.Equal(t, screenIntro, app.screen)
	assert.NotNil(t, app.Init())
	assert.Contains(t, app.View(), "INITIALIZING BUILDERHUB")

	app, cmd := send(t, app, runeKey('x'))
	require.NotNil(t, cmd)
	app, _ = send(t, app, cmd())
	assert.Equal(t, screenDirectory, app.screen)
	assert.Contains(t, app.View(), "Robert Petillo")
}

func TestAppSkipIntroFromConfig(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, screenDirectory, app.screen)
	assert.Nil(t, app.Init())
}

func TestAppViewShowsStatsAndStrip(t *testing.T) {
	app, _ := newTestApp(t)
	app, _ = send(t, app, tea.WindowSizeMsg{Width: 160, Height: 50})

	out := app.View()
	assert.Contains(t, out, "builders")
	assert.Contains(t, out, "projects")
	assert.Contains(t, out, "17")
	assert.Contains(t, out, "Product")
	assert.Contains(t, out, "Add Profile")
}

func TestAppHelpToggle(t *testing.T) {
	app, _ := newTestApp(t)
	app = press(t, app, runeKey('?'))
	assert.True(t, app.helpOpen)
	assert.Contains(t, app.View(), "Help")

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.helpOpen)
}

func TestAppSearchFiltersCarousel(t *testing.T) {
	app, _ := newTestApp(t)
	app = press(t, app, runeKey('/'))
	require.True(t, app.search.Focused())

	app = press(t, app, runeKey('r'), runeKey('u'), runeKey('s'), runeKey('t'))
	require.Len(t, app.carousel.Builders(), 1)
	assert.Equal(t, "Samuel McFarlane", app.carousel.Builders()[0].Name)

	// Carousel keys are typed into the field while it is focused.
	app = press(t, app, runeKey('l'))
	assert.Equal(t, "rustl", app.search.Query())
	assert.Empty(t, app.carousel.Builders())
	assert.Contains(t, app.View(), emptyDirectoryText)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.search.Focused())
	assert.Equal(t, "rustl", app.search.Query())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, app.search.Query())
	assert.Len(t, app.carousel.Builders(), 4)
}

func TestAppOpensAndClosesProfile(t *testing.T) {
	app, p := newTestApp(t)
	app = press(t, app, tea.KeyMsg{Type: tea.KeyRight})

	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app, _ = send(t, app, cmd())
	assert.Equal(t, modalProfile, app.modal)
	assert.Equal(t, "Samuel McFarlane", app.profile.Builder().Name)

	// Carousel keys do not leak through the modal.
	app = press(t, app, tea.KeyMsg{Type: tea.KeyRight})
	center, _ := app.carousel.Center()
	assert.Equal(t, "Samuel McFarlane", center.Name)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modalNone, app.modal)
	assert.Equal(t, []sound.Effect{sound.Click, sound.Open, sound.Close}, p.played)
}

func TestAppAddProfileFlow(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := NewApp(AppOptions{
		Directory: profile.NewDirectory(profile.Seed()),
		Logger:    zap.New(core),
		SkipIntro: true,
		Build:     fixedBuild(),
	})
	app = press(t, app, tea.KeyMsg{Type: tea.KeyRight})
	app = press(t, app, runeKey('a'))
	require.Equal(t, modalForm, app.modal)

	for _, k := range []string{"Ada", "\t", "Engineer", "\t", "Math"} {
		if k == "\t" {
			app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
			continue
		}
		for _, r := range k {
			app = press(t, app, runeKey(r))
		}
	}

	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	app, cmd = send(t, app, cmd())
	assert.NotNil(t, cmd)

	assert.Equal(t, modalNone, app.modal)
	assert.Equal(t, 5, app.dir.Len())
	center, _ := app.carousel.Center()
	assert.Equal(t, "Ada", center.Name)
	require.NotNil(t, app.toast)
	assert.Equal(t, "success", app.toast.level)
	assert.Contains(t, app.View(), "Welcome to BuilderHub, Ada!")

	entries := logs.FilterMessage("profile submitted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "new-1", entries[0].ContextMap()["id"])
}

func TestAppDiscardConfirmForDirtyForm(t *testing.T) {
	app, _ := newTestApp(t)
	app = press(t, app, runeKey('a'), runeKey('x'))

	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app, _ = send(t, app, cmd())
	assert.True(t, app.discardConfirm)
	assert.Contains(t, app.View(), "Discard this profile draft?")

	app = press(t, app, runeKey('n'))
	assert.False(t, app.discardConfirm)
	assert.Equal(t, modalForm, app.modal)

	app, cmd = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app, _ = send(t, app, cmd())
	app = press(t, app, runeKey('y'))
	assert.Equal(t, modalNone, app.modal)
}

func TestAppDiscardedFormDropsLateEnhancement(t *testing.T) {
	app := NewApp(AppOptions{
		Directory: profile.NewDirectory(profile.Seed()),
		Enhancer:  &fakeEnhancer{out: "Polished bio."},
		SkipIntro: true,
		Build:     fixedBuild(),
	})
	toBio := []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}}

	app = press(t, app, runeKey('a'))
	app = press(t, app, toBio...)
	app = press(t, app, runeKey('o'), runeKey('l'), runeKey('d'))
	app, pending := send(t, app, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.NotNil(t, pending)

	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app, _ = send(t, app, cmd())
	app = press(t, app, runeKey('y'))
	require.Equal(t, modalNone, app.modal)

	app = press(t, app, runeKey('a'))
	app = press(t, app, toBio...)
	app = press(t, app, runeKey('n'), runeKey('e'), runeKey('w'))

	var late tea.Msg
	for _, msg := range runCmd(pending) {
		if _, ok := msg.(bioEnhancedMsg); ok {
			late = msg
		}
	}
	require.NotNil(t, late)
	app, _ = send(t, app, late)
	assert.Equal(t, "new", app.form.Draft().Bio)
	assert.False(t, app.form.Enhancing())
}

func TestAppCleanFormClosesWithoutConfirm(t *testing.T) {
	app, _ := newTestApp(t)
	app = press(t, app, runeKey('a'))

	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app, _ = send(t, app, cmd())
	assert.False(t, app.discardConfirm)
	assert.Equal(t, modalNone, app.modal)
}

func TestAppQuitConfirmWhenUnsaved(t *testing.T) {
	app, _ := newTestApp(t)
	app = press(t, app, runeKey('a'), runeKey('x'))

	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd)
	assert.True(t, app.quitConfirm)
	assert.Contains(t, app.View(), "Quit anyway?")

	_, cmd = send(t, app, runeKey('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppQuitWithoutUnsaved(t *testing.T) {
	app, _ := newTestApp(t)
	_, cmd := send(t, app, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppSkillPickerFilters(t *testing.T) {
	app, _ := newTestApp(t)
	app = press(t, app, runeKey('s'))
	require.Equal(t, modalSkills, app.modal)

	app, cmd := send(t, app, runeKey('f'))
	require.NotNil(t, cmd)
	app, _ = send(t, app, cmd())

	assert.Equal(t, modalNone, app.modal)
	assert.Equal(t, "Product", app.search.Query())
	require.Len(t, app.carousel.Builders(), 1)
	assert.Equal(t, "Robert Petillo", app.carousel.Builders()[0].Name)
}

func TestAppSoundToggle(t *testing.T) {
	app, p := newTestApp(t)
	app = press(t, app, runeKey('m'))
	assert.False(t, app.sound.Enabled())
	assert.Equal(t, "Sound off", app.toast.text)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Empty(t, p.played)

	app = press(t, app, runeKey('m'))
	assert.True(t, app.sound.Enabled())
	assert.Equal(t, []sound.Effect{sound.Click}, p.played)
}

func TestAppReloadReplacesDirectory(t *testing.T) {
	ch := make(chan profile.Reload, 1)
	app := NewApp(AppOptions{SkipIntro: true, Reloads: ch})

	ch <- profile.Reload{Builders: profile.Seed()[:2]}
	msg := waitForReload(ch)()
	app, cmd := send(t, app, msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, 2, app.dir.Len())
	assert.Len(t, app.carousel.Builders(), 2)

	ch <- profile.Reload{Err: errors.New("parse profiles: bad yaml")}
	app, _ = send(t, app, waitForReload(ch)())
	assert.Equal(t, 2, app.dir.Len())
	assert.Contains(t, app.View(), "bad yaml")

	close(ch)
	app, cmd = send(t, app, waitForReload(ch)())
	assert.Nil(t, cmd)
	assert.Equal(t, 2, app.dir.Len())
}

func TestCenterBlockPadsShortLines(t *testing.T) {
	out := centerBlock("hi\nworld", 10)
	assert.Equal(t, "    hi\n  world", out)
	assert.Equal(t, "0123456789", centerBlock("0123456789", 5))
}

func TestCenterBlockUniformKeepsAlignment(t *testing.T) {
	out := centerBlockUniform("ab\nabcd\n", 8)
	assert.Equal(t, "  ab\n  abcd\n", out)
}
