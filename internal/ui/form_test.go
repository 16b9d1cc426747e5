package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builderhub/builderhub/cli/internal/enhance"
	"github.com/builderhub/builderhub/cli/internal/profile"
)

type fakeEnhancer struct {
	out  string
	err  error
	reqs []enhance.Request
}

func (f *fakeEnhancer) Enhance(_ context.Context, req enhance.Request) (string, error) {
	f.reqs = append(f.reqs, req)
	return f.out, f.err
}

func fixedBuild() profile.BuildOptions {
	return profile.BuildOptions{
		NewID:  func() string { return "new-1" },
		Avatar: func() string { return "avatar.png" },
	}
}

func typeForm(m FormModel, s string) FormModel {
	for _, r := range s {
		m, _ = m.Update(runeKey(r))
	}
	return m
}

func tab(m FormModel) FormModel {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	return m
}

func filledForm(e enhance.Enhancer) FormModel {
	m := NewFormModel(e, fixedBuild())
	m = typeForm(m, "Ada Lovelace")
	m = tab(m)
	m = typeForm(m, "Engineer")
	m = tab(m)
	m = typeForm(m, "writes programs")
	m = tab(m)
	m = typeForm(m, "Go, Math")
	return m
}

// runCmd resolves a command, flattening one level of batching.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c != nil {
			out = append(out, c())
		}
	}
	return out
}

func TestFormFocusCycles(t *testing.T) {
	m := NewFormModel(nil, fixedBuild())
	assert.Equal(t, fieldName, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldWebsite, m.focus)

	m = tab(m)
	assert.Equal(t, fieldName, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, fieldRole, m.focus)
}

func TestFormCollectsDraft(t *testing.T) {
	m := filledForm(nil)
	d := m.Draft()
	assert.Equal(t, "Ada Lovelace", d.Name)
	assert.Equal(t, "Engineer", d.Role)
	assert.Equal(t, "writes programs", d.Bio)
	assert.Equal(t, []string{"Go", "Math"}, d.SkillList())
	assert.True(t, m.Dirty())
}

func TestFormSubmitShowsInlineErrors(t *testing.T) {
	m := NewFormModel(nil, fixedBuild())
	m = typeForm(m, "Ada")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.NotContains(t, m.errs, fieldName)
	assert.Contains(t, m.errs, fieldRole)
	assert.Contains(t, m.errs, fieldBio)

	out := m.View()
	assert.Contains(t, out, profile.ErrRoleRequired.Error())
	assert.Contains(t, out, profile.ErrBioRequired.Error())
}

func TestFormSubmitEmitsBuilder(t *testing.T) {
	m := filledForm(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	sub, ok := msgs[0].(profileSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "new-1", sub.builder.ID)
	assert.Equal(t, "Ada Lovelace", sub.builder.Name)
	assert.Equal(t, "avatar.png", sub.builder.AvatarURL)
	assert.Equal(t, []string{"Go", "Math"}, sub.builder.Skills)
}

func TestFormEnhanceNeedsDraftBio(t *testing.T) {
	e := &fakeEnhancer{out: "better"}
	m := NewFormModel(e, fixedBuild())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	assert.Nil(t, cmd)
	assert.False(t, m.Enhancing())
	assert.Contains(t, m.View(), "Write a short draft bio first.")
	assert.Empty(t, e.reqs)
}

func TestFormEnhanceReplacesBio(t *testing.T) {
	e := &fakeEnhancer{out: "Ada builds analytical engines."}
	m := filledForm(e)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	require.NotNil(t, cmd)
	assert.True(t, m.Enhancing())
	assert.Contains(t, m.View(), "Enhancing bio...")

	// A second press while running is ignored.
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	assert.Nil(t, again)

	var result *bioEnhancedMsg
	for _, msg := range runCmd(cmd) {
		if r, ok := msg.(bioEnhancedMsg); ok {
			result = &r
		}
	}
	require.NotNil(t, result)
	require.Len(t, e.reqs, 1)
	assert.Equal(t, enhance.Request{Bio: "writes programs", Role: "Engineer", Skills: []string{"Go", "Math"}}, e.reqs[0])

	m, _ = m.Update(*result)
	assert.False(t, m.Enhancing())
	assert.Equal(t, "Ada builds analytical engines.", m.Draft().Bio)
	assert.Contains(t, m.View(), "Bio enhanced.")
}

func TestFormEnhanceErrorKeepsBio(t *testing.T) {
	m := filledForm(nil)
	m.enhancing = true

	m, _ = m.Update(bioEnhancedMsg{err: errors.New("quota")})
	assert.False(t, m.Enhancing())
	assert.Equal(t, "writes programs", m.Draft().Bio)
	assert.Contains(t, m.View(), "Enhancement failed: quota")
}

func TestFormIgnoresEnhancementFromOlderForm(t *testing.T) {
	m := filledForm(nil)
	m.gen = 2
	m.enhancing = true

	m, _ = m.Update(bioEnhancedMsg{gen: 1, text: "stale"})
	assert.True(t, m.Enhancing())
	assert.Equal(t, "writes programs", m.Draft().Bio)

	m, _ = m.Update(bioEnhancedMsg{gen: 2, text: "fresh"})
	assert.False(t, m.Enhancing())
	assert.Equal(t, "fresh", m.Draft().Bio)
}

func TestFormEscReportsDirty(t *testing.T) {
	m := NewFormModel(nil, fixedBuild())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []tea.Msg{formCancelledMsg{dirty: false}}, runCmd(cmd))

	m = typeForm(m, "x")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []tea.Msg{formCancelledMsg{dirty: true}}, runCmd(cmd))
}
