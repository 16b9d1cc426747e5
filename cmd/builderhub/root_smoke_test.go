package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTUIBadProfilesReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := runTUI(context.Background(), tuiOptions{profiles: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load profiles")
}

func TestRunTUIRejectsOpenConfigPermissions(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".builderhub"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".builderhub", "config"), []byte("sound: false\n"), 0o644))

	err := runTUI(context.Background(), tuiOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestRunTUINeedsTerminal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if isInteractiveTerminal(os.Stdin) && isInteractiveTerminal(os.Stdout) {
		t.Skip("running under a terminal")
	}

	err := runTUI(context.Background(), tuiOptions{})
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestRootRegistersCommandsAndFlags(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"list", "show", "skills", "setup"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
	for _, flag := range []string{"no-intro", "mute", "verbose"} {
		assert.NotNil(t, root.Flags().Lookup(flag), flag)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("profiles"))
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"builderhub", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}
