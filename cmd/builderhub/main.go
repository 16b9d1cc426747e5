package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/builderhub/builderhub/cli/internal/cmd"
	"github.com/builderhub/builderhub/cli/internal/config"
	"github.com/builderhub/builderhub/cli/internal/enhance"
	"github.com/builderhub/builderhub/cli/internal/logging"
	"github.com/builderhub/builderhub/cli/internal/profile"
	"github.com/builderhub/builderhub/cli/internal/sound"
	"github.com/builderhub/builderhub/cli/internal/ui"
)

var errNotInteractive = errors.New("the directory needs an interactive terminal; try 'builderhub list'")

type tuiOptions struct {
	profiles string
	noIntro  bool
	mute     bool
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts tuiOptions
	root := &cobra.Command{
		Use:   "builderhub",
		Short: "BuilderHub - builder discovery in the terminal",
		Long:  "BuilderHub CLI: browse builder profiles in a carousel, search by skill, and add your own profile.",
		RunE: func(c *cobra.Command, _ []string) error {
			opts.profiles, _ = c.Flags().GetString(cmd.ProfilesFlag)
			return runTUI(c.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String(cmd.ProfilesFlag, "", "YAML profiles file (default: built-in directory)")
	root.Flags().BoolVar(&opts.noIntro, "no-intro", false, "skip the boot sequence")
	root.Flags().BoolVar(&opts.mute, "mute", false, "disable sound effects")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(cmd.ListCmd())
	root.AddCommand(cmd.ShowCmd())
	root.AddCommand(cmd.SkillsCmd())
	root.AddCommand(cmd.SetupCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(ctx context.Context, opts tuiOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)

	logger, err := logging.New(cfg.LogPath, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	path := cmd.ResolveProfilesPath(opts.profiles, cfg)
	builders, err := cmd.LoadBuilders(path)
	if err != nil {
		return err
	}
	logger.Info("startup",
		zap.String("profiles", path),
		zap.Int("builders", len(builders)),
		zap.Bool("gemini", cfg.HasAPIKey()),
	)

	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errNotInteractive
	}

	var reloads <-chan profile.Reload
	if path != "" {
		w, err := profile.Watch(ctx, path, logger)
		if err != nil {
			logger.Warn("profiles watch disabled", zap.Error(err))
		} else {
			defer func() { _ = w.Close() }()
			reloads = w.Updates()
		}
	}

	app := ui.NewApp(ui.AppOptions{
		Config:    cfg,
		Directory: profile.NewDirectory(builders),
		Enhancer:  newEnhancer(ctx, cfg, logger),
		Sound:     sound.NewToggle(newPlayer(logger), cfg.Sound && !opts.mute),
		Logger:    logger,
		Reloads:   reloads,
		SkipIntro: opts.noIntro,
		Build:     profile.DefaultBuildOptions(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// newEnhancer returns the Gemini enhancer behind a fallback that keeps the
// draft on failure. Without a key the draft is returned untouched.
func newEnhancer(ctx context.Context, cfg *config.Config, logger *zap.Logger) enhance.Enhancer {
	var next enhance.Enhancer = enhance.Noop{}
	if cfg.HasAPIKey() {
		g, err := enhance.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini client unavailable", zap.Error(err))
		} else {
			next = g
		}
	}
	return enhance.NewFallback(next, logger)
}

func newPlayer(logger *zap.Logger) sound.Player {
	s, err := sound.NewSpeaker(logger)
	if err != nil {
		logger.Warn("audio unavailable, sound muted", zap.Error(err))
		return sound.Muted{}
	}
	return s
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
