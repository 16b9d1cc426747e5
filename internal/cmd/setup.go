package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/builderhub/builderhub/cli/internal/config"
)

// RunInteractiveSetup prompts for the Gemini key and preferences, then
// persists config. Blank answers keep the current value.
func RunInteractiveSetup(in io.Reader, out io.Writer) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	reader := bufio.NewReader(in)

	ask := func(prompt string) string {
		fmt.Fprint(out, prompt)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	keyHint := "not set"
	if cfg.HasAPIKey() {
		keyHint = "set, enter to keep"
	}
	if key := ask(fmt.Sprintf("gemini api key (%s): ", keyHint)); key != "" {
		cfg.GeminiAPIKey = key
	}
	if model := ask(fmt.Sprintf("gemini model [%s]: ", cfg.GeminiModel)); model != "" {
		cfg.GeminiModel = model
	}

	cfg.Sound, err = askBool(ask, "sound effects", cfg.Sound)
	if err != nil {
		return err
	}
	cfg.SkipIntro, err = askBool(ask, "skip intro", cfg.SkipIntro)
	if err != nil {
		return err
	}

	current := cfg.ProfilesPath
	if current == "" {
		current = "built-in"
	}
	switch p := ask(fmt.Sprintf("profiles file [%s] (- for built-in): ", current)); p {
	case "":
	case "-":
		cfg.ProfilesPath = ""
	default:
		if _, err := LoadBuilders(p); err != nil {
			return err
		}
		cfg.ProfilesPath = p
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

func askBool(ask func(string) string, label string, current bool) (bool, error) {
	hint := "y/N"
	if current {
		hint = "Y/n"
	}
	switch strings.ToLower(ask(fmt.Sprintf("%s [%s]: ", label, hint))) {
	case "":
		return current, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return current, fmt.Errorf("%s: answer y or n", label)
	}
}

// SetupCmd returns the `builderhub setup` command.
func SetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure the Gemini key and preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunInteractiveSetup(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
