package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/builderhub/builderhub/cli/internal/config"
	"github.com/builderhub/builderhub/cli/internal/profile"
)

// ProfilesFlag is the persistent flag naming a YAML profiles file.
const ProfilesFlag = "profiles"

// ResolveProfilesPath picks the profiles file: flag first, then config. An
// empty result means the built-in seed list.
func ResolveProfilesPath(flagPath string, cfg *config.Config) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg != nil {
		return cfg.ProfilesPath
	}
	return ""
}

// LoadBuilders returns the builders from path, or the seed list when path is
// empty.
func LoadBuilders(path string) ([]profile.Builder, error) {
	if path == "" {
		return profile.Seed(), nil
	}
	builders, err := profile.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return builders, nil
}

// buildersFor resolves and loads the profiles for a subcommand.
func buildersFor(cmd *cobra.Command) ([]profile.Builder, error) {
	flagPath, _ := cmd.Flags().GetString(ProfilesFlag)
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return LoadBuilders(ResolveProfilesPath(flagPath, cfg))
}
