package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultModel is the Gemini model used for bio enhancement.
const DefaultModel = "gemini-2.5-flash"

// Config holds CLI configuration stored at ~/.builderhub/config.
type Config struct {
	GeminiAPIKey string `yaml:"gemini_api_key,omitempty"`
	GeminiModel  string `yaml:"gemini_model,omitempty"`
	Sound        bool   `yaml:"sound"`
	SkipIntro    bool   `yaml:"skip_intro"`
	ProfilesPath string `yaml:"profiles_path,omitempty"`
	LogPath      string `yaml:"log_path,omitempty"`
}

// Dir returns the directory holding config and logs.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".builderhub")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		GeminiModel: DefaultModel,
		Sound:       true,
		LogPath:     filepath.Join(Dir(), "builderhub.log"),
	}
}

// Load reads and parses the config file. Returns error if missing or insecure.
// Fields absent from the file keep their defaults.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultModel
	}

	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields the defaults.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv lets GEMINI_API_KEY, then API_KEY, override the stored key.
func (c *Config) ApplyEnv(getenv func(string) string) {
	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			c.GeminiAPIKey = v
			return
		}
	}
}

// HasAPIKey reports whether bio enhancement can reach Gemini.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// WriteFile keeps the mode of an existing file.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return os.Chmod(path, 0600)
}
