// ABOUTME: Settings loading for the shell: JSON file defaults with env var overrides.
// ABOUTME: Credentials are validated up front so a misconfigured session never enters raw mode.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Env var names the shell reads credentials from. They override any
// value the settings file provides.
const (
	EnvURL      = "GERRIT_URL"
	EnvUser     = "GERRIT_USER"
	EnvPassword = "GERRIT_PW"
)

// ErrMissingCredentials marks a configuration failure the caller maps
// to its dedicated exit code, before any terminal state is touched.
var ErrMissingCredentials = errors.New("missing credentials")

// Settings holds the merged shell configuration.
type Settings struct {
	URL      string `json:"url,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Verbose  bool   `json:"verbose,omitempty"`
}

// Load reads the global settings file, expands ${VAR} references, and
// applies environment variable overrides. A missing file is not an
// error; env vars alone are a complete configuration.
func Load() (*Settings, error) {
	s, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ResolveEnvVars(s)

	if v := os.Getenv(EnvURL); v != "" {
		s.URL = v
	}
	if v := os.Getenv(EnvUser); v != "" {
		s.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		s.Password = v
	}
	if s.Prompt == "" {
		s.Prompt = "ger"
	}
	return s, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if
// the file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that every credential the remote client needs is
// present. The error names each missing variable so the user can fix
// all of them in one pass.
func (s *Settings) Validate() error {
	var missing []string
	if s.URL == "" {
		missing = append(missing, EnvURL)
	}
	if s.Username == "" {
		missing = append(missing, EnvUser)
	}
	if s.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// LogLevel maps the verbose flag to a slog level.
func (s *Settings) LogLevel() slog.Level {
	if s.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
