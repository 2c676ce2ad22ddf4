// ABOUTME: Standard filesystem paths for ger-go configuration and data.
// ABOUTME: Everything lives under ~/.ger-go/; a relative fallback covers missing HOME.

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".ger-go"

// GlobalDir returns the user-global config directory (~/.ger-go/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the settings file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// FiltersFile returns the path to the user's extra query filters.
func FiltersFile() string {
	return filepath.Join(GlobalDir(), "filters.yaml")
}

// DebugLogFile returns the path verbose-mode logs are written to while
// the terminal is in raw mode.
func DebugLogFile() string {
	return filepath.Join(GlobalDir(), "debug.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
// Uses 0o700 since the directory may hold credentials.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
