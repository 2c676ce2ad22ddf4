// ABOUTME: Environment variable expansion in config string fields.
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty.

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
// Lets the settings file reference a password manager export without
// storing the secret on disk.
func ResolveEnvVars(s *Settings) {
	s.URL = expandEnv(s.URL)
	s.Username = expandEnv(s.Username)
	s.Password = expandEnv(s.Password)
	s.Prompt = expandEnv(s.Prompt)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
