package config

import (
	"os"
	"path/filepath"
)

// Dir returns the restforge configuration directory, honouring
// RESTFORGE_CONFIG_DIR for tests and unusual setups.
func Dir() string {
	if override := os.Getenv("RESTFORGE_CONFIG_DIR"); override != "" {
		return override
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return ".restforge"
		}
		return filepath.Join(home, ".restforge")
	}
	return filepath.Join(base, "restforge")
}
