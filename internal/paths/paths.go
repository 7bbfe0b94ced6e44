// Package paths resolves where bistro keeps its configuration and its
// extent file. Both directories default to hidden directories under the
// working directory so each project gets its own restaurant data.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names used when nothing else is set.
const (
	DefaultConfigDirName = ".bistro"
	DefaultDataDirName   = ".bistro-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "BISTRO_CONFIG_DIR"
	EnvDataDir   = "BISTRO_DATA_DIR"
)

// ConfigFileName is the name of the YAML config file inside the config dir.
const ConfigFileName = "config.yaml"

// getwd is replaced in tests.
var getwd = os.Getwd

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > BISTRO_CONFIG_DIR > $(CWD)/.bistro.
func ResolveConfigDir(flag string) (string, error) {
	return resolve(DefaultConfigDirName, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > data_dir from config.yaml > BISTRO_DATA_DIR > $(CWD)/.bistro-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	return resolve(DefaultDataDirName, flag, configYAMLValue, os.Getenv(EnvDataDir))
}

// ConfigFile returns the config.yaml path inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// resolve returns the first non-empty candidate made absolute, or fallback
// under the working directory.
func resolve(fallback string, candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, fallback), nil
}
