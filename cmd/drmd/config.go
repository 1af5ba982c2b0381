// Config loading for the drmd CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dukaforge/drmd/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir        = "data_dir"
	cfgKeySession        = "session"
	cfgKeySchemaPath     = "schema_path"
	cfgKeyStylesheetPath = "stylesheet_path"
	cfgKeyUnitsPath      = "units_path"

	// defaultSession names the session used when neither the flag nor
	// the config selects one.
	defaultSession = "default"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# drmd CLI configuration

# Session name used when --session is not given
session: default

# Data directory holding the session database (optional; overridable by --data-dir)
# data_dir:

# Path to the XSD schema consulted by "drmd validate"
# schema_path:

# Path to the XSL stylesheet applied by "drmd render"
# stylesheet_path:

# Path to the QUDT Turtle ontology consulted by "drmd units"
# units_path:
`

// resolveConfigDir applies the flag > environment > platform-default
// precedence.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run; a missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeySession, defaultSession)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
