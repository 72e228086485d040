// Config loading for the kompo CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	defaultConfigDir = ".kompo"

	cfgKeyDefaultKind = "factory.default_kind"
	cfgKeyStorePath   = "store.path"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# kompo CLI configuration

factory:
  # Fallback builder for unknown discriminators.
  default_kind: car

store:
  # Ledger location; use ":memory:" for an ephemeral ledger.
  path: kompo.db
`

// cfg holds the loaded configuration; set by loadConfig before any subcommand
// runs.
var cfg *viper.Viper

// loadConfig reads config.yaml from the config directory, creating the
// directory and a default file on first run. A missing config.yaml is not an
// error.
func loadConfig(configDir string) error {
	if configDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		configDir = filepath.Join(cwd, defaultConfigDir)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDefaultKind, "car")
	v.SetDefault(cfgKeyStorePath, "kompo.db")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg = v
	logger.Debug("config loaded")
	return nil
}

// ensureDefaultConfigFile creates a default config.yaml if none exists.
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
