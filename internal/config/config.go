package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AttuneLearning/agent-workflow/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "workflow"
	fileType = "yaml"
)

// Known setting keys.
const (
	KeyPackName     = "pack_name"
	KeyTarget       = "target"
	KeyWorkflowRoot = "workflow_root"
)

// Keys returns the setting keys understood by the installer, sorted.
func Keys() []string {
	keys := []string{KeyPackName, KeyTarget, KeyWorkflowRoot}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is one of Keys().
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Dir returns the path to the user config directory (~/.codex/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the settings file (~/.codex/workflow.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the settings file and environment.
// Environment variables use the branding prefix, e.g. CODEX_PACK_NAME.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetOr returns the value for key, or fallback when it is unset or blank.
func GetOr(key, fallback string) string {
	if v := Get(key); v != "" {
		return v
	}
	return fallback
}

// Set writes a config key-value pair and saves the settings file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Reset clears all values held by Viper. Tests use it to isolate settings.
func Reset() {
	viper.Reset()
}
