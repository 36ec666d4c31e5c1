// Package branding provides compile-time identity values for the installer.
//
// Forks edit branding.yaml in this package before building; Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	PackName    string `yaml:"pack_name"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "codex-workflow",
			DisplayName: "Codex Workflow",
			Description: "Install team-scoped Codex workflow skills",
			HomeDir:     ".codex",
			EnvPrefix:   "CODEX",
			PackName:    "codex-workflow",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "codex-workflow").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".codex").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CODEX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PackName returns the default pack directory name under <home>/skills.
func PackName() string { load(); return defaults.PackName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "CODEX_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
