// Package cli defines the Cobra command tree for the codex-workflow installer.
// The root command performs the installation itself; subcommands cover
// version info, user settings and health checks. Commands delegate to internal
// packages for the work and only handle flags, output and exit codes.
package cli
