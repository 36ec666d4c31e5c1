// Package materialize writes an installation into its target: skill
// directories and team metadata copied from the workflow root, the install
// manifest at each of its sinks, and the TEAM_PROFILE.md summary.
//
// All writes go through a platform.FS so a dry run describes them instead.
package materialize
