// Package config manages user-level installer settings stored at
// ~/.codex/workflow.yaml. Settings provide defaults for flags that are
// tedious to repeat, such as the pack name or a fixed install target.
package config
