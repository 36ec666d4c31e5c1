// Package profile reads the static team profile store (teams/profiles.json in
// the workflow checkout). The store maps a team id to its display metadata,
// issue prefix, enabled skills, and default project paths. Loaded profiles are
// treated as immutable; Clone hands out working copies for merging.
package profile
