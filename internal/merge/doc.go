// Package merge resolves a team's effective profile by layering the project's
// own team definitions over the static profile.
//
// Resolution starts from a deep copy of the static profile and applies a fixed
// sequence of layers: definition metadata, registry entry, identity paths, the
// cross-team inbox, and sub-teams. Each layer is a no-op when its source is
// missing or malformed, so optional project data can never fail an
// installation.
package merge
