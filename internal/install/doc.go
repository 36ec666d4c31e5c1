// Package install runs one team installation end to end: pick the team,
// resolve its profile against the project, materialize skills and metadata
// into the target, scaffold the project vault and publish the manifest.
package install
