// Package vault scaffolds the ai_team_config note vault inside a project: a
// shared memory store, a per-team store tree and one memory store per enabled
// skill, each with a markdown index cross-linked through wiki links.
//
// Scaffolding never overwrites. Directories and index files are created only
// when absent, and the root index only ever gains the two link lines that
// point at the shared store and the team.
package vault
