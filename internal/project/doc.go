// Package project loads the optional, repository-local team definitions that
// live under dev_communication/ in a target project: the shared registry of
// active teams and one definition file per team.
//
// These files are hand-maintained and frequently half-written, so loading never
// fails. A missing, unreadable, or structurally wrong file yields an empty
// Registry or Definition, and individual malformed entries are skipped.
package project
