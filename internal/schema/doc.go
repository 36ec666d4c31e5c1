// Package schema validates installer documents (the team profile store and
// install manifests) against JSON Schemas embedded in the binary. Validation
// issues are returned as data so callers can decide whether they are fatal.
package schema
