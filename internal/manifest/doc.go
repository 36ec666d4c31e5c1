// Package manifest defines the install manifest: the JSON record of one
// installation, naming the team, its resolved profile and where the vault
// lives. It handles building, encoding and schema-checked decoding.
package manifest
