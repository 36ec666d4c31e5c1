// Package doctor checks that an installation can run: the profile store
// loads, every enabled skill has a source directory, and an existing target
// manifest is well formed.
package doctor
