// Package platform provides the filesystem primitives the installer mutates
// disks through. OS applies changes with whole-file atomic writes; DryRun
// reads the real filesystem but only describes mutations, one "[dry-run]"
// line per action. Permission handling degrades to a no-op on Windows.
package platform
