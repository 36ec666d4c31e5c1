package project

import (
	"path"
	"path/filepath"
	"strings"
)

// Conventional project-relative locations.
const (
	CommunicationDir = "dev_communication"
	RegistryFile     = CommunicationDir + "/shared/registry.yaml"
	GuidanceDir      = CommunicationDir + "/shared/guidance"
	guidanceSuffix   = "_ROLE_GUIDANCE.md"
)

// NormalizeRelPath trims whitespace and surrounding slashes from a path taken
// from a definition file and converts it to forward slashes.
func NormalizeRelPath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.Trim(p, "/")
}

// CommunicationPath joins a definition-relative path onto dev_communication/.
func CommunicationPath(rel string) string {
	return path.Join(CommunicationDir, NormalizeRelPath(rel))
}

// abs resolves a forward-slash project-relative path under projectRoot.
func abs(projectRoot, rel string) string {
	return filepath.Join(projectRoot, filepath.FromSlash(rel))
}

// GuidanceCandidate returns the role-guidance file name tried for a sub-team
// name or id, e.g. "qa-perf" → "QA_PERF_ROLE_GUIDANCE.md".
func GuidanceCandidate(name string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_")) + guidanceSuffix
}
