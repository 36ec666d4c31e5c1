package vault

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"text/template"

	"github.com/AttuneLearning/agent-workflow/internal/platform"
)

// Root is the vault directory relative to the project root.
const Root = "ai_team_config"

// ContractFile is written at the project root.
const ContractFile = "TEAM_CONFIG_CONTRACT.md"

const indexFile = "index.md"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// StorePaths are the vault locations for one team, relative to the project
// root with forward slashes.
type StorePaths struct {
	VaultRoot        string `json:"vault_root"`
	SharedMemoryRoot string `json:"shared_memory_root"`
	TeamRoot         string `json:"team_root"`
	ADRStore         string `json:"adr_store"`
	MemoryStore      string `json:"memory_store"`
	ContextStore     string `json:"context_store"`
	SkillStoreRoot   string `json:"skill_store_root"`
}

// PathsFor returns the store layout for teamID.
func PathsFor(teamID string) StorePaths {
	team := path.Join(Root, teamID)
	return StorePaths{
		VaultRoot:        Root,
		SharedMemoryRoot: path.Join(Root, "memory_store"),
		TeamRoot:         team,
		ADRStore:         path.Join(team, "adr_store"),
		MemoryStore:      path.Join(team, "memory_store"),
		ContextStore:     path.Join(team, "context_store"),
		SkillStoreRoot:   path.Join(team, "skill_store"),
	}
}

// DefaultPaths returns the profile default_paths entries that point into the
// vault.
func (s StorePaths) DefaultPaths() map[string]string {
	return map[string]string{
		"memory_root":      s.SharedMemoryRoot,
		"team_vault_root":  s.TeamRoot,
		"adr_store":        s.ADRStore,
		"memory_store":     s.MemoryStore,
		"context_store":    s.ContextStore,
		"skill_store_root": s.SkillStoreRoot,
	}
}

// SkillMemoryStore returns the memory store directory for one skill.
func (s StorePaths) SkillMemoryStore(skill string) string {
	return path.Join(s.SkillStoreRoot, skill, "memory_store")
}

// SharedMemoryLink is the root index line linking the shared memory store.
func SharedMemoryLink() string {
	return "- Shared Memory: [[" + Root + "/memory_store/index]]"
}

// TeamLink is the root index line linking a team's vault.
func TeamLink(teamID string) string {
	return "- [[" + Root + "/" + teamID + "/index]]"
}

type data struct {
	Root   string
	Team   string
	Skills []string
	Skill  string
}

// Ensure scaffolds the vault for teamID under projectRoot and returns its
// store paths.
func Ensure(fsys platform.FS, projectRoot, teamID string, skills []string) (StorePaths, error) {
	sp := PathsFor(teamID)
	abs := func(rel string) string {
		return filepath.Join(projectRoot, filepath.FromSlash(rel))
	}
	d := data{Root: Root, Team: teamID, Skills: skills}

	for _, dir := range []string{
		sp.VaultRoot, sp.SharedMemoryRoot, sp.TeamRoot,
		sp.ADRStore, sp.MemoryStore, sp.ContextStore, sp.SkillStoreRoot,
	} {
		if err := platform.EnsureDir(fsys, abs(dir)); err != nil {
			return StorePaths{}, err
		}
	}

	rootIndex := abs(path.Join(sp.VaultRoot, indexFile))
	if err := writeIfMissing(fsys, rootIndex, "root_index.md.tmpl", d); err != nil {
		return StorePaths{}, err
	}
	for _, line := range []string{SharedMemoryLink(), TeamLink(teamID)} {
		if _, err := platform.AppendLineIfMissing(fsys, rootIndex, line); err != nil {
			return StorePaths{}, err
		}
	}

	indexes := []struct {
		dir, tmpl string
	}{
		{sp.SharedMemoryRoot, "shared_memory_index.md.tmpl"},
		{sp.TeamRoot, "team_index.md.tmpl"},
		{sp.ADRStore, "adr_index.md.tmpl"},
		{sp.MemoryStore, "memory_index.md.tmpl"},
		{sp.ContextStore, "context_index.md.tmpl"},
		{sp.SkillStoreRoot, "skill_store_index.md.tmpl"},
	}
	for _, idx := range indexes {
		if err := writeIfMissing(fsys, abs(path.Join(idx.dir, indexFile)), idx.tmpl, d); err != nil {
			return StorePaths{}, err
		}
	}

	for _, skill := range skills {
		dir := sp.SkillMemoryStore(skill)
		if err := platform.EnsureDir(fsys, abs(dir)); err != nil {
			return StorePaths{}, err
		}
		sd := d
		sd.Skill = skill
		if err := writeIfMissing(fsys, abs(path.Join(dir, indexFile)), "skill_memory_index.md.tmpl", sd); err != nil {
			return StorePaths{}, err
		}
	}

	return sp, nil
}

// EnsureContract writes TEAM_CONFIG_CONTRACT.md at the project root unless
// it already exists.
func EnsureContract(fsys platform.FS, projectRoot string) error {
	return writeIfMissing(fsys, filepath.Join(projectRoot, ContractFile), "contract.md.tmpl", data{Root: Root})
}

func writeIfMissing(fsys platform.FS, dst, name string, d data) error {
	if platform.Exists(fsys, dst) {
		return nil
	}
	body, err := render(name, d)
	if err != nil {
		return err
	}
	if _, err := platform.WriteIfMissing(fsys, dst, body); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

func render(name string, d data) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
