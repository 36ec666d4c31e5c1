package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AttuneLearning/agent-workflow/internal/branding"
	"github.com/AttuneLearning/agent-workflow/internal/config"
	"github.com/AttuneLearning/agent-workflow/internal/profile"
)

// Directory and file names inside the workflow root and the target.
const (
	SkillsDir       = "skills"
	TeamsDir        = "teams"
	ConfigDir       = "config"
	ActiveTeamFile  = "active-team.json"
	ManifestFile    = "install-manifest.json"
	ProfileSummary  = "TEAM_PROFILE.md"
	skillsHomeDir   = "skills"
	codexHomeSuffix = "HOME"
)

// Roots are the two source locations of an installation.
type Roots struct {
	Workflow string
	Project  string
}

// ProfileStore returns the path to teams/profiles.json.
func (r Roots) ProfileStore() string {
	return filepath.Join(r.Workflow, filepath.FromSlash(profile.StoreFile))
}

// SkillSource returns the source directory for one skill.
func (r Roots) SkillSource(skill string) string {
	return filepath.Join(r.Workflow, SkillsDir, skill)
}

// TeamsSource returns the team metadata directory.
func (r Roots) TeamsSource() string {
	return filepath.Join(r.Workflow, TeamsDir)
}

// LocalConfig returns the workflow-local active team file.
func (r Roots) LocalConfig() string {
	return filepath.Join(r.Workflow, ConfigDir, ActiveTeamFile)
}

// ResolveRoots determines the workflow and project roots. An empty flag
// value falls through to the next source:
//
//	workflow: flag, workflow_root setting or CODEX_WORKFLOW_ROOT, parent of the executable's directory
//	project:  flag, parent of the workflow root
func ResolveRoots(workflowFlag, projectFlag string) (Roots, error) {
	wf := workflowFlag
	if wf == "" {
		wf = config.Get(config.KeyWorkflowRoot)
	}
	if wf == "" {
		exe, err := os.Executable()
		if err != nil {
			return Roots{}, fmt.Errorf("locating executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		wf = filepath.Dir(filepath.Dir(exe))
	}
	wf, err := absPath(wf)
	if err != nil {
		return Roots{}, err
	}

	proj := filepath.Dir(wf)
	if projectFlag != "" {
		if proj, err = absPath(projectFlag); err != nil {
			return Roots{}, err
		}
	}
	return Roots{Workflow: wf, Project: proj}, nil
}

// PackName returns flag, the pack_name setting, or the branded default.
func PackName(flag string) string {
	if flag != "" {
		return flag
	}
	return config.GetOr(config.KeyPackName, branding.PackName())
}

// ResolveTarget returns the install destination. It checks the flag, then
// the target setting, then $CODEX_HOME/skills/<pack>, then
// ~/.codex/skills/<pack>.
func ResolveTarget(flag, packName string) (string, error) {
	if flag == "" {
		flag = config.Get(config.KeyTarget)
	}
	if flag != "" {
		return absPath(flag)
	}
	return DefaultTarget(packName)
}

// DefaultTarget returns the conventional target for packName.
func DefaultTarget(packName string) (string, error) {
	if home := os.Getenv(branding.EnvVar(codexHomeSuffix)); home != "" {
		home, err := absPath(home)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, skillsHomeDir, packName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), skillsHomeDir, packName), nil
}

// absPath expands a leading ~ and makes p absolute.
func absPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		p = filepath.Join(home, p[1:])
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving path %s: %w", p, err)
	}
	return abs, nil
}
