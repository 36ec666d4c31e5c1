package manifest

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/vault"
)

// Manifest records one installation. It is built once and never modified.
type Manifest struct {
	InstallID          string              `json:"install_id"`
	InstallerVersion   string              `json:"installer_version,omitempty"`
	PackName           string              `json:"pack_name"`
	InstalledAt        time.Time           `json:"installed_at"`
	TeamID             string              `json:"team_id"`
	TeamProfile        profile.TeamProfile `json:"team_profile"`
	TeamProfileSource  string              `json:"team_profile_source"`
	TeamStorePaths     vault.StorePaths    `json:"team_store_paths"`
	SourceWorkflowRoot string              `json:"source_workflow_root"`
	ProjectRoot        string              `json:"project_root"`
	DryRun             bool                `json:"dry_run,omitempty"`
}

// Params are the inputs to New.
type Params struct {
	InstallerVersion string
	PackName         string
	TeamID           string
	Profile          profile.TeamProfile
	Source           string
	StorePaths       vault.StorePaths
	WorkflowRoot     string
	ProjectRoot      string
	DryRun           bool
	Now              func() time.Time // defaults to time.Now
}

// New builds the manifest for an installation. The vault locations are
// folded into a copy of the profile's default paths, overriding any static
// entries with the same key.
func New(p Params) *Manifest {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	prof := p.Profile.Clone()
	prof.ID = p.TeamID
	maps.Copy(prof.DefaultPaths, p.StorePaths.DefaultPaths())

	return &Manifest{
		InstallID:          uuid.NewString(),
		InstallerVersion:   p.InstallerVersion,
		PackName:           p.PackName,
		InstalledAt:        now().UTC().Truncate(time.Second),
		TeamID:             p.TeamID,
		TeamProfile:        prof,
		TeamProfileSource:  p.Source,
		TeamStorePaths:     p.StorePaths,
		SourceWorkflowRoot: p.WorkflowRoot,
		ProjectRoot:        p.ProjectRoot,
		DryRun:             p.DryRun,
	}
}
