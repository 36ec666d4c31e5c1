package install

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/AttuneLearning/agent-workflow/internal/detect"
	"github.com/AttuneLearning/agent-workflow/internal/logger"
	"github.com/AttuneLearning/agent-workflow/internal/manifest"
	"github.com/AttuneLearning/agent-workflow/internal/materialize"
	"github.com/AttuneLearning/agent-workflow/internal/merge"
	"github.com/AttuneLearning/agent-workflow/internal/platform"
	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/vault"
	"github.com/AttuneLearning/agent-workflow/internal/workflow"
)

// Options describe one installation. Roots and Target must already be
// resolved.
type Options struct {
	TeamID        string
	AutoTeam      bool
	Roots         workflow.Roots
	Target        string
	PackName      string
	Force         bool
	DryRun        bool
	NoLocalConfig bool
	NoRepoProfile bool
}

// Result summarizes a completed installation.
type Result struct {
	TeamID       string
	AutoDetected bool
	Source       merge.Source
	Target       string
	LocalConfig  string // empty when the workflow-local copy was skipped
	Manifest     *manifest.Manifest
	DryRun       bool
}

// Installer installs teams from one profile store.
type Installer struct {
	store   *profile.Store
	out     io.Writer
	log     *logger.Logger
	version string
	now     func() time.Time
	fs      platform.FS
}

// Option configures an Installer.
type Option func(*Installer)

// WithOutput sets where progress and dry-run lines are printed.
func WithOutput(w io.Writer) Option {
	return func(i *Installer) { i.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *logger.Logger) Option {
	return func(i *Installer) { i.log = l }
}

// WithVersion records the installer version in manifests.
func WithVersion(v string) Option {
	return func(i *Installer) { i.version = v }
}

// WithClock overrides the manifest timestamp source.
func WithClock(now func() time.Time) Option {
	return func(i *Installer) { i.now = now }
}

// WithFS forces a filesystem implementation regardless of Options.DryRun.
func WithFS(fsys platform.FS) Option {
	return func(i *Installer) { i.fs = fsys }
}

// New returns an Installer for store.
func New(store *profile.Store, opts ...Option) *Installer {
	i := &Installer{store: store, out: io.Discard, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	i.log = logger.OrNop(i.log)
	return i
}

// ResolveTeam returns the team to install: the explicit id, or the detected
// one when auto is set. It does not check the id against the store.
func (i *Installer) ResolveTeam(projectRoot, teamID string, auto bool) (string, bool, error) {
	if teamID != "" {
		return teamID, false, nil
	}
	if auto {
		res := detect.Detect(projectRoot, i.store.Known())
		i.log.Debug("team detection", "reason", res.Reason, "team", res.TeamID, "candidates", res.Candidates)
		if res.Found() {
			return res.TeamID, true, nil
		}
	}
	return "", false, ErrNoTeam
}

// Run performs the installation. Nothing is modified before the target
// conflict check passes. ctx is checked between phases.
func (i *Installer) Run(ctx context.Context, opts Options) (*Result, error) {
	project := opts.Roots.Project

	teamID, auto, err := i.ResolveTeam(project, opts.TeamID, opts.AutoTeam)
	if err != nil {
		return nil, err
	}
	if auto {
		fmt.Fprintf(i.out, "Auto-detected team: %s\n", teamID)
	}

	base, ok := i.store.Lookup(teamID)
	if !ok {
		return nil, &UnknownTeamError{TeamID: teamID, Available: i.store.IDs()}
	}

	prof, source := base, merge.SourceStatic
	if !opts.NoRepoProfile {
		prof, source = merge.New(merge.WithLogger(i.log)).Merge(project, teamID, base)
	}
	log := i.log.With("team", teamID, "source", source)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fsys := i.fs
	if fsys == nil {
		fsys = platform.OS{}
		if opts.DryRun {
			fsys = platform.NewDryRun(i.out)
		}
	}

	if platform.Exists(fsys, opts.Target) {
		if !opts.Force {
			return nil, &TargetConflictError{Path: opts.Target}
		}
		log.Debug("replacing existing target", "target", opts.Target)
		if err := fsys.RemoveAll(opts.Target); err != nil {
			return nil, err
		}
	}
	if err := fsys.MkdirAll(opts.Target); err != nil {
		return nil, err
	}

	log.Debug("copying skills", "skills", prof.EnabledSkills)
	if err := materialize.CopySkills(fsys, opts.Roots, opts.Target, prof.EnabledSkills); err != nil {
		return nil, err
	}
	if err := materialize.CopyTeamMetadata(fsys, opts.Roots, opts.Target); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := vault.EnsureContract(fsys, project); err != nil {
		return nil, err
	}
	storePaths, err := vault.Ensure(fsys, project, teamID, prof.EnabledSkills)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := manifest.New(manifest.Params{
		InstallerVersion: i.version,
		PackName:         opts.PackName,
		TeamID:           teamID,
		Profile:          prof,
		Source:           string(source),
		StorePaths:       storePaths,
		WorkflowRoot:     opts.Roots.Workflow,
		ProjectRoot:      project,
		DryRun:           opts.DryRun,
		Now:              i.now,
	})
	sinks := materialize.Sinks(opts.Target, opts.Roots, !opts.NoLocalConfig)
	if err := materialize.Publish(fsys, sinks, m); err != nil {
		return nil, err
	}
	summary := filepath.Join(opts.Target, workflow.ProfileSummary)
	if err := materialize.WriteProfileSummary(fsys, summary, teamID, prof); err != nil {
		return nil, err
	}
	log.Debug("installation finished", "install_id", m.InstallID, "sinks", len(sinks))

	res := &Result{
		TeamID:       teamID,
		AutoDetected: auto,
		Source:       source,
		Target:       opts.Target,
		Manifest:     m,
		DryRun:       opts.DryRun,
	}
	if !opts.NoLocalConfig {
		res.LocalConfig = opts.Roots.LocalConfig()
	}
	return res, nil
}
