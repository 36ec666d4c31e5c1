package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/AttuneLearning/agent-workflow/internal/branding"
	"github.com/AttuneLearning/agent-workflow/internal/config"
	"github.com/AttuneLearning/agent-workflow/internal/install"
	"github.com/AttuneLearning/agent-workflow/internal/logger"
	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// rootFlags holds every root and persistent flag. All defaults are zero
// values; real defaults are resolved after parsing.
type rootFlags struct {
	team          string
	autoTeam      bool
	detectTeam    bool
	listTeams     bool
	json          bool
	workspaceRoot string
	workflowRoot  string
	target        string
	packName      string
	force         bool
	dryRun        bool
	noLocalConfig bool
	noRepoProfile bool
	verbose       bool
}

var (
	flags rootFlags
	log   = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs the workflow skills for one team into a skills directory,
resolving the team's profile against the project's own team definitions and
scaffolding the project's ai_team_config vault.`,
	Example: `  ` + branding.CLIName() + ` --list-teams
  ` + branding.CLIName() + ` --team backend
  ` + branding.CLIName() + ` --detect-team --workspace-root .
  ` + branding.CLIName() + ` --auto-team --workspace-root .
  ` + branding.CLIName() + ` --team data-warehousing --target /tmp/codex-skills --dry-run`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		l, err := logger.New(flags.verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		log = l
		return nil
	},
	RunE: runRoot,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.team, "team", "", "Team id, e.g. backend, frontend, data-warehousing")
	f.BoolVar(&flags.autoTeam, "auto-team", false, "Auto-detect team from repository definitions when --team is omitted")
	f.BoolVar(&flags.detectTeam, "detect-team", false, "Print detected team id for this workspace and exit")
	f.BoolVar(&flags.listTeams, "list-teams", false, "List available team ids")
	f.BoolVar(&flags.json, "json", false, "Print --list-teams output as JSON")
	f.BoolVar(&flags.force, "force", false, "Overwrite existing target directory")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Print actions without writing files")
	f.BoolVar(&flags.noLocalConfig, "no-local-config", false, "Do not write config/active-team.json in the workflow root")
	f.BoolVar(&flags.noRepoProfile, "no-repo-profile", false, "Use only static profiles.json values and ignore dev_communication team definitions")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.workspaceRoot, "workspace-root", "", "Project root (default: parent of the workflow root)")
	pf.StringVar(&flags.workflowRoot, "workflow-root", "", "Workflow root holding skills/ and teams/ (default: $"+branding.EnvVar("WORKFLOW_ROOT")+", else parent of the executable's directory)")
	pf.StringVar(&flags.target, "target", "", "Install destination (default: $"+branding.EnvVar("HOME")+"/skills/<pack> or ~/"+branding.HomeDir()+"/skills/<pack>)")
	pf.StringVar(&flags.packName, "pack-name", "", "Pack name under the skills directory (default: "+branding.PackName()+")")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the installation between phases.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer func() { log.Sync() }()

	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, args []string) error {
	roots, err := workflow.ResolveRoots(flags.workflowRoot, flags.workspaceRoot)
	if err != nil {
		return err
	}
	log.Debug("resolved roots", "workflow", roots.Workflow, "project", roots.Project)

	store, err := profile.Load(roots.ProfileStore())
	if err != nil {
		return err
	}

	switch {
	case flags.listTeams:
		return listTeams(cmd.OutOrStdout(), store, flags.json)
	case flags.detectTeam:
		return detectTeam(cmd.OutOrStdout(), roots, store)
	}

	return runInstall(cmd, roots, store)
}

func runInstall(cmd *cobra.Command, roots workflow.Roots, store *profile.Store) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	packName := workflow.PackName(flags.packName)
	target, err := workflow.ResolveTarget(flags.target, packName)
	if err != nil {
		return err
	}

	inst := install.New(store,
		install.WithOutput(out),
		install.WithLogger(log),
		install.WithVersion(buildVersion),
	)
	res, err := inst.Run(cmd.Context(), install.Options{
		TeamID:        flags.team,
		AutoTeam:      flags.autoTeam,
		Roots:         roots,
		Target:        target,
		PackName:      packName,
		Force:         flags.force,
		DryRun:        flags.dryRun,
		NoLocalConfig: flags.noLocalConfig,
		NoRepoProfile: flags.noRepoProfile,
	})

	var unknown *install.UnknownTeamError
	var conflict *install.TargetConflictError
	switch {
	case errors.Is(err, install.ErrNoTeam):
		return &ExitError{Code: ExitUsage, Err: err}
	case errors.As(err, &unknown):
		fmt.Fprintf(errOut, "Unknown team: %s\n", unknown.TeamID)
		if err := listTeams(errOut, store, false); err != nil {
			return err
		}
		return &ExitError{Code: ExitUsage}
	case errors.As(err, &conflict):
		fmt.Fprintf(errOut, "Target exists: %s\n", conflict.Path)
		fmt.Fprintln(errOut, "Use --force to replace, or pass --target to install elsewhere.")
		return &ExitError{Code: ExitTargetExists}
	case err != nil:
		return err
	}

	if res.DryRun {
		fmt.Fprintln(out, "Dry-run complete.")
	} else {
		fmt.Fprintln(out, "Installation complete.")
	}
	fmt.Fprintf(out, "Team: %s\n", res.TeamID)
	fmt.Fprintf(out, "Team profile source: %s\n", res.Source)
	fmt.Fprintf(out, "Target: %s\n", res.Target)
	if res.LocalConfig == "" {
		fmt.Fprintln(out, "Local config: skipped (--no-local-config)")
	} else {
		fmt.Fprintf(out, "Local config: %s\n", res.LocalConfig)
	}
	return nil
}
