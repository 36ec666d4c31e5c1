package cli

import (
	"fmt"

	"github.com/AttuneLearning/agent-workflow/internal/doctor"
	"github.com/AttuneLearning/agent-workflow/internal/workflow"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the profile store, skill sources and installed manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, err := workflow.ResolveRoots(flags.workflowRoot, flags.workspaceRoot)
		if err != nil {
			return err
		}
		target, err := workflow.ResolveTarget(flags.target, workflow.PackName(flags.packName))
		if err != nil {
			return err
		}

		report := doctor.Run(cmd.OutOrStdout(), roots, target)
		if !report.Healthy() {
			return fmt.Errorf("doctor found %d missing and %d failed checks", report.Missing, report.Failed)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All checks passed.")
		return nil
	},
}
