package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AttuneLearning/agent-workflow/internal/detect"
	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/workflow"
	"github.com/jedib0t/go-pretty/v6/table"
)

// teamEntry is one row of --list-teams output.
type teamEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Alias         string   `json:"alias,omitempty"`
	IssuePrefix   string   `json:"issue_prefix,omitempty"`
	EnabledSkills []string `json:"enabled_skills"`
}

func teamEntries(store *profile.Store) []teamEntry {
	entries := make([]teamEntry, 0, len(store.Teams))
	for _, id := range store.IDs() {
		p := store.Teams[id]
		entries = append(entries, teamEntry{
			ID:            id,
			Name:          p.DisplayName(),
			Alias:         p.Alias,
			IssuePrefix:   p.IssuePrefix,
			EnabledSkills: p.EnabledSkills,
		})
	}
	return entries
}

func listTeams(w io.Writer, store *profile.Store, asJSON bool) error {
	entries := teamEntries(store)

	if asJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling teams: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No teams found in profiles.")
		return nil
	}

	fmt.Fprintln(w, "Available teams:")
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"TEAM", "NAME", "ALIAS", "ISSUE PREFIX", "SKILLS"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.ID, e.Name, orDash(e.Alias), orDash(e.IssuePrefix), len(e.EnabledSkills)})
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

func detectTeam(w io.Writer, roots workflow.Roots, store *profile.Store) error {
	res := detect.Detect(roots.Project, store.Known())
	log.Debug("team detection", "reason", res.Reason, "candidates", res.Candidates)
	if !res.Found() {
		return &ExitError{Code: ExitFailure}
	}
	fmt.Fprintln(w, res.TeamID)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
