package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/vault"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 4, 5, 6, 7, 890, time.FixedZone("X", 3600))
}

func sampleParams() Params {
	return Params{
		InstallerVersion: "1.2.3",
		PackName:         "codex-workflow",
		TeamID:           "frontend",
		Profile: profile.TeamProfile{
			ID:            "frontend",
			Name:          "Web",
			IssuePrefix:   "FE2",
			EnabledSkills: []string{"ui-skill"},
			DefaultPaths: map[string]string{
				"inbox":     "dev_communication/frontend/inbox",
				"adr_store": "docs/adr",
			},
			SubTeams: map[string]profile.SubTeam{
				"qa":     {Name: "QA", Function: "testing", IssuePrefix: "FE2", RoleGuidance: "dev_communication/shared/guidance/QA_ROLE_GUIDANCE.md"},
				"design": {Name: "design", IssuePrefix: "DS"},
			},
		},
		Source:       "dev_communication/shared/registry.yaml + team definition",
		StorePaths:   vault.PathsFor("frontend"),
		WorkflowRoot: "/src/.codex-workflow",
		ProjectRoot:  "/src",
		Now:          fixedNow,
	}
}

func TestNew(t *testing.T) {
	p := sampleParams()
	m := New(p)

	_, err := uuid.Parse(m.InstallID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 4, 4, 6, 7, 0, time.UTC), m.InstalledAt)

	assert.Equal(t, "ai_team_config/frontend/adr_store", m.TeamProfile.DefaultPaths["adr_store"], "vault path overrides static")
	assert.Equal(t, "ai_team_config/memory_store", m.TeamProfile.DefaultPaths["memory_root"])
	assert.Equal(t, "dev_communication/frontend/inbox", m.TeamProfile.DefaultPaths["inbox"])

	// The caller's profile is left alone.
	assert.Equal(t, "docs/adr", p.Profile.DefaultPaths["adr_store"])
	assert.NotContains(t, p.Profile.DefaultPaths, "memory_root")

	assert.NotEqual(t, m.InstallID, New(p).InstallID)
}

func TestMarshalShape(t *testing.T) {
	data, err := Marshal(New(sampleParams()))
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasSuffix(s, "}\n"))
	assert.Contains(t, s, "\n  \"pack_name\": \"codex-workflow\",\n")
	assert.Contains(t, s, `"installed_at": "2026-03-04T04:06:07Z"`)
	assert.NotContains(t, s, "dry_run")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	team := raw["team_profile"].(map[string]any)
	assert.NotContains(t, team, "id")
	assert.Equal(t, "FE2", team["issue_prefix"])

	res, err := Validate(data)
	require.NoError(t, err)
	assert.True(t, res.Valid, res.Summary())
}

func TestRoundTripKeepsSubTeams(t *testing.T) {
	m := New(sampleParams())
	path := filepath.Join(t.TempDir(), "active-team.json")
	data, err := Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, m.TeamProfile.SubTeams, got.TeamProfile.SubTeams)
	assert.Equal(t, m, got)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"pack_name": "x"}`))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "team_id")

	_, err = Parse([]byte(`not json`))
	require.Error(t, err)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
