package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadRegistryAbsent(t *testing.T) {
	reg := LoadRegistry(t.TempDir())
	require.NotNil(t, reg)
	assert.True(t, reg.IsEmpty())
}

func TestLoadRegistry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, RegistryFile, `
active_teams:
  - id: backend
    repo: api-service
    name: Platform API
    definition: backend/definition.yaml
  - "not a mapping"
  - id: frontend
    repo: web
    alias: web-team
  - id: 42
    repo: numbers
`)

	reg := LoadRegistry(root)
	require.Len(t, reg.Entries, 3)
	assert.Equal(t, RegistryEntry{
		ID:         "backend",
		Repo:       "api-service",
		Name:       "Platform API",
		Definition: "backend/definition.yaml",
	}, reg.Entries[0])
	assert.Equal(t, "web-team", reg.Entries[1].Alias)
	assert.Equal(t, "42", reg.Entries[2].ID)

	e, ok := reg.Find("frontend")
	require.True(t, ok)
	assert.Equal(t, "web", e.Repo)

	_, ok = reg.Find("ops")
	assert.False(t, ok)

	others := reg.Others("backend")
	require.Len(t, others, 2)
	assert.Equal(t, "frontend", others[0].ID)
}

func TestLoadRegistryMalformed(t *testing.T) {
	tests := map[string]string{
		"not yaml":             "active_teams: [unclosed",
		"scalar root":          "just a string",
		"list root":            "- id: backend",
		"active_teams mapping": "active_teams:\n  backend: {}\n",
		"empty file":           "",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, RegistryFile, content)
			assert.True(t, LoadRegistry(root).IsEmpty())
		})
	}
}

func TestMatchRepo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, RegistryFile, `
active_teams:
  - {id: backend, repo: svc}
  - {id: ghost, repo: svc}
  - {id: frontend, repo: web}
`)
	reg := LoadRegistry(root)
	known := map[string]bool{"backend": true, "frontend": true}

	matches := reg.MatchRepo("svc", func(id string) bool { return known[id] })
	require.Len(t, matches, 1)
	assert.Equal(t, "backend", matches[0].ID)

	assert.Len(t, reg.MatchRepo("svc", nil), 2)
	assert.Empty(t, reg.MatchRepo("", nil))
}

func TestLoadDefinition(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "dev_communication/backend/definition.yaml", `
team:
  name: Backend Guild
  alias: be
identity:
  issue_prefix: " BE2 "
  inbox: /backend/inbox/
  issues: backend/issues
  status: 17
sub_teams:
  perf:
    name: Performance
    function: load testing
  broken: "scalar payload"
  data:
    issue_prefix: DATA
`)

	def := LoadDefinition(root, "backend/definition.yaml")
	require.False(t, def.IsEmpty())
	assert.Equal(t, TeamMeta{Name: "Backend Guild", Alias: "be"}, def.Team)
	assert.Equal(t, " BE2 ", def.Identity.IssuePrefix)
	assert.Equal(t, "/backend/inbox/", def.Identity.Inbox)
	assert.Equal(t, "backend/issues", def.Identity.Issues)
	assert.Empty(t, def.Identity.Status, "non-string status should be ignored")

	require.Len(t, def.SubTeams, 2)
	assert.Equal(t, SubTeamDecl{ID: "data", IssuePrefix: "DATA"}, def.SubTeams[0])
	assert.Equal(t, SubTeamDecl{ID: "perf", Name: "Performance", Function: "load testing"}, def.SubTeams[1])
}

func TestLoadDefinitionAbsentOrEmpty(t *testing.T) {
	root := t.TempDir()
	assert.True(t, LoadDefinition(root, "").IsEmpty())
	assert.True(t, LoadDefinition(root, "missing.yaml").IsEmpty())

	writeFile(t, root, "dev_communication/empty.yaml", "{}\n")
	assert.True(t, LoadDefinition(root, "empty.yaml").IsEmpty())

	writeFile(t, root, "dev_communication/list.yaml", "- a\n- b\n")
	assert.True(t, LoadDefinition(root, "list.yaml").IsEmpty())
}

func TestNormalizeRelPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"backend/inbox", "backend/inbox"},
		{"  /backend/inbox/ ", "backend/inbox"},
		{"//shared//", "shared"},
		{`backend\issues\`, "backend/issues"},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRelPath(tt.in), "NormalizeRelPath(%q)", tt.in)
	}
	assert.Equal(t, "dev_communication/backend/inbox", CommunicationPath(" /backend/inbox/"))
}

func TestRoleGuidance(t *testing.T) {
	root := t.TempDir()

	_, ok := RoleGuidance(root, "perf", "perf")
	assert.False(t, ok, "no guidance directory")

	writeFile(t, root, GuidanceDir+"/QA_PERF_ROLE_GUIDANCE.md", "# guidance\n")
	writeFile(t, root, GuidanceDir+"/DATA_ROLE_GUIDANCE.md", "# guidance\n")

	rel, ok := RoleGuidance(root, "qa-perf", "perf")
	require.True(t, ok)
	assert.Equal(t, "dev_communication/shared/guidance/QA_PERF_ROLE_GUIDANCE.md", rel)

	rel, ok = RoleGuidance(root, "Data Platform", "data")
	require.True(t, ok, "falls back to the id")
	assert.Equal(t, "dev_communication/shared/guidance/DATA_ROLE_GUIDANCE.md", rel)

	_, ok = RoleGuidance(root, "", "ops")
	assert.False(t, ok)
}
