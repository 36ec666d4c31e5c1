package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTeams = map[string]bool{"backend": true, "frontend": true, "data-warehousing": true}

// newProject creates a project directory with a fixed base name so registry
// repo matching is deterministic.
func newProject(t *testing.T, name string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(root, 0755))
	return root
}

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDetectFromRegistry(t *testing.T) {
	root := newProject(t, "warehouse")
	write(t, root, "dev_communication/shared/registry.yaml", `
active_teams:
  - {id: backend, repo: api}
  - {id: data-warehousing, repo: warehouse}
`)
	// Registry wins over heuristics.
	write(t, root, "package.json", `{"name": "backend-api"}`)

	res := Detect(root, allTeams)
	assert.Equal(t, Result{TeamID: "data-warehousing", Reason: ReasonRegistry}, res)
	assert.True(t, res.Found())
}

func TestDetectAmbiguousRegistry(t *testing.T) {
	root := newProject(t, "monorepo")
	write(t, root, "dev_communication/shared/registry.yaml", `
active_teams:
  - {id: backend, repo: monorepo}
  - {id: frontend, repo: monorepo}
`)
	// Heuristics must not break the tie.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "routes"), 0755))

	res := Detect(root, allTeams)
	assert.False(t, res.Found())
	assert.Equal(t, ReasonAmbiguous, res.Reason)
	assert.Equal(t, []string{"backend", "frontend"}, res.Candidates)
}

func TestDetectRegistryIgnoresUnknownIDs(t *testing.T) {
	root := newProject(t, "svc")
	write(t, root, "dev_communication/shared/registry.yaml", `
active_teams:
  - {id: ghost, repo: svc}
  - {id: backend, repo: svc}
`)
	res := Detect(root, allTeams)
	assert.Equal(t, "backend", res.TeamID)
	assert.Equal(t, ReasonRegistry, res.Reason)
}

func TestDetectFromPackageJSON(t *testing.T) {
	tests := []struct {
		name  string
		pkg   string
		known map[string]bool
		want  string
	}{
		{"api name", `{"name": "Billing-API"}`, allTeams, "backend"},
		{"backend name", `{"name": "orders-backend"}`, allTeams, "backend"},
		{"ui name", `{"name": "@acme/ui-kit"}`, allTeams, "frontend"},
		{"frontend name", `{"name": "shop-frontend"}`, allTeams, "frontend"},
		{"backend unknown", `{"name": "billing-api"}`, map[string]bool{"frontend": true}, ""},
		{"no match", `{"name": "docs"}`, allTeams, ""},
		{"name not string", `{"name": 12}`, allTeams, ""},
		{"malformed", `{"name": `, allTeams, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newProject(t, "proj")
			write(t, root, "package.json", tt.pkg)
			assert.Equal(t, tt.want, Detect(root, tt.known).TeamID)
		})
	}
}

func TestDetectFromLayout(t *testing.T) {
	root := newProject(t, "proj")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "app"), 0755))
	res := Detect(root, allTeams)
	assert.Equal(t, Result{TeamID: "frontend", Reason: ReasonDirectory}, res)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "routes"), 0755))
	assert.Equal(t, "backend", Detect(root, allTeams).TeamID)

	assert.Equal(t, "frontend", Detect(root, map[string]bool{"frontend": true}).TeamID)
}

func TestDetectNothing(t *testing.T) {
	res := Detect(newProject(t, "empty"), allTeams)
	assert.Equal(t, Result{Reason: ReasonNone}, res)
	assert.False(t, res.Found())
}
