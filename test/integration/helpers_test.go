//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // CODEX_HOME, the default install destination parent
	WorkflowRoot string // holds skills/ and teams/profiles.json
	ProjectDir   string // a mock project with dev_communication/
	Target       string // install destination
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so installs never touch the real home directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: filepath.Join(t.TempDir(), "web-app"),
	}
	env.WorkflowRoot = filepath.Join(env.ProjectDir, ".codex-workflow")
	env.Target = filepath.Join(env.HomeDir, "skills", "codex-workflow")

	t.Setenv("HOME", t.TempDir())
	t.Setenv("CODEX_HOME", env.HomeDir)
	t.Setenv("CODEX_TARGET", "")
	t.Setenv("CODEX_PACK_NAME", "")
	t.Setenv("CODEX_WORKFLOW_ROOT", "")

	return env
}

// setupWorkflow writes a profile store and skill sources into the workflow root.
func setupWorkflow(t *testing.T, env *testEnv) {
	t.Helper()

	writeFile(t, filepath.Join(env.WorkflowRoot, "teams", "profiles.json"), `{
  "version": "1.0.0",
  "teams": {
    "backend": {
      "name": "Backend",
      "issue_prefix": "BE",
      "enabled_skills": ["api-skill"],
      "default_paths": {}
    },
    "frontend": {
      "name": "Frontend",
      "alias": "fe",
      "issue_prefix": "FE",
      "enabled_skills": ["ui-skill", "review-skill"],
      "default_paths": {"docs": "docs/frontend"}
    }
  }
}
`)
	for _, skill := range []string{"api-skill", "ui-skill", "review-skill"} {
		writeFile(t, filepath.Join(env.WorkflowRoot, "skills", skill, "SKILL.md"), "# "+skill+"\n")
		writeFile(t, filepath.Join(env.WorkflowRoot, "skills", skill, "references", "guide.md"), "guide\n")
	}
}

// setupTeamDefinitions writes an active-team registry declaring frontend and
// backend, with full definitions for both.
func setupTeamDefinitions(t *testing.T, env *testEnv) {
	t.Helper()

	comm := filepath.Join(env.ProjectDir, "dev_communication")
	writeFile(t, filepath.Join(comm, "shared", "registry.yaml"), `active_teams:
  - id: frontend
    repo: web-app
    name: Web Platform
    definition: frontend/definition.yaml
  - id: backend
    repo: api
    definition: backend/definition.yaml
`)
	writeFile(t, filepath.Join(comm, "frontend", "definition.yaml"), `team:
  name: Frontend Guild
  alias: web
identity:
  issue_prefix: FE2
  inbox: /frontend/inbox/
  issues: frontend/issues
  status: frontend/STATUS.md
sub_teams:
  design-system:
    function: components
  qa:
    name: Quality
    issue_prefix: QA
`)
	writeFile(t, filepath.Join(comm, "backend", "definition.yaml"), `identity:
  inbox: backend/incoming
`)
	writeFile(t, filepath.Join(comm, "shared", "guidance", "DESIGN_SYSTEM_ROLE_GUIDANCE.md"), "# Design System\n")
}

// writeFile creates a file with the given content, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file to exist: %s (%v)", path, err)
	}
	if info.IsDir() {
		t.Fatalf("expected file but got directory: %s", path)
	}
}

// assertNotExists fails the test if path exists.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected %s not to exist", path)
	}
}

// assertContains fails the test if s does not contain substr.
func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, s)
	}
}
