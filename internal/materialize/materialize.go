package materialize

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/AttuneLearning/agent-workflow/internal/manifest"
	"github.com/AttuneLearning/agent-workflow/internal/platform"
	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/workflow"
)

// MissingSkillError is returned when an enabled skill has no source
// directory in the workflow root.
type MissingSkillError struct {
	Skill string
	Path  string
}

func (e *MissingSkillError) Error() string {
	return fmt.Sprintf("skill folder not found for %q: %s", e.Skill, e.Path)
}

// CopySkills copies each skill's directory from the workflow root into
// <target>/skills, merging into any existing tree. It stops at the first
// skill whose source is missing.
func CopySkills(fsys platform.FS, roots workflow.Roots, targetRoot string, skills []string) error {
	dst := filepath.Join(targetRoot, workflow.SkillsDir)
	if err := fsys.MkdirAll(dst); err != nil {
		return err
	}
	for _, skill := range skills {
		src := roots.SkillSource(skill)
		if !platform.IsDir(fsys, src) {
			return &MissingSkillError{Skill: skill, Path: src}
		}
		if err := fsys.CopyTree(src, filepath.Join(dst, skill)); err != nil {
			return err
		}
	}
	return nil
}

// CopyTeamMetadata copies the workflow's teams directory into the target.
func CopyTeamMetadata(fsys platform.FS, roots workflow.Roots, targetRoot string) error {
	return fsys.CopyTree(roots.TeamsSource(), filepath.Join(targetRoot, workflow.TeamsDir))
}

// WriteManifest writes m as JSON to path.
func WriteManifest(fsys platform.FS, path string, m *manifest.Manifest) error {
	data, err := manifest.Marshal(m)
	if err != nil {
		return err
	}
	return fsys.WriteFile(path, data)
}

//go:embed templates/team_profile.md.tmpl
var summaryTemplate string

var summary = template.Must(template.New("team_profile").Parse(summaryTemplate))

type pathEntry struct {
	Key, Value string
}

type subTeamEntry struct {
	ID string
	profile.SubTeam
}

type summaryData struct {
	TeamID        string
	Name          string
	Alias         string
	IssuePrefix   string
	EnabledSkills []string
	Paths         []pathEntry
	SubTeams      []subTeamEntry
}

// RenderProfileSummary renders the TEAM_PROFILE.md body for p.
func RenderProfileSummary(teamID string, p profile.TeamProfile) ([]byte, error) {
	d := summaryData{
		TeamID:        teamID,
		Name:          p.Name,
		Alias:         p.Alias,
		IssuePrefix:   p.IssuePrefix,
		EnabledSkills: p.EnabledSkills,
	}
	if d.Name == "" {
		d.Name = teamID
	}
	for _, k := range p.PathKeys() {
		d.Paths = append(d.Paths, pathEntry{Key: k, Value: p.DefaultPaths[k]})
	}
	for _, id := range p.SubTeamIDs() {
		d.SubTeams = append(d.SubTeams, subTeamEntry{ID: id, SubTeam: p.SubTeams[id]})
	}

	var buf bytes.Buffer
	if err := summary.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("rendering team profile summary: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteProfileSummary writes the TEAM_PROFILE.md summary to path.
func WriteProfileSummary(fsys platform.FS, path, teamID string, p profile.TeamProfile) error {
	body, err := RenderProfileSummary(teamID, p)
	if err != nil {
		return err
	}
	return fsys.WriteFile(path, body)
}
