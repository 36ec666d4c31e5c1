package materialize

import (
	"path/filepath"

	"github.com/AttuneLearning/agent-workflow/internal/manifest"
	"github.com/AttuneLearning/agent-workflow/internal/platform"
	"github.com/AttuneLearning/agent-workflow/internal/workflow"
)

// Sink is one place the install manifest is written to.
type Sink struct {
	Name string
	Path string
}

// Sink names.
const (
	SinkActiveTeam  = "active-team"
	SinkManifest    = "install-manifest"
	SinkLocalConfig = "local-config"
)

// Sinks returns the manifest destinations for an install into targetRoot.
// The workflow-local copy is included only when localConfig is set.
func Sinks(targetRoot string, roots workflow.Roots, localConfig bool) []Sink {
	sinks := []Sink{
		{Name: SinkActiveTeam, Path: filepath.Join(targetRoot, workflow.ConfigDir, workflow.ActiveTeamFile)},
		{Name: SinkManifest, Path: filepath.Join(targetRoot, workflow.ManifestFile)},
	}
	if localConfig {
		sinks = append(sinks, Sink{Name: SinkLocalConfig, Path: roots.LocalConfig()})
	}
	return sinks
}

// Publish writes m to every sink.
func Publish(fsys platform.FS, sinks []Sink, m *manifest.Manifest) error {
	for _, s := range sinks {
		if err := WriteManifest(fsys, s.Path, m); err != nil {
			return err
		}
	}
	return nil
}
