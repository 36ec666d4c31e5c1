package merge

import (
	"github.com/AttuneLearning/agent-workflow/internal/logger"
	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/project"
)

// Source labels where a resolved profile came from. It is recorded verbatim
// in the install manifest.
type Source string

const (
	SourceStatic Source = "profiles.json"
	SourceRepo   Source = "dev_communication/shared/registry.yaml + team definition"
)

// Inputs is the project data available to every layer.
type Inputs struct {
	ProjectRoot string
	TeamID      string
	Registry    *project.Registry
	Entry       project.RegistryEntry
	Definition  *project.Definition
}

// Layer applies one override source to p. Layers must leave p untouched when
// their source is absent.
type Layer func(p *profile.TeamProfile, in Inputs)

// Layers is the override sequence, lowest precedence first.
var Layers = []Layer{
	TeamMeta,
	RegistryEntry,
	Identity,
	OtherTeamInbox,
	SubTeams,
}

// Merger resolves profiles for one project.
type Merger struct {
	log    *logger.Logger
	layers []Layer
}

// Option configures a Merger.
type Option func(*Merger)

// WithLogger sets the logger used to report skipped sources.
func WithLogger(l *logger.Logger) Option {
	return func(m *Merger) { m.log = l }
}

// WithLayers replaces the layer sequence.
func WithLayers(layers ...Layer) Option {
	return func(m *Merger) { m.layers = layers }
}

// New returns a Merger using the default layers.
func New(opts ...Option) *Merger {
	m := &Merger{layers: Layers}
	for _, opt := range opts {
		opt(m)
	}
	m.log = logger.OrNop(m.log)
	return m
}

// Merge resolves teamID's profile in projectRoot using the default Merger.
func Merge(projectRoot, teamID string, base profile.TeamProfile) (profile.TeamProfile, Source) {
	return New().Merge(projectRoot, teamID, base)
}

// Merge resolves teamID's profile. base is never modified. When the project
// has no registry entry or usable definition for the team, base is returned
// as is with SourceStatic.
func (m *Merger) Merge(projectRoot, teamID string, base profile.TeamProfile) (profile.TeamProfile, Source) {
	log := m.log.With("team", teamID)

	reg := project.LoadRegistry(projectRoot)
	entry, ok := reg.Find(teamID)
	if !ok {
		log.Debug("no registry entry, using static profile", "registry", project.RegistryFile)
		return base, SourceStatic
	}

	def := project.LoadDefinition(projectRoot, entry.Definition)
	if def.IsEmpty() {
		log.Debug("team definition missing or empty, using static profile", "definition", entry.Definition)
		return base, SourceStatic
	}

	in := Inputs{
		ProjectRoot: projectRoot,
		TeamID:      teamID,
		Registry:    reg,
		Entry:       entry,
		Definition:  def,
	}
	merged := base.Clone()
	for _, layer := range m.layers {
		layer(&merged, in)
	}
	log.Debug("applied repository team definition",
		"definition", project.CommunicationPath(entry.Definition),
		"sub_teams", len(merged.SubTeams))
	return merged, SourceRepo
}
