package profile

import (
	"maps"
	"slices"
	"sort"
)

// StoreFile is the store location relative to the workflow root.
const StoreFile = "teams/profiles.json"

// SubTeam is one sub-team record attached to a team profile.
type SubTeam struct {
	Name         string `json:"name"`
	Function     string `json:"function"`
	IssuePrefix  string `json:"issue_prefix"`
	RoleGuidance string `json:"role_guidance,omitempty"`
}

// TeamProfile is a team's configuration. ID is the store key and is not part
// of the serialized record.
type TeamProfile struct {
	ID            string             `json:"-"`
	Name          string             `json:"name,omitempty"`
	Alias         string             `json:"alias,omitempty"`
	IssuePrefix   string             `json:"issue_prefix,omitempty"`
	EnabledSkills []string           `json:"enabled_skills"`
	DefaultPaths  map[string]string  `json:"default_paths"`
	SubTeams      map[string]SubTeam `json:"sub_teams,omitempty"`
}

// Clone returns a deep copy of p.
func (p TeamProfile) Clone() TeamProfile {
	c := p
	c.EnabledSkills = slices.Clone(p.EnabledSkills)
	c.DefaultPaths = maps.Clone(p.DefaultPaths)
	if c.DefaultPaths == nil {
		c.DefaultPaths = map[string]string{}
	}
	c.SubTeams = maps.Clone(p.SubTeams)
	return c
}

// DisplayName returns Name, or the team id when no name is set.
func (p TeamProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// PathKeys returns the default path keys in sorted order.
func (p TeamProfile) PathKeys() []string {
	return slices.Sorted(maps.Keys(p.DefaultPaths))
}

// SubTeamIDs returns the sub-team ids in sorted order.
func (p TeamProfile) SubTeamIDs() []string {
	return slices.Sorted(maps.Keys(p.SubTeams))
}

// Store is the parsed profile store.
type Store struct {
	Version string                 `json:"version,omitempty"`
	Teams   map[string]TeamProfile `json:"teams"`
}

// IDs returns every team id in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.Teams))
	for id := range s.Teams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns a working copy of the team's profile.
func (s *Store) Lookup(id string) (TeamProfile, bool) {
	p, ok := s.Teams[id]
	if !ok {
		return TeamProfile{}, false
	}
	return p.Clone(), true
}

// Known returns the set of team ids, for detection.
func (s *Store) Known() map[string]bool {
	known := make(map[string]bool, len(s.Teams))
	for id := range s.Teams {
		known[id] = true
	}
	return known
}
