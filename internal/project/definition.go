package project

import (
	"os"
	"sort"
)

// TeamMeta is the definition's team block.
type TeamMeta struct {
	Name  string
	Alias string
}

// Identity is the definition's identity block. Paths are as written in the
// file, relative to dev_communication/.
type Identity struct {
	IssuePrefix string
	Inbox       string
	Issues      string
	Status      string
}

// SubTeamDecl is one sub_teams entry. Name and IssuePrefix are empty when the
// file does not set them.
type SubTeamDecl struct {
	ID          string
	Name        string
	Function    string
	IssuePrefix string
}

// Definition is a parsed team definition file.
type Definition struct {
	Team     TeamMeta
	Identity Identity
	SubTeams []SubTeamDecl // sorted by ID

	keys int
}

// IsEmpty reports whether the definition file was absent, malformed, or an
// empty mapping.
func (d *Definition) IsEmpty() bool {
	return d == nil || d.keys == 0
}

// LoadDefinition reads a team definition at dev_communication/<rel>. It
// returns an empty definition when rel is blank or the file is absent or
// malformed.
func LoadDefinition(projectRoot, rel string) *Definition {
	def := &Definition{}
	if NormalizeRelPath(rel) == "" {
		return def
	}
	doc := readMapping(abs(projectRoot, CommunicationPath(rel)))
	if doc == nil {
		return def
	}
	def.keys = len(doc)

	if team := asMapping(doc["team"]); team != nil {
		def.Team = TeamMeta{
			Name:  scalarString(team["name"]),
			Alias: scalarString(team["alias"]),
		}
	}

	if id := asMapping(doc["identity"]); id != nil {
		def.Identity = Identity{
			IssuePrefix: stringOnly(id["issue_prefix"]),
			Inbox:       stringOnly(id["inbox"]),
			Issues:      stringOnly(id["issues"]),
			Status:      stringOnly(id["status"]),
		}
	}

	if subs := asMapping(doc["sub_teams"]); subs != nil {
		for subID, payload := range subs {
			m := asMapping(payload)
			if m == nil {
				continue
			}
			def.SubTeams = append(def.SubTeams, SubTeamDecl{
				ID:          subID,
				Name:        scalarString(m["name"]),
				Function:    scalarString(m["function"]),
				IssuePrefix: scalarString(m["issue_prefix"]),
			})
		}
		sort.Slice(def.SubTeams, func(i, j int) bool {
			return def.SubTeams[i].ID < def.SubTeams[j].ID
		})
	}

	return def
}

// RoleGuidance returns the project-relative path of a sub-team's role guidance
// file, trying name first and then id. ok is false when neither exists.
func RoleGuidance(projectRoot, name, id string) (rel string, ok bool) {
	if info, err := os.Stat(abs(projectRoot, GuidanceDir)); err != nil || !info.IsDir() {
		return "", false
	}
	for _, candidate := range []string{name, id} {
		if candidate == "" {
			continue
		}
		rel := GuidanceDir + "/" + GuidanceCandidate(candidate)
		if _, err := os.Stat(abs(projectRoot, rel)); err == nil {
			return rel, true
		}
	}
	return "", false
}
