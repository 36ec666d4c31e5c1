package merge

import (
	"strings"

	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/project"
)

// Default path keys written by the identity layers.
const (
	PathInbox           = "inbox"
	PathIssuesQueue     = "issues_queue"
	PathIssuesActive    = "issues_active"
	PathIssuesCompleted = "issues_completed"
	PathStatus          = "status"
	PathOtherTeamInbox  = "other_team_inbox"
)

// TeamMeta applies the definition's team name and alias.
func TeamMeta(p *profile.TeamProfile, in Inputs) {
	if in.Definition == nil {
		return
	}
	setIfPresent(&p.Name, in.Definition.Team.Name)
	setIfPresent(&p.Alias, in.Definition.Team.Alias)
}

// RegistryEntry applies the registry entry's name and alias, which win over
// the definition's.
func RegistryEntry(p *profile.TeamProfile, in Inputs) {
	setIfPresent(&p.Name, in.Entry.Name)
	setIfPresent(&p.Alias, in.Entry.Alias)
}

// Identity applies the issue prefix and rewrites the inbox, issue queue and
// status paths under dev_communication/.
func Identity(p *profile.TeamProfile, in Inputs) {
	if in.Definition == nil {
		return
	}
	id := in.Definition.Identity

	setIfPresent(&p.IssuePrefix, id.IssuePrefix)
	if rel := project.NormalizeRelPath(id.Inbox); rel != "" {
		p.DefaultPaths[PathInbox] = project.CommunicationPath(rel)
	}
	if rel := project.NormalizeRelPath(id.Issues); rel != "" {
		root := project.CommunicationPath(rel)
		p.DefaultPaths[PathIssuesQueue] = root + "/queue"
		p.DefaultPaths[PathIssuesActive] = root + "/active"
		p.DefaultPaths[PathIssuesCompleted] = root + "/completed"
	}
	if rel := project.NormalizeRelPath(id.Status); rel != "" {
		p.DefaultPaths[PathStatus] = project.CommunicationPath(rel)
	}
}

// OtherTeamInbox points other_team_inbox at the first other active team in
// registry order. Its definition's inbox is used when declared, otherwise the
// conventional <id>/inbox. With no other team the key is left alone.
func OtherTeamInbox(p *profile.TeamProfile, in Inputs) {
	others := in.Registry.Others(in.TeamID)
	if len(others) == 0 {
		return
	}
	other := others[0]

	inbox := other.ID + "/inbox"
	if other.Definition != "" {
		def := project.LoadDefinition(in.ProjectRoot, other.Definition)
		if rel := project.NormalizeRelPath(def.Identity.Inbox); rel != "" {
			inbox = rel
		}
	}
	p.DefaultPaths[PathOtherTeamInbox] = project.CommunicationPath(inbox)
}

// SubTeams replaces the sub-team table with the definition's declarations.
// Name defaults to the sub-team id and the issue prefix to the team's. The
// base table is kept when the definition declares no usable sub-team.
func SubTeams(p *profile.TeamProfile, in Inputs) {
	if in.Definition == nil || len(in.Definition.SubTeams) == 0 {
		return
	}

	subs := make(map[string]profile.SubTeam, len(in.Definition.SubTeams))
	for _, decl := range in.Definition.SubTeams {
		st := profile.SubTeam{
			Name:        decl.Name,
			Function:    decl.Function,
			IssuePrefix: decl.IssuePrefix,
		}
		if st.Name == "" {
			st.Name = decl.ID
		}
		if st.IssuePrefix == "" {
			st.IssuePrefix = p.IssuePrefix
		}
		if rel, ok := project.RoleGuidance(in.ProjectRoot, decl.Name, decl.ID); ok {
			st.RoleGuidance = rel
		}
		subs[decl.ID] = st
	}
	p.SubTeams = subs
}

func setIfPresent(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
