package install

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTeam is returned when no team was given and none could be detected.
var ErrNoTeam = errors.New("--team is required unless --list-teams is used (or pass --auto-team)")

// UnknownTeamError reports a team id missing from the profile store.
type UnknownTeamError struct {
	TeamID    string
	Available []string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team: %s (available: %s)", e.TeamID, strings.Join(e.Available, ", "))
}

// TargetConflictError reports an existing target when replacing it was not
// allowed.
type TargetConflictError struct {
	Path string
}

func (e *TargetConflictError) Error() string {
	return "target exists: " + e.Path
}
