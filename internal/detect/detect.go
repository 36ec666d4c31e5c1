package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/AttuneLearning/agent-workflow/internal/project"
)

// Reason records which rule produced a Result.
type Reason string

const (
	ReasonRegistry    Reason = "registry"
	ReasonPackageJSON Reason = "package.json"
	ReasonDirectory   Reason = "directory"
	ReasonAmbiguous   Reason = "ambiguous"
	ReasonNone        Reason = "none"
)

// Well-known team ids the heuristics can produce.
const (
	TeamBackend  = "backend"
	TeamFrontend = "frontend"
)

// Result is the outcome of detection. TeamID is empty when nothing matched.
type Result struct {
	TeamID     string
	Reason     Reason
	Candidates []string // registry ids that tied, when Reason is ReasonAmbiguous
}

// Found reports whether a team was detected.
func (r Result) Found() bool { return r.TeamID != "" }

// Detect resolves the team for projectRoot among the known team ids.
//
// Rules, first match wins:
//  1. exactly one registry entry whose repo equals the project directory
//     name and whose id is known (several such entries: no detection)
//  2. package.json name mentioning api/backend or ui/frontend
//  3. src/routes (backend) or src/app (frontend)
func Detect(projectRoot string, known map[string]bool) Result {
	isKnown := func(id string) bool { return known[id] }

	reg := project.LoadRegistry(projectRoot)
	matches := reg.MatchRepo(filepath.Base(filepath.Clean(projectRoot)), isKnown)
	switch {
	case len(matches) == 1:
		return Result{TeamID: matches[0].ID, Reason: ReasonRegistry}
	case len(matches) > 1:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return Result{Reason: ReasonAmbiguous, Candidates: ids}
	}

	if id := fromPackageJSON(projectRoot, isKnown); id != "" {
		return Result{TeamID: id, Reason: ReasonPackageJSON}
	}

	if id := fromLayout(projectRoot, isKnown); id != "" {
		return Result{TeamID: id, Reason: ReasonDirectory}
	}

	return Result{Reason: ReasonNone}
}

// fromPackageJSON inspects the name field of package.json. Unreadable or
// malformed files are ignored.
func fromPackageJSON(projectRoot string, isKnown func(string) bool) string {
	data, err := os.ReadFile(filepath.Join(projectRoot, "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Name any `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	name, _ := pkg.Name.(string)
	name = strings.ToLower(name)

	if (strings.Contains(name, "api") || strings.Contains(name, "backend")) && isKnown(TeamBackend) {
		return TeamBackend
	}
	if (strings.Contains(name, "ui") || strings.Contains(name, "frontend")) && isKnown(TeamFrontend) {
		return TeamFrontend
	}
	return ""
}

func fromLayout(projectRoot string, isKnown func(string) bool) string {
	if exists(filepath.Join(projectRoot, "src", "routes")) && isKnown(TeamBackend) {
		return TeamBackend
	}
	if exists(filepath.Join(projectRoot, "src", "app")) && isKnown(TeamFrontend) {
		return TeamFrontend
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
