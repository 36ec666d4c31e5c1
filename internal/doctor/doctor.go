package doctor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AttuneLearning/agent-workflow/internal/manifest"
	"github.com/AttuneLearning/agent-workflow/internal/profile"
	"github.com/AttuneLearning/agent-workflow/internal/workflow"
)

// Report counts check outcomes.
type Report struct {
	OK      int
	Missing int
	Failed  int
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool {
	return r.Missing == 0 && r.Failed == 0
}

func (r *Report) ok(w io.Writer, format string, args ...any) {
	r.OK++
	fmt.Fprintf(w, "  [ OK ] "+format+"\n", args...)
}

func (r *Report) miss(w io.Writer, format string, args ...any) {
	r.Missing++
	fmt.Fprintf(w, "  [MISS] "+format+"\n", args...)
}

func (r *Report) fail(w io.Writer, format string, args ...any) {
	r.Failed++
	fmt.Fprintf(w, "  [FAIL] "+format+"\n", args...)
}

// Run checks roots and, when it holds a manifest, target. Results are
// printed to w.
func Run(w io.Writer, roots workflow.Roots, target string) Report {
	var r Report

	fmt.Fprintln(w, "Profile store:")
	store := checkStore(w, &r, roots.ProfileStore())

	if store != nil {
		fmt.Fprintln(w, "Skill sources:")
		checkSkills(w, &r, roots, store)
	}

	manifestPath := filepath.Join(target, workflow.ManifestFile)
	if _, err := os.Stat(manifestPath); err == nil {
		fmt.Fprintln(w, "Target manifest:")
		checkManifest(w, &r, manifestPath)
	}

	return r
}

func checkStore(w io.Writer, r *Report, path string) *profile.Store {
	store, err := profile.Load(path)
	switch {
	case errors.Is(err, profile.ErrConfigurationMissing):
		r.miss(w, "%s does not exist", path)
		return nil
	case err != nil:
		r.fail(w, "%v", err)
		return nil
	}
	r.ok(w, "%s (%d teams)", path, len(store.Teams))
	return store
}

func checkSkills(w io.Writer, r *Report, roots workflow.Roots, store *profile.Store) {
	for _, id := range store.IDs() {
		for _, skill := range store.Teams[id].EnabledSkills {
			src := roots.SkillSource(skill)
			info, err := os.Stat(src)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				r.miss(w, "%s: %s (%s)", id, skill, src)
			case err != nil:
				r.fail(w, "%s: %s: %v", id, skill, err)
			case !info.IsDir():
				r.fail(w, "%s: %s is not a directory (%s)", id, skill, src)
			default:
				r.ok(w, "%s: %s", id, skill)
			}
		}
	}
}

func checkManifest(w io.Writer, r *Report, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.fail(w, "%s: %v", path, err)
		return
	}
	result, err := manifest.Validate(data)
	if err != nil {
		r.fail(w, "%s: %v", path, err)
		return
	}
	if !result.Valid {
		r.fail(w, "%s: %s", path, result.Summary())
		return
	}
	r.ok(w, "%s", path)
}
