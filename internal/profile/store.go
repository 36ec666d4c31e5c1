package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/AttuneLearning/agent-workflow/internal/schema"
	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the store format versions this installer reads.
// A store without a version field is treated as 1.0.0.
const SupportedVersions = "^1"

// ErrConfigurationMissing is returned when the profile store does not exist.
var ErrConfigurationMissing = errors.New("team profile store not found")

// ParseError reports a store that exists but cannot be used.
type ParseError struct {
	Path   string
	Issues []string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "invalid team profile store " + e.Path
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.Issues) > 0 {
		msg += ": " + strings.Join(e.Issues, "; ")
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and validates the profile store at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigurationMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading team profile store %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse validates data against the store schema and decodes it. path is only
// used in error messages.
func Parse(path string, data []byte) (*Store, error) {
	result, err := schema.Validate(schema.Profiles, data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if !result.Valid {
		issues := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			issues = append(issues, issue.String())
		}
		return nil, &ParseError{Path: path, Issues: issues}
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if err := checkVersion(store.Version); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	for id, p := range store.Teams {
		p.ID = id
		if p.DefaultPaths == nil {
			p.DefaultPaths = map[string]string{}
		}
		store.Teams[id] = p
	}
	return &store, nil
}

func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing store version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported versions: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("store version %s is not supported (want %s)", version, SupportedVersions)
	}
	return nil
}
