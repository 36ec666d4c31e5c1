package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AttuneLearning/agent-workflow/internal/schema"
)

// ErrInvalid is wrapped by Parse when a manifest fails schema validation.
var ErrInvalid = errors.New("invalid install manifest")

// Marshal encodes m as two-space indented JSON with a trailing newline.
func Marshal(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks data against the manifest schema.
func Validate(data []byte) (*schema.Result, error) {
	return schema.Validate(schema.Manifest, data)
}

// Parse validates and decodes a manifest.
func Parse(data []byte) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, result.Summary())
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	m.TeamProfile.ID = m.TeamID
	if m.TeamProfile.DefaultPaths == nil {
		m.TeamProfile.DefaultPaths = map[string]string{}
	}
	return &m, nil
}

// Read loads the manifest at path.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
