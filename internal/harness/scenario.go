// Package harness runs inspector scenarios: load a fixture document, select
// nodes, aggregate, apply property edits through the commit pipeline, and
// compare the resulting snapshot trace against golden files.
package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario describes one end-to-end inspector exercise.
type Scenario struct {
	// Name uniquely identifies the scenario; the golden file is stored at
	// testdata/golden/{Name}.golden.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description"`

	// Fixture is the path to a fixture document, relative to the scenario
	// file. Exactly one of Fixture and Document must be set.
	Fixture string `yaml:"fixture,omitempty"`

	// Document is an inline fixture document.
	Document string `yaml:"document,omitempty"`

	// Selection overrides the fixture's selection when non-empty.
	Selection []string `yaml:"selection,omitempty"`

	// Edits are applied in order; the trace records a snapshot after each.
	Edits []Edit `yaml:"edits"`

	// Undo, when true, undoes every edit after the last snapshot and
	// records a final snapshot, demonstrating one-undo-step-per-edit.
	Undo bool `yaml:"undo,omitempty"`

	// dir is the directory the scenario was loaded from, for resolving
	// Fixture paths.
	dir string
}

// Edit is one property edit.
//
// Value decodes from plain YAML scalars: booleans and numbers map to their
// payload variants; strings starting with "#" are color literals; the
// special strings "$mixed" and "$revert" are the sentinels; "$var:NAME"
// binds the document variable NAME; anything else is text.
type Edit struct {
	Property string `yaml:"property"`
	Value    any    `yaml:"value"`
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if (s.Fixture == "") == (s.Document == "") {
		return nil, fmt.Errorf("scenario %s: exactly one of fixture and document must be set", path)
	}
	s.dir = filepath.Dir(path)
	return &s, nil
}

// fixtureBytes returns the fixture document source.
func (s *Scenario) fixtureBytes() ([]byte, error) {
	if s.Document != "" {
		return []byte(s.Document), nil
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, s.Fixture))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return raw, nil
}
