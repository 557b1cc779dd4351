// Package manifest handles worm.toml run configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/sandworm/vm"
)

// Manifest represents a worm.toml run configuration.
type Manifest struct {
	Program Program `toml:"program"`
	Run     Run     `toml:"run"`
	Trace   Trace   `toml:"trace"`

	// Dir is the directory containing the worm.toml file (set at load time).
	Dir string `toml:"-"`
}

// Program locates the source text and optional input bytes.
type Program struct {
	Source string `toml:"source"`
	Input  string `toml:"input"`
}

// Run configures the execution engine.
type Run struct {
	Direction string `toml:"direction"`
	StepLimit uint64 `toml:"step-limit"`
}

// Trace configures the execution trace recorder.
type Trace struct {
	Path string `toml:"path"`
}

// Load parses a worm.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "worm.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	m.Dir = dir

	if m.Program.Source == "" {
		return nil, fmt.Errorf("%s: program.source is required", path)
	}
	if m.Run.Direction != "" {
		if _, err := vm.ParseDirection(m.Run.Direction); err != nil {
			return nil, fmt.Errorf("%s: run.direction: %w", path, err)
		}
	}
	return &m, nil
}

// Direction returns the configured initial direction, defaulting to East.
func (m *Manifest) Direction() vm.Direction {
	if m.Run.Direction == "" {
		return vm.East
	}
	d, err := vm.ParseDirection(m.Run.Direction)
	if err != nil {
		// Load validated the name already.
		return vm.East
	}
	return d
}

// SourcePath returns the program source path resolved against Dir.
func (m *Manifest) SourcePath() string {
	return m.resolve(m.Program.Source)
}

// InputPath returns the input file path resolved against Dir, or "" when
// no input file is configured.
func (m *Manifest) InputPath() string {
	if m.Program.Input == "" {
		return ""
	}
	return m.resolve(m.Program.Input)
}

// TracePath returns the trace database path resolved against Dir, or ""
// when tracing is disabled.
func (m *Manifest) TracePath() string {
	if m.Trace.Path == "" {
		return ""
	}
	return m.resolve(m.Trace.Path)
}

func (m *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.Dir, path)
}
