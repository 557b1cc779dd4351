package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/sandworm/vm"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[program]
source = "examples/echo.worm"
input = "input.bin"

[run]
direction = "south"
step-limit = 5000

[trace]
path = "run.trace.db"
`
	if err := os.WriteFile(filepath.Join(dir, "worm.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.SourcePath() != filepath.Join(dir, "examples", "echo.worm") {
		t.Errorf("source path = %q", m.SourcePath())
	}
	if m.InputPath() != filepath.Join(dir, "input.bin") {
		t.Errorf("input path = %q", m.InputPath())
	}
	if m.TracePath() != filepath.Join(dir, "run.trace.db") {
		t.Errorf("trace path = %q", m.TracePath())
	}
	if m.Direction() != vm.South {
		t.Errorf("direction = %s, want south", m.Direction())
	}
	if m.Run.StepLimit != 5000 {
		t.Errorf("step limit = %d, want 5000", m.Run.StepLimit)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[program]
source = "prog.worm"
`
	if err := os.WriteFile(filepath.Join(dir, "worm.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Direction() != vm.East {
		t.Errorf("default direction = %s, want east", m.Direction())
	}
	if m.InputPath() != "" || m.TracePath() != "" {
		t.Error("input and trace should default to empty")
	}
}

func TestLoadManifestMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "worm.toml"), []byte("[run]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load without program.source should fail")
	}
}

func TestLoadManifestBadDirection(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[program]
source = "prog.worm"

[run]
direction = "sideways"
`
	if err := os.WriteFile(filepath.Join(dir, "worm.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load with unknown direction should fail")
	}
}
