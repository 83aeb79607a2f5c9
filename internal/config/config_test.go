package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.AutoConfirm {
		t.Error("AutoConfirm should default to false")
	}
	if !cfg.General.History {
		t.Error("History should default to true")
	}
	if cfg.General.MaxIterations != 0 {
		t.Errorf("MaxIterations = %d, want 0 (built-in cap)", cfg.General.MaxIterations)
	}
	if cfg.Policy.Conflict != "prompt" {
		t.Errorf("Policy.Conflict = %q, want prompt", cfg.Policy.Conflict)
	}
	if cfg.Policy.Prefer != "first" {
		t.Errorf("Policy.Prefer = %q, want first", cfg.Policy.Prefer)
	}
	if !cfg.Output.Color {
		t.Error("Color should default to true")
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Policy.Conflict != "prompt" {
		t.Errorf("Policy.Conflict = %q, want the default", cfg.Policy.Conflict)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[general]
auto_confirm = true
max_iterations = 5

[policy]
conflict = "yes"
prefer = "installed"

[output]
color = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if !cfg.General.AutoConfirm {
		t.Error("AutoConfirm not loaded")
	}
	if cfg.General.MaxIterations != 5 {
		t.Errorf("MaxIterations = %d, want 5", cfg.General.MaxIterations)
	}
	if cfg.Policy.Conflict != "yes" {
		t.Errorf("Policy.Conflict = %q, want yes", cfg.Policy.Conflict)
	}
	if cfg.Policy.Prefer != "installed" {
		t.Errorf("Policy.Prefer = %q, want installed", cfg.Policy.Prefer)
	}
	if cfg.Output.Color {
		t.Error("Color should be false")
	}
	// Settings the file leaves out keep their defaults.
	if !cfg.General.History {
		t.Error("History should keep its default when absent from the file")
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is not toml = ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom should fail on invalid TOML")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Policy.Conflict = "no"
	cfg.Policy.Prefer = "package=exim"
	cfg.General.MaxIterations = 7

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Policy.Conflict != "no" || loaded.Policy.Prefer != "package=exim" {
		t.Errorf("policy round trip got %+v", loaded.Policy)
	}
	if loaded.General.MaxIterations != 7 {
		t.Errorf("MaxIterations = %d, want 7", loaded.General.MaxIterations)
	}
}

func TestShouldUseColor(t *testing.T) {
	cfg := Default()

	t.Setenv("NO_COLOR", "")
	if !cfg.ShouldUseColor() {
		t.Error("color should be enabled by default")
	}

	t.Setenv("NO_COLOR", "1")
	if cfg.ShouldUseColor() {
		t.Error("NO_COLOR must disable color")
	}
}

func TestPathsRespectXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	if got, want := ConfigPath(), filepath.Join(dir, "pacplan", "config.toml"); got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
	if got, want := HistoryPath(), filepath.Join(dir, "pacplan", "history.db"); got != want {
		t.Errorf("HistoryPath = %q, want %q", got, want)
	}
}
