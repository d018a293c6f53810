package config

import (
	"path/filepath"
	"testing"
)

func TestResolveRuntimePaths_Default(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvNexusDeckConfig, "")
	t.Setenv(EnvNexusDeckHome, "")

	paths := ResolveRuntimePaths()
	wantHome := filepath.Join(home, ".nexusdeck")

	if paths.HomeDir != wantHome {
		t.Errorf("HomeDir = %q, want %q", paths.HomeDir, wantHome)
	}
	if paths.ConfigPath != filepath.Join(wantHome, "config.json") {
		t.Errorf("ConfigPath = %q, want %q", paths.ConfigPath, filepath.Join(wantHome, "config.json"))
	}
	if paths.NotesDir != filepath.Join(wantHome, "notes") {
		t.Errorf("NotesDir = %q, want %q", paths.NotesDir, filepath.Join(wantHome, "notes"))
	}
}

func TestResolveRuntimePaths_HomeOverride(t *testing.T) {
	homeOverride := filepath.Join(t.TempDir(), "deck-home")
	t.Setenv(EnvNexusDeckConfig, "")
	t.Setenv(EnvNexusDeckHome, homeOverride)

	paths := ResolveRuntimePaths()

	if paths.HomeDir != homeOverride {
		t.Errorf("HomeDir = %q, want %q", paths.HomeDir, homeOverride)
	}
	if paths.ConfigPath != filepath.Join(homeOverride, "config.json") {
		t.Errorf("ConfigPath = %q, want %q", paths.ConfigPath, filepath.Join(homeOverride, "config.json"))
	}
}

func TestResolveRuntimePaths_ConfigOverrideTakesPrecedence(t *testing.T) {
	homeOverride := filepath.Join(t.TempDir(), "deck-home")
	configDir := filepath.Join(t.TempDir(), "custom-config-dir")
	configPath := filepath.Join(configDir, "config.json")

	t.Setenv(EnvNexusDeckHome, homeOverride)
	t.Setenv(EnvNexusDeckConfig, configPath)

	paths := ResolveRuntimePaths()

	if paths.ConfigPath != configPath {
		t.Errorf("ConfigPath = %q, want %q", paths.ConfigPath, configPath)
	}
	if paths.HomeDir != configDir {
		t.Errorf("HomeDir = %q, want %q", paths.HomeDir, configDir)
	}
}
