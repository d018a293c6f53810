package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvNexusDeckConfig = "NEXUSDECK_CONFIG"
	EnvNexusDeckHome   = "NEXUSDECK_HOME"
)

type RuntimePaths struct {
	HomeDir    string
	ConfigPath string
	NotesDir   string
	LogPath    string
}

// ResolveRuntimePaths determines where NexusDeck keeps its files.
// NEXUSDECK_CONFIG wins over NEXUSDECK_HOME, which wins over ~/.nexusdeck.
func ResolveRuntimePaths() RuntimePaths {
	if configPath := expandHome(strings.TrimSpace(os.Getenv(EnvNexusDeckConfig))); configPath != "" {
		return buildRuntimePaths(filepath.Dir(configPath), configPath)
	}

	homeDir := expandHome(strings.TrimSpace(os.Getenv(EnvNexusDeckHome)))
	if homeDir == "" {
		homeDir = defaultNexusDeckHome()
	}

	return buildRuntimePaths(homeDir, filepath.Join(homeDir, "config.json"))
}

func defaultNexusDeckHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".nexusdeck"
	}
	return filepath.Join(home, ".nexusdeck")
}

func buildRuntimePaths(homeDir, configPath string) RuntimePaths {
	return RuntimePaths{
		HomeDir:    homeDir,
		ConfigPath: configPath,
		NotesDir:   filepath.Join(homeDir, "notes"),
		LogPath:    filepath.Join(homeDir, "nexusdeck.log"),
	}
}
