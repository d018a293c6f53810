// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package internal

import (
	"os"
	"path/filepath"

	"github.com/nexuscommand/nexusdeck/pkg/config"
	"github.com/nexuscommand/nexusdeck/pkg/notes"
)

const Logo = "◆"

// Paths returns the resolved runtime file locations
func Paths() config.RuntimePaths {
	return config.ResolveRuntimePaths()
}

// LoadConfig loads the config from its resolved location, honoring the
// NEXUSDECK_CONFIG and NEXUSDECK_HOME overrides.
func LoadConfig() (*config.Config, error) {
	return config.LoadConfig(Paths().ConfigPath)
}

// OpenNotesBackend opens the configured annotations backend. Unknown names
// fall back to file storage so a typo in the config never loses annotations
// to the memory backend.
func OpenNotesBackend(cfg *config.Config, paths config.RuntimePaths) (notes.Backend, error) {
	switch cfg.Notes.Backend {
	case "sqlite":
		if err := os.MkdirAll(paths.NotesDir, 0o755); err != nil {
			return nil, err
		}
		return notes.NewSQLiteBackend(filepath.Join(paths.NotesDir, "notes.db"))
	case "memory":
		return notes.NewMemoryBackend(), nil
	default:
		return notes.NewFileBackend(paths.NotesDir)
	}
}
