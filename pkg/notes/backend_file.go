// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notes

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nexuscommand/nexusdeck/pkg/logger"
)

const (
	pinsFile = "pins.json"
	tagsFile = "tags.json"
)

// FileBackend persists the two annotation documents as JSON files under a
// directory. Writes are atomic (temp file + rename); a malformed document on
// disk loads as empty rather than failing.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the storage directory if needed
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

// LoadPins implements Backend
func (f *FileBackend) LoadPins() ([]string, error) {
	var pins []string
	if !f.loadDocument(pinsFile, &pins) {
		return nil, nil
	}
	return pins, nil
}

// LoadTags implements Backend
func (f *FileBackend) LoadTags() (map[string]Tag, error) {
	tags := make(map[string]Tag)
	if !f.loadDocument(tagsFile, &tags) {
		return make(map[string]Tag), nil
	}
	return tags, nil
}

// SavePins implements Backend
func (f *FileBackend) SavePins(pins []string) error {
	if pins == nil {
		pins = []string{}
	}
	return f.saveDocument(pinsFile, pins)
}

// SaveTags implements Backend
func (f *FileBackend) SaveTags(tags map[string]Tag) error {
	if tags == nil {
		tags = map[string]Tag{}
	}
	return f.saveDocument(tagsFile, tags)
}

// loadDocument reads one JSON document into v. Missing files and malformed
// content both leave v untouched and report false; annotations degrade to
// empty, they never fail startup.
func (f *FileBackend) loadDocument(name string, v any) bool {
	path := filepath.Join(f.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.DebugCF("notes", "Reading annotations failed", map[string]any{"file": name, "error": err.Error()})
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.DebugCF("notes", "Malformed annotations ignored", map[string]any{"file": name, "error": err.Error()})
		return false
	}
	return true
}

func (f *FileBackend) saveDocument(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(f.dir, name+"-*.tmp")
	if err != nil {
		return err
	}

	tmpPath := tmpFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, filepath.Join(f.dir, name)); err != nil {
		return err
	}
	cleanup = false
	return nil
}
