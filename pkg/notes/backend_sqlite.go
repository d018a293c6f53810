// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notes

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/nexuscommand/nexusdeck/pkg/logger"
)

// SQLiteBackend stores annotations in a local database file. Each save
// replaces the corresponding document wholesale inside a transaction, so the
// rows always mirror the in-memory state.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the annotations database
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotations db: %w", err)
	}
	b := &SQLiteBackend{db: db}
	if err := b.init(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

func (b *SQLiteBackend) init() error {
	_, err := b.db.Exec(`CREATE TABLE IF NOT EXISTS pins (msg_id TEXT PRIMARY KEY, seq INTEGER NOT NULL);`)
	if err != nil {
		return fmt.Errorf("failed to create pins table: %w", err)
	}
	_, err = b.db.Exec(`CREATE TABLE IF NOT EXISTS tags (msg_id TEXT PRIMARY KEY, tag TEXT NOT NULL);`)
	if err != nil {
		return fmt.Errorf("failed to create tags table: %w", err)
	}
	return nil
}

// Close releases the database handle
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// LoadPins implements Backend
func (b *SQLiteBackend) LoadPins() ([]string, error) {
	rows, err := b.db.Query("SELECT msg_id FROM pins ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pins []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		pins = append(pins, id)
	}
	return pins, rows.Err()
}

// LoadTags implements Backend
func (b *SQLiteBackend) LoadTags() (map[string]Tag, error) {
	rows, err := b.db.Query("SELECT msg_id, tag FROM tags")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make(map[string]Tag)
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		tag, err := ParseTag(raw)
		if err != nil {
			// a row written by a newer build; skip it
			logger.DebugCF("notes", "Skipping unknown tag", map[string]any{"tag": raw, "message_id": id})
			continue
		}
		tags[id] = tag
	}
	return tags, rows.Err()
}

// SavePins implements Backend
func (b *SQLiteBackend) SavePins(pins []string) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM pins"); err != nil {
		return err
	}
	for i, id := range pins {
		if _, err := tx.Exec("INSERT INTO pins (msg_id, seq) VALUES (?, ?)", id, i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveTags implements Backend
func (b *SQLiteBackend) SaveTags(tags map[string]Tag) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tags"); err != nil {
		return err
	}
	for id, tag := range tags {
		if _, err := tx.Exec("INSERT INTO tags (msg_id, tag) VALUES (?, ?)", id, tag.String()); err != nil {
			return err
		}
	}
	return tx.Commit()
}
