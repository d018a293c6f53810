package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
)

type UIConfig struct {
	Theme            string `json:"theme" label:"Theme" env:"NEXUSDECK_UI_THEME"`
	TimelineExpanded bool   `json:"timeline_expanded" label:"Timeline Expanded" env:"NEXUSDECK_UI_TIMELINE_EXPANDED"`
	ShowAgentBadges  bool   `json:"show_agent_badges" label:"Show Agent Badges" env:"NEXUSDECK_UI_SHOW_AGENT_BADGES"`
}

type ExportConfig struct {
	OutputDir    string `json:"output_dir" label:"Output Directory" env:"NEXUSDECK_EXPORT_OUTPUT_DIR"`
	PageSize     string `json:"page_size" label:"PDF Page Size" env:"NEXUSDECK_EXPORT_PAGE_SIZE"`
	Confidential bool   `json:"confidential" label:"Confidential Footer" env:"NEXUSDECK_EXPORT_CONFIDENTIAL"`
}

type NotesConfig struct {
	Backend string `json:"backend" label:"Notes Backend" env:"NEXUSDECK_NOTES_BACKEND"` // file, sqlite, memory
}

type FeedConfig struct {
	Mode       string `json:"mode" label:"Feed Mode" env:"NEXUSDECK_FEED_MODE"` // scripted, replay
	ReplayPath string `json:"replay_path" label:"Replay Path" env:"NEXUSDECK_FEED_REPLAY_PATH"`
}

type LoggingConfig struct {
	Level string `json:"level" label:"Log Level" env:"NEXUSDECK_LOG_LEVEL"`
	File  string `json:"file" label:"Log File" env:"NEXUSDECK_LOG_FILE"`
}

type Config struct {
	UI      UIConfig      `json:"ui" label:"Interface"`
	Export  ExportConfig  `json:"export" label:"Export"`
	Notes   NotesConfig   `json:"notes" label:"Annotations"`
	Feed    FeedConfig    `json:"feed" label:"Feed"`
	Logging LoggingConfig `json:"logging" label:"Logging"`
	mu      sync.RWMutex
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:            "dark",
			TimelineExpanded: true,
			ShowAgentBadges:  true,
		},
		Export: ExportConfig{
			OutputDir:    "~/.nexusdeck/exports",
			PageSize:     "A4",
			Confidential: true,
		},
		Notes: NotesConfig{
			Backend: "file",
		},
		Feed: FeedConfig{
			Mode: "scripted",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads the config file at path, falling back to defaults when the
// file does not exist, then overlays NEXUSDECK_* environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := env.Parse(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

func (c *Config) Lock()    { c.mu.Lock() }
func (c *Config) Unlock()  { c.mu.Unlock() }
func (c *Config) RLock()   { c.mu.RLock() }
func (c *Config) RUnlock() { c.mu.RUnlock() }

// ExportDir returns the export output directory with ~ expanded.
func (c *Config) ExportDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return expandHome(c.Export.OutputDir)
}

// ReplayPath returns the transcript replay file path with ~ expanded.
func (c *Config) ReplayPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return expandHome(c.Feed.ReplayPath)
}

func expandHome(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		if len(path) > 1 && path[1] == '/' {
			return home + path[1:]
		}
		return home
	}
	return path
}
