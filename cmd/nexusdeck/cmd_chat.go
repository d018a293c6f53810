// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexuscommand/nexusdeck/cmd/nexusdeck/internal"
	"github.com/nexuscommand/nexusdeck/pkg/config"
	"github.com/nexuscommand/nexusdeck/pkg/digest"
	"github.com/nexuscommand/nexusdeck/pkg/export"
	"github.com/nexuscommand/nexusdeck/pkg/feed"
	"github.com/nexuscommand/nexusdeck/pkg/logger"
	"github.com/nexuscommand/nexusdeck/pkg/notes"
	"github.com/nexuscommand/nexusdeck/pkg/roster"
	"github.com/nexuscommand/nexusdeck/pkg/theme"
	"github.com/nexuscommand/nexusdeck/pkg/tui"
)

// chatCmd opens the console. Flags: --debug forces debug logging, --replay
// plays a recorded transcript instead of the scripted team.
func chatCmd(args []string) {
	debug := false
	replayOverride := ""

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--debug" || args[i] == "-d":
			debug = true
		case args[i] == "--replay":
			if i+1 < len(args) {
				replayOverride = args[i+1]
				i++
			}
		case strings.HasPrefix(args[i], "--replay="):
			replayOverride = strings.TrimPrefix(args[i], "--replay=")
		}
	}

	paths := config.ResolveRuntimePaths()
	cfg, err := config.LoadConfig(paths.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if debug {
		logger.SetLevel(logger.DEBUG)
	} else {
		logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	}

	// The terminal belongs to the TUI, so everything logged goes to a file
	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = paths.LogPath
	}
	if err := logger.EnableFileLogging(logPath); err != nil {
		fmt.Printf("Warning: file logging disabled: %v\n", err)
	}

	th := theme.ByName(cfg.UI.Theme)
	reg := roster.Default()

	backend, err := internal.OpenNotesBackend(cfg, paths)
	if err != nil {
		fmt.Printf("Error opening notes backend: %v\n", err)
		os.Exit(1)
	}
	store := notes.NewStore(backend)

	exporter := export.New(cfg.ExportDir(), th, reg,
		export.WithConfidential(cfg.Export.Confidential),
		export.WithPageSize(cfg.Export.PageSize),
	)

	mode := cfg.Feed.Mode
	replayPath := cfg.ReplayPath()
	if replayOverride != "" {
		mode = "replay"
		replayPath = replayOverride
	}

	activeFeed, feedLabel, err := buildFeed(mode, replayPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	m := tui.New(tui.Options{
		Feed:             activeFeed,
		Roster:           reg,
		Notes:            store,
		Digest:           digest.New(),
		Exporter:         exporter,
		Theme:            th,
		FeedLabel:        feedLabel,
		TimelineExpanded: cfg.UI.TimelineExpanded,
		SettingsLines:    settingsLines(cfg, paths, logPath, feedLabel),
	})

	logger.InfoCF("main", "Console starting", map[string]any{
		"feed":  feedLabel,
		"theme": th.Name,
		"notes": cfg.Notes.Backend,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func buildFeed(mode, replayPath string) (feed.Feed, string, error) {
	if mode == "replay" {
		if replayPath == "" {
			return nil, "", fmt.Errorf("replay mode needs a transcript: set feed.replay_path or pass --replay <file>")
		}
		rf, err := feed.NewReplay(replayPath)
		if err != nil {
			return nil, "", err
		}
		return rf, "replay: " + filepath.Base(replayPath), nil
	}
	return feed.NewScripted(), "scripted demo", nil
}

// settingsLines are the resolved values the settings panel shows
func settingsLines(cfg *config.Config, paths config.RuntimePaths, logPath, feedLabel string) []string {
	return []string{
		"theme: " + cfg.UI.Theme,
		"feed: " + feedLabel,
		"notes backend: " + cfg.Notes.Backend,
		"export dir: " + cfg.ExportDir(),
		"page size: " + cfg.Export.PageSize,
		fmt.Sprintf("confidential footer: %t", cfg.Export.Confidential),
		fmt.Sprintf("timeline expanded: %t", cfg.UI.TimelineExpanded),
		"log file: " + logPath,
		"config: " + paths.ConfigPath,
	}
}
