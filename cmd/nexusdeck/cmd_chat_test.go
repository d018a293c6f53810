package main

import (
	"strings"
	"testing"

	"github.com/nexuscommand/nexusdeck/pkg/config"
	"github.com/nexuscommand/nexusdeck/pkg/feed"
)

func TestBuildFeedScriptedDefault(t *testing.T) {
	f, label, err := buildFeed("scripted", "")
	if err != nil {
		t.Fatalf("buildFeed() error: %v", err)
	}
	if f == nil {
		t.Fatal("expected a feed")
	}
	if _, ok := f.(*feed.ScriptedFeed); !ok {
		t.Errorf("feed = %T, want *feed.ScriptedFeed", f)
	}
	if label != "scripted demo" {
		t.Errorf("label = %q, want %q", label, "scripted demo")
	}
}

func TestBuildFeedUnknownModeFallsBackToScripted(t *testing.T) {
	f, _, err := buildFeed("turbo", "")
	if err != nil {
		t.Fatalf("buildFeed() error: %v", err)
	}
	if _, ok := f.(*feed.ScriptedFeed); !ok {
		t.Errorf("feed = %T, want *feed.ScriptedFeed", f)
	}
}

func TestBuildFeedReplayNeedsPath(t *testing.T) {
	_, _, err := buildFeed("replay", "")
	if err == nil {
		t.Fatal("expected error for replay mode without a path")
	}
	if !strings.Contains(err.Error(), "--replay") {
		t.Errorf("error %q should mention the --replay flag", err)
	}
}

func TestBuildFeedReplayMissingFile(t *testing.T) {
	_, _, err := buildFeed("replay", "/nonexistent/replay.json")
	if err == nil {
		t.Fatal("expected error for a missing replay file")
	}
}

func TestSettingsLinesCoverResolvedValues(t *testing.T) {
	cfg := config.DefaultConfig()
	paths := config.RuntimePaths{ConfigPath: "/home/op/.nexusdeck/config.json"}

	lines := settingsLines(cfg, paths, "/home/op/.nexusdeck/nexusdeck.log", "scripted demo")

	joined := strings.Join(lines, "\n")
	for _, want := range []string{
		"theme: dark",
		"feed: scripted demo",
		"notes backend: file",
		"page size: A4",
		"confidential footer: true",
		"log file: /home/op/.nexusdeck/nexusdeck.log",
		"config: /home/op/.nexusdeck/config.json",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("settings lines missing %q:\n%s", want, joined)
		}
	}
}
