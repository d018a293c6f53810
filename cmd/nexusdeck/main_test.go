package main

import (
	"reflect"
	"testing"
)

func TestParseGlobalFlags_ConfigPair(t *testing.T) {
	args := []string{"nexusdeck", "--config", "/tmp/config.json", "chat", "--debug"}

	filtered, override, err := parseGlobalFlags(args)
	if err != nil {
		t.Fatalf("parseGlobalFlags() error: %v", err)
	}
	if override != "/tmp/config.json" {
		t.Errorf("override = %q, want %q", override, "/tmp/config.json")
	}

	want := []string{"nexusdeck", "chat", "--debug"}
	if !reflect.DeepEqual(filtered, want) {
		t.Errorf("filtered args = %#v, want %#v", filtered, want)
	}
}

func TestParseGlobalFlags_ConfigEqualsSyntax(t *testing.T) {
	args := []string{"nexusdeck", "--config=/tmp/config.json", "roster"}

	filtered, override, err := parseGlobalFlags(args)
	if err != nil {
		t.Fatalf("parseGlobalFlags() error: %v", err)
	}
	if override != "/tmp/config.json" {
		t.Errorf("override = %q, want %q", override, "/tmp/config.json")
	}

	want := []string{"nexusdeck", "roster"}
	if !reflect.DeepEqual(filtered, want) {
		t.Errorf("filtered args = %#v, want %#v", filtered, want)
	}
}

func TestParseGlobalFlags_MissingValue(t *testing.T) {
	tests := [][]string{
		{"nexusdeck", "--config"},
		{"nexusdeck", "--config", ""},
		{"nexusdeck", "--config= "},
	}

	for _, tt := range tests {
		_, _, err := parseGlobalFlags(tt)
		if err == nil {
			t.Errorf("parseGlobalFlags(%#v) expected error, got nil", tt)
		}
	}
}

func TestParseGlobalFlags_DoesNotConsumeSubcommandFlags(t *testing.T) {
	args := []string{"nexusdeck", "export", "message", "-f", "weekly.json"}

	filtered, override, err := parseGlobalFlags(args)
	if err != nil {
		t.Fatalf("parseGlobalFlags() error: %v", err)
	}
	if override != "" {
		t.Errorf("override = %q, want empty", override)
	}
	if !reflect.DeepEqual(filtered, args) {
		t.Errorf("filtered args = %#v, want %#v", filtered, args)
	}
}
