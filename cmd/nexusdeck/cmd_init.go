// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package main

import (
	"fmt"
	"os"

	"github.com/nexuscommand/nexusdeck/pkg/config"
)

// initCmd writes a default config file so users have something to edit.
// An existing config is never overwritten.
func initCmd() {
	paths := config.ResolveRuntimePaths()

	if _, err := os.Stat(paths.ConfigPath); err == nil {
		fmt.Printf("Config already exists: %s\n", paths.ConfigPath)
		return
	}

	if err := config.SaveConfig(paths.ConfigPath, config.DefaultConfig()); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Created %s\n", paths.ConfigPath)
	fmt.Println()
	fmt.Println("Edit it to change the theme, export settings, notes backend,")
	fmt.Println("and feed mode, then run: nexusdeck")
}
