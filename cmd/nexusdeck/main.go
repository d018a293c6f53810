// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexuscommand/nexusdeck/cmd/nexusdeck/internal/exportcmd"
	"github.com/nexuscommand/nexusdeck/cmd/nexusdeck/internal/notescmd"
	"github.com/nexuscommand/nexusdeck/pkg/config"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

const logo = "◆"

// formatVersion returns the version string with optional git commit
func formatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// formatBuildInfo returns build time and go version info
func formatBuildInfo() (build string, goVer string) {
	if buildTime != "" {
		build = buildTime
	}
	goVer = goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return
}

func printVersion() {
	fmt.Printf("%s nexusdeck %s\n", logo, formatVersion())
	build, goVer := formatBuildInfo()
	if build != "" {
		fmt.Printf("  Build: %s\n", build)
	}
	if goVer != "" {
		fmt.Printf("  Go: %s\n", goVer)
	}
}

// parseGlobalFlags extracts the global --config flag from the argument list,
// returning the remaining arguments and the override path. Only the long
// forms "--config PATH" and "--config=PATH" are recognized; everything else
// passes through untouched so subcommand flags keep their meaning.
func parseGlobalFlags(args []string) ([]string, string, error) {
	filtered := make([]string, 0, len(args))
	override := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, "", fmt.Errorf("--config requires a path")
			}
			value := strings.TrimSpace(args[i+1])
			if value == "" {
				return nil, "", fmt.Errorf("--config requires a path")
			}
			override = value
			i++
		case strings.HasPrefix(arg, "--config="):
			value := strings.TrimSpace(strings.TrimPrefix(arg, "--config="))
			if value == "" {
				return nil, "", fmt.Errorf("--config requires a path")
			}
			override = value
		default:
			filtered = append(filtered, arg)
		}
	}

	return filtered, override, nil
}

func main() {
	args, configOverride, err := parseGlobalFlags(os.Args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if configOverride != "" {
		// The config loader resolves paths through this variable, so the
		// override reaches subcommands without further plumbing.
		os.Setenv(config.EnvNexusDeckConfig, configOverride)
	}

	// No command launches the console directly
	if len(args) < 2 {
		chatCmd(nil)
		return
	}

	command := args[1]

	switch command {
	case "chat":
		chatCmd(args[2:])
	case "export":
		runCobra(exportcmd.NewExportCommand(), args[2:])
	case "notes":
		runCobra(notescmd.NewNotesCommand(), args[2:])
	case "roster":
		rosterCmd()
	case "init":
		initCmd()
	case "version", "--version", "-v":
		printVersion()
	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printHelp()
		os.Exit(1)
	}
}

func runCobra(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Printf("%s nexusdeck - Console for the Nexus Command agent team v%s\n\n", logo, version)
	fmt.Println("Usage: nexusdeck [command]")
	fmt.Println()
	fmt.Println("Running without a command opens the chat console.")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  chat        Open the chat console (--debug, --replay <file>)")
	fmt.Println("  export      Export saved transcript messages to share formats")
	fmt.Println("  notes       Inspect and edit pins and tags outside the console")
	fmt.Println("  roster      Show the agent team and what each agent listens for")
	fmt.Println("  init        Write a default config file")
	fmt.Println("  version     Show version information")
	fmt.Println()
	fmt.Println("Global flags:")
	fmt.Println("  --config <path>   Use an alternate config file")
}
