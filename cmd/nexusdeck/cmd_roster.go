// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package main

import (
	"fmt"
	"strings"

	"github.com/nexuscommand/nexusdeck/pkg/roster"
)

// rosterCmd prints the agent team and an example prompt for each agent
func rosterCmd() {
	reg := roster.Default()

	fmt.Printf("%s Nexus Command team\n\n", logo)
	fmt.Printf("%-3s %-10s %-20s %s\n", "", "AGENT", "ROLE", "TRY ASKING")
	for _, p := range reg.Profiles() {
		cue := ""
		if len(p.Cues) > 0 {
			cue = p.Cues[0]
		}
		fmt.Printf("%-3s %-10s %-20s %s\n", p.Badge, p.Name, p.Role, cue)
	}

	if dups := reg.Duplicates(); len(dups) > 0 {
		fmt.Printf("\n⚠ Duplicate aliases (last declaration wins): %s\n", strings.Join(dups, ", "))
	}
}
