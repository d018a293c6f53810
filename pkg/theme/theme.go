// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

// Package theme declares the deck's visual identity as plain named
// constants. Terminal styles and export CSS are both derived from the same
// Theme, so the TUI and the HTML artifacts stay on one palette.
package theme

// Theme is a named color palette. All values are hex strings so a theme can
// round-trip through the config file unchanged.
type Theme struct {
	Name string `json:"name"`

	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Error     string `json:"error"`
	Success   string `json:"success"`
	Warning   string `json:"warning"`

	Background string `json:"background"`
	Surface    string `json:"surface"`
	Border     string `json:"border"`

	Text    string `json:"text"`
	TextDim string `json:"text_dim"`

	HumanLabel string `json:"human_label"`
	AgentLabel string `json:"agent_label"`

	PinMark     string `json:"pin_mark"`
	TagDecision string `json:"tag_decision"`
	TagAction   string `json:"tag_action"`
	TagIdea     string `json:"tag_idea"`
}

// Dark is the default "Nexus" palette: deep navy surfaces with a teal accent
func Dark() Theme {
	return Theme{
		Name:        "dark",
		Primary:     "#2DD4BF",
		Secondary:   "#7B8794",
		Error:       "#E74C3C",
		Success:     "#2ECC71",
		Warning:     "#F39C12",
		Background:  "#0B1220",
		Surface:     "#121A2B",
		Border:      "#233048",
		Text:        "#E6EDF3",
		TextDim:     "#8B99A9",
		HumanLabel:  "#2DD4BF",
		AgentLabel:  "#3498DB",
		PinMark:     "#F1C40F",
		TagDecision: "#3498DB",
		TagAction:   "#F39C12",
		TagIdea:     "#9B59B6",
	}
}

// Light is the alternate palette for bright terminals
func Light() Theme {
	return Theme{
		Name:        "light",
		Primary:     "#0F766E",
		Secondary:   "#616E7C",
		Error:       "#C0392B",
		Success:     "#1E8449",
		Warning:     "#B9770E",
		Background:  "#FFFFFF",
		Surface:     "#F4F6F8",
		Border:      "#CBD2D9",
		Text:        "#1F2933",
		TextDim:     "#616E7C",
		HumanLabel:  "#0F766E",
		AgentLabel:  "#1F618D",
		PinMark:     "#B7950B",
		TagDecision: "#1F618D",
		TagAction:   "#B9770E",
		TagIdea:     "#76448A",
	}
}

// ByName resolves a configured theme name. Unknown names fall back to the
// dark preset.
func ByName(name string) Theme {
	switch name {
	case "light":
		return Light()
	default:
		return Dark()
	}
}
