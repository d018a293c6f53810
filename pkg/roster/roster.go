// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

// Package roster resolves backend agent identifiers to display identities.
// The mapping is purely cosmetic; an unrecognized identifier falls back to a
// generic specialist profile rather than erroring.
package roster

import (
	"github.com/nexuscommand/nexusdeck/pkg/logger"
)

// Profile is the display identity of one agent on the team
type Profile struct {
	ID    string
	Name  string
	Badge string
	Color string
	Role  string
	Blurb string
	Cues  []string
}

// Alias maps one backend identifier string onto a profile. Matching is by
// exact key only; case variants must be enumerated explicitly.
type Alias struct {
	Key       string
	ProfileID string
}

// Registry is an immutable identifier-to-profile index built once at startup
type Registry struct {
	profiles   map[string]Profile
	order      []string
	index      map[string]string
	duplicates []string
	fallback   Profile
}

// New builds a registry from profile and alias declarations. A duplicate
// alias key keeps the later declaration (last write wins) and is recorded so
// the caller can see the collision instead of it vanishing silently.
func New(profiles []Profile, aliases []Alias) *Registry {
	r := &Registry{
		profiles: make(map[string]Profile, len(profiles)),
		index:    make(map[string]string, len(aliases)),
		fallback: Fallback(),
	}

	for _, p := range profiles {
		if _, exists := r.profiles[p.ID]; !exists {
			r.order = append(r.order, p.ID)
		}
		r.profiles[p.ID] = p
	}

	for _, a := range aliases {
		if prev, exists := r.index[a.Key]; exists {
			r.duplicates = append(r.duplicates, a.Key)
			logger.WarnCF("roster", "Duplicate alias", map[string]any{
				"alias":      a.Key,
				"winner":     a.ProfileID,
				"overwrites": prev,
			})
		}
		r.index[a.Key] = a.ProfileID
	}

	return r
}

// Resolve returns the display profile for a backend identifier. Unknown
// identifiers resolve to the generic fallback profile.
func (r *Registry) Resolve(identifier string) Profile {
	id, ok := r.index[identifier]
	if !ok {
		return r.fallback
	}
	p, ok := r.profiles[id]
	if !ok {
		return r.fallback
	}
	return p
}

// Profiles returns the declared profiles in declaration order, for the
// welcome screen roster cards.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id])
	}
	return out
}

// Duplicates returns the alias keys that were declared more than once
func (r *Registry) Duplicates() []string {
	return r.duplicates
}

// Fallback is the profile used when an identifier has no mapping
func Fallback() Profile {
	return Profile{
		ID:    "specialist",
		Name:  "Specialist",
		Badge: "🤖",
		Color: "#7B8794",
		Role:  "Specialist",
		Blurb: "A member of the agent team.",
	}
}
