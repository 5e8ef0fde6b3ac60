// Package mods is the registry of the game variants the ladder tracks.
package mods

import (
	"sort"
)

// DefaultID is the variant used when a request carries no, or an
// unrecognized, mod selector.
const DefaultID = "ra"

// Mod describes the capabilities of a single game variant.
type Mod struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`

	// Whether replay analysis is available for this variant. The
	// analytics services only attach replay links when it is.
	SupportsAnalysis bool `json:"supportsAnalysis"`
}

var registry = map[string]Mod{
	"ra": {
		ID:               "ra",
		Label:            "Red Alert",
		Icon:             "ra.png",
		SupportsAnalysis: true,
	},
	"td": {
		ID:               "td",
		Label:            "Tiberian Dawn",
		Icon:             "td.png",
		SupportsAnalysis: false,
	},
}

// Get returns the variant for the given identifier, falling back to
// the default variant for unknown values.
func Get(id string) Mod {
	if mod, ok := registry[id]; ok {
		return mod
	}
	return registry[DefaultID]
}

// Known reports whether the identifier maps to a registered variant.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// All returns every registered variant, sorted by identifier so the
// listing is stable.
func All() []Mod {
	all := make([]Mod, 0, len(registry))
	for _, mod := range registry {
		all = append(all, mod)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
