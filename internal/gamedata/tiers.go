package gamedata

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// WeaponTierDef is the visual tier of the equipped weapon. A tier applies
// from MinLevel until the next tier's MinLevel.
type WeaponTierDef struct {
	MinLevel int    `json:"minLevel"`
	Name     string `json:"name"`
	Color    string `json:"color"`
}

// TCellColor returns the tier color as a tcell.Color.
func (w *WeaponTierDef) TCellColor() tcell.Color {
	return colorOr(w.Color, tcell.ColorWhite)
}

// TierRegistry resolves weapon levels to visual tiers.
type TierRegistry struct {
	tiers []WeaponTierDef // sorted by MinLevel ascending
}

// NewTierRegistry creates a registry from tier definitions in any order.
func NewTierRegistry(tiers []WeaponTierDef) *TierRegistry {
	sorted := make([]WeaponTierDef, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinLevel < sorted[j].MinLevel
	})
	return &TierRegistry{tiers: sorted}
}

// ForLevel returns the highest tier whose MinLevel does not exceed level.
// Levels below the first tier get the first tier; an empty registry returns nil.
func (r *TierRegistry) ForLevel(level int) *WeaponTierDef {
	if len(r.tiers) == 0 {
		return nil
	}
	best := &r.tiers[0]
	for i := range r.tiers {
		if r.tiers[i].MinLevel <= level {
			best = &r.tiers[i]
		}
	}
	return best
}

// Count returns the number of tiers in the registry.
func (r *TierRegistry) Count() int {
	return len(r.tiers)
}
