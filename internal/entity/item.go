// Package entity holds the simulation's state records: the authoritative
// GameState, the player with its head-stack, and the tower.
package entity

// ItemKind tags an inventory or world item.
type ItemKind int

const (
	ItemRaw ItemKind = iota
	ItemCooked
	ItemCoin
)

// String returns the item tag.
func (k ItemKind) String() string {
	switch k {
	case ItemRaw:
		return "raw"
	case ItemCooked:
		return "cooked"
	case ItemCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Symbol returns the display symbol for an item kind.
func (k ItemKind) Symbol() rune {
	switch k {
	case ItemRaw:
		return 'm'
	case ItemCooked:
		return '%'
	case ItemCoin:
		return '$'
	default:
		return '?'
	}
}
