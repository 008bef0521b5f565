package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/geom"
	"github.com/samdwyer/snowhunt/internal/horde"
	"github.com/samdwyer/snowhunt/internal/world"
)

// HUD is the flat per-tick snapshot of the player's progression.
type HUD struct {
	Time           float64
	Level          int
	Experience     int
	NextLevelAt    int
	Health         int
	MaxHealth      int
	WeaponLevel    int
	WeaponTier     string
	WeaponColor    tcell.Color
	Damage         int
	ArmorLevel     int
	MeatCount      int
	ProcessedMeats int
	Money          int
	Currency       int // Money at the display exchange rate
	Carried        int
	TowerActive    bool
	TowerLevel     int
	Enemies        int
	Chasers        int
	Zone           string // Name of the zone the player stands in
}

// PlayerView is what the renderer needs of the player.
type PlayerView struct {
	Pos    geom.Vec3
	Facing float64
	Moving bool
	Stack  []entity.StackItem
}

// View is everything drawn in one frame. The renderer never writes back.
type View struct {
	HUD     HUD
	Player  PlayerView
	Enemies []horde.Snapshot
	Items   []world.Item
	Tower   entity.Tower
	Field   *world.Field
}
