package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snowhunt/internal/geom"
)

// =============================================================================
// TUNING DATA
// =============================================================================
//
// tuning.json holds every balance constant of the simulation. The layout is
// the static world: zones and collision boxes never change after build time.
//
// Coordinates are world units on the XZ plane. The safe zone is centered on
// the origin (player spawn) and enemies live in the spawn area, which spans
// x in [-width/2, width/2] and z in [-depth, 0].

// WorldDef describes the field and the spawn policy.
type WorldDef struct {
	SpawnWidth     float64 `json:"spawnWidth"`     // W: X extent of the spawn area
	SpawnDepth     float64 `json:"spawnDepth"`     // D: Z extent of the spawn area (toward -Z)
	SafeZoneRadius float64 `json:"safeZoneRadius"` // No-spawn circle around the origin
	SafeZoneMargin float64 `json:"safeZoneMargin"` // Enemies are held at radius + margin
	EnemyCount     int     `json:"enemyCount"`     // Batch size spawned at game start
	PileStep       float64 `json:"pileStep"`       // Height step of world-item piles
	PileRadius     float64 `json:"pileRadius"`     // Items this close count as one pile
}

// ContainRadius is the minimum distance from the origin enemies are held at.
func (w WorldDef) ContainRadius() float64 {
	return w.SafeZoneRadius + w.SafeZoneMargin
}

// SpawnArea returns the rectangle enemies spawn and wander in.
func (w WorldDef) SpawnArea() geom.Rect {
	return geom.Rect{
		MinX: -w.SpawnWidth / 2,
		MaxX: w.SpawnWidth / 2,
		MinZ: -w.SpawnDepth,
		MaxZ: 0,
	}
}

// PlayerDef holds the player's movement, combat and progression constants.
type PlayerDef struct {
	Glyph          string  `json:"glyph"`
	Color          string  `json:"color"`
	MoveSpeed      float64 `json:"moveSpeed"`      // Units per second
	Radius         float64 `json:"radius"`         // Collision boxes are inflated by this
	AttackRange    float64 `json:"attackRange"`    // Cleave radius
	AttackCooldown float64 `json:"attackCooldown"` // Seconds between cleaves
	IFrames        float64 `json:"iFrames"`        // Invulnerability after a landed hit
	StartHealth    int     `json:"startHealth"`
	HealthPerLevel int     `json:"healthPerLevel"`
	StackStep      float64 `json:"stackStep"` // Head-stack height per item
	KillMeat       int     `json:"killMeat"`
	KillMoney      int     `json:"killMoney"`
	KillExperience int     `json:"killExperience"`
}

// EnemyDef defines the roaming enemy.
type EnemyDef struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Glyph                 string  `json:"glyph"`
	Color                 string  `json:"color"`
	MaxHP                 int     `json:"maxHp"`
	Speed                 float64 `json:"speed"`             // Chase speed, units per second
	WanderSpeedFactor     float64 `json:"wanderSpeedFactor"` // Fraction of Speed used while wandering
	WanderReach           float64 `json:"wanderReach"`       // Resample the wander target inside this distance
	AttackRange           float64 `json:"attackRange"`
	AttackCooldown        float64 `json:"attackCooldown"` // Per enemy
	BaseDamage            int     `json:"baseDamage"`
	MaxChasers            int     `json:"maxChasers"`
	ChaseCutoff           float64 `json:"chaseCutoff"`
	SeparationRadius      float64 `json:"separationRadius"`
	SeparationStrength    float64 `json:"separationStrength"`
	PlayerCollisionRadius float64 `json:"playerCollisionRadius"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	return glyphRune(e.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return colorOr(e.Color, tcell.ColorWhite)
}

// TowerDef defines the stationary auto-attacker.
type TowerDef struct {
	Glyph          string    `json:"glyph"`
	Color          string    `json:"color"`
	Position       geom.Vec3 `json:"position"`
	AttackRange    float64   `json:"attackRange"`
	AttackCooldown float64   `json:"attackCooldown"`
}

// EconomyDef holds the zone and pickup constants.
type EconomyDef struct {
	ZoneMargin       float64 `json:"zoneMargin"`     // Residency test expands zones by this
	ActionInterval   float64 `json:"actionInterval"` // Seconds between actions per zone
	UpgradeCost      int     `json:"upgradeCost"`    // Coins per weapon or tower upgrade
	CashInValue      int     `json:"cashInValue"`    // Money per cooked item sold
	MeatPickupRadius float64 `json:"meatPickupRadius"`
	CoinPickupRadius float64 `json:"coinPickupRadius"`
	CurrencyRate     int     `json:"currencyRate"` // Display multiplier for money
}

// ZoneKind names the action a zone performs.
type ZoneKind string

const (
	ZoneCooking ZoneKind = "cooking"
	ZoneShop    ZoneKind = "shop"
	ZoneForge   ZoneKind = "forge"
	ZoneTower   ZoneKind = "tower"
)

// ZoneDef defines one economic zone.
type ZoneDef struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Kind   ZoneKind  `json:"kind"`
	Color  string    `json:"color"`
	Area   geom.Rect `json:"area"`
	Output geom.Vec3 `json:"output"` // Where produced world items appear
}

// TCellColor returns the zone color as a tcell.Color.
func (z *ZoneDef) TCellColor() tcell.Color {
	return colorOr(z.Color, tcell.ColorDarkGreen)
}

// BoxDef is a static collision rectangle.
type BoxDef struct {
	Name string    `json:"name"`
	Area geom.Rect `json:"area"`
}

// Tuning is the full content of tuning.json.
type Tuning struct {
	World       WorldDef        `json:"world"`
	Player      PlayerDef       `json:"player"`
	Enemy       EnemyDef        `json:"enemy"`
	Tower       TowerDef        `json:"tower"`
	Economy     EconomyDef      `json:"economy"`
	Zones       []ZoneDef       `json:"zones"`
	Boxes       []BoxDef        `json:"boxes"`
	WeaponTiers []WeaponTierDef `json:"weaponTiers"`
}

// Validate checks the values the simulation divides by or loops on.
func (t *Tuning) Validate() error {
	var errs []error
	if t.World.SpawnWidth <= 0 || t.World.SpawnDepth <= 0 {
		errs = append(errs, errors.New("world: spawn area must be non-empty"))
	}
	// Rejection sampling must be able to succeed.
	if t.World.SafeZoneRadius >= t.World.SpawnWidth/2 || t.World.SafeZoneRadius >= t.World.SpawnDepth {
		errs = append(errs, errors.New("world: safe zone covers the spawn area"))
	}
	if t.Enemy.MaxHP <= 0 {
		errs = append(errs, fmt.Errorf("enemy: maxHp must be positive, got %d", t.Enemy.MaxHP))
	}
	if t.Enemy.MaxChasers < 0 {
		errs = append(errs, fmt.Errorf("enemy: maxChasers must not be negative, got %d", t.Enemy.MaxChasers))
	}
	if t.Player.AttackCooldown <= 0 || t.Enemy.AttackCooldown <= 0 || t.Tower.AttackCooldown <= 0 {
		errs = append(errs, errors.New("cooldowns must be positive"))
	}
	if t.Economy.ActionInterval <= 0 {
		errs = append(errs, errors.New("economy: actionInterval must be positive"))
	}
	if len(t.WeaponTiers) == 0 {
		errs = append(errs, errors.New("weaponTiers: at least one tier is required"))
	}
	seen := make(map[ZoneKind]bool)
	for _, z := range t.Zones {
		switch z.Kind {
		case ZoneCooking, ZoneShop, ZoneForge, ZoneTower:
		default:
			errs = append(errs, fmt.Errorf("zone %s: unknown kind %q", z.ID, z.Kind))
		}
		if seen[z.Kind] {
			errs = append(errs, fmt.Errorf("zone %s: duplicate kind %q", z.ID, z.Kind))
		}
		seen[z.Kind] = true
	}
	return errors.Join(errs...)
}

// LoadTuning loads and validates the embedded tuning.json.
func LoadTuning() (*Tuning, error) {
	t, err := Load[Tuning]("tuning.json")
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning.json: %w", err)
	}
	return &t, nil
}

// DefaultTuning returns a fresh copy of the embedded tuning, panicking if the
// embedded file is broken.
func DefaultTuning() *Tuning {
	t, err := LoadTuning()
	if err != nil {
		panic(err)
	}
	return t
}

// glyphRune returns the first byte of a glyph string, or '?' if empty.
func glyphRune(glyph string) rune {
	if len(glyph) == 0 {
		return '?'
	}
	return rune(glyph[0])
}

// colorOr parses hex, falling back on error.
func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// GlyphRune returns the player glyph.
func (p *PlayerDef) GlyphRune() rune { return glyphRune(p.Glyph) }

// TCellColor returns the player color.
func (p *PlayerDef) TCellColor() tcell.Color { return colorOr(p.Color, tcell.ColorYellow) }

// GlyphRune returns the tower glyph.
func (t *TowerDef) GlyphRune() rune { return glyphRune(t.Glyph) }

// TCellColor returns the tower color.
func (t *TowerDef) TCellColor() tcell.Color { return colorOr(t.Color, tcell.ColorAqua) }
