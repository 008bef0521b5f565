// Package event provides the typed gameplay event queue.
//
// Gameplay code emits events during a tick; presentation and telemetry drain
// the queue afterwards on their own schedule. Nothing in the simulation waits
// on or reads back a drained event.
package event

import "github.com/samdwyer/snowhunt/internal/geom"

// Kind identifies an event type.
type Kind int

const (
	PlayerDamaged Kind = iota
	EnemyDamaged
	EnemyKilled
	LeveledUp
	WeaponUpgraded
	TowerUpgraded
	TowerShot
	ItemCooked
	CoinMinted
	ItemPicked
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case PlayerDamaged:
		return "player_damaged"
	case EnemyDamaged:
		return "enemy_damaged"
	case EnemyKilled:
		return "enemy_killed"
	case LeveledUp:
		return "leveled_up"
	case WeaponUpgraded:
		return "weapon_upgraded"
	case TowerUpgraded:
		return "tower_upgraded"
	case TowerShot:
		return "tower_shot"
	case ItemCooked:
		return "item_cooked"
	case CoinMinted:
		return "coin_minted"
	case ItemPicked:
		return "item_picked"
	default:
		return "unknown"
	}
}

// Source tells who caused an event.
type Source int

const (
	SourceNone Source = iota
	SourcePlayer
	SourceTower
	SourceEnemy
	SourceZone
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourcePlayer:
		return "player"
	case SourceTower:
		return "tower"
	case SourceEnemy:
		return "enemy"
	case SourceZone:
		return "zone"
	default:
		return "none"
	}
}

// Event is one gameplay notification. Fields a kind does not use are zero.
type Event struct {
	Kind   Kind
	Source Source
	Time   float64
	Pos    geom.Vec3 // Where it happened (victim, item, player)
	Target geom.Vec3 // Second point, e.g. the end of a tower shot
	Amount int       // Damage, items, coins
	Level  int       // New level for level-up and upgrades
	Note   string    // Item tag or zone name
}

// Queue collects events emitted during ticks.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Emit appends an event.
func (q *Queue) Emit(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all queued events in emission order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Count returns the number of queued events of the given kind.
func (q *Queue) Count(kind Kind) int {
	n := 0
	for _, e := range q.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
