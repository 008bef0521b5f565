package entity

import "github.com/samdwyer/snowhunt/internal/geom"

// Player is the implicit player singleton.
type Player struct {
	Pos           geom.Vec3
	Facing        float64 // Yaw in radians
	Moving        bool    // Moved this tick
	LastAttackAt  float64 // Time of the last cleave that had targets
	LastDamagedAt float64 // Time of the last landed hit
	Stack         *HeadStack
	damagedOnce   bool
}

// NewPlayer creates a player at pos with an empty head-stack.
func NewPlayer(pos geom.Vec3, stackStep float64) *Player {
	return &Player{
		Pos:   pos,
		Stack: NewHeadStack(stackStep),
	}
}

// Invulnerable reports whether a hit at now falls inside the i-frame window
// of the last landed hit.
func (p *Player) Invulnerable(now, window float64) bool {
	return p.damagedOnce && now-p.LastDamagedAt < window
}

// MarkDamaged records a landed hit.
func (p *Player) MarkDamaged(now float64) {
	p.LastDamagedAt = now
	p.damagedOnce = true
}
