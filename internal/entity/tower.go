package entity

import "github.com/samdwyer/snowhunt/internal/geom"

// Tower is the optional stationary auto-attacker.
type Tower struct {
	Pos          geom.Vec3
	Active       bool
	Level        int
	LastAttackAt float64
}

// NewTower creates an inactive tower at pos.
func NewTower(pos geom.Vec3) *Tower {
	return &Tower{Pos: pos}
}

// Upgrade activates the tower at level 1 or raises its level by one.
// There is no level cap.
func (t *Tower) Upgrade() {
	if !t.Active {
		t.Active = true
		t.Level = 1
		return
	}
	t.Level++
}
