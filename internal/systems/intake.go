package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/snowhunt/internal/combat"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/pkg/logger"
)

// ReceiveAttack applies one enemy attack to the player. Attacks inside the
// invulnerability window of the last landed hit are dropped entirely.
// It returns true if the hit landed.
func ReceiveAttack(f *Frame, now float64) bool {
	p := f.Player
	gs := f.State
	if p.Invulnerable(now, f.Tuning.Player.IFrames) {
		return false
	}

	damage := combat.IncomingDamage(f.Tuning.Enemy.BaseDamage, gs.ArmorLevel)
	p.MarkDamaged(now)
	lethal := gs.ApplyDamage(damage)

	f.emit(event.Event{
		Kind:   event.PlayerDamaged,
		Source: event.SourceEnemy,
		Pos:    p.Pos,
		Amount: damage,
	})

	if lethal {
		logger.Component("player").WithFields(logrus.Fields{
			"damage":     damage,
			"max_health": gs.MaxHealth,
		}).Warn("Player health depleted, restored to full.")
	}
	return true
}
