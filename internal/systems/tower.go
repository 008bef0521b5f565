package systems

import (
	"github.com/samdwyer/snowhunt/internal/combat"
	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/horde"
)

// UpdateTower fires the tower at the nearest enemy in range once its cooldown
// has elapsed. Tower kills feed the player's economy with raw meat only.
// It returns true if the shot killed.
func UpdateTower(f *Frame, t *entity.Tower, pop *horde.Population) bool {
	def := f.Tuning.Tower
	if !t.Active || !combat.Ready(f.Now, t.LastAttackAt, def.AttackCooldown) {
		return false
	}

	h, ok := pop.Nearest(t.Pos, def.AttackRange)
	if !ok {
		return false
	}
	t.LastAttackAt = f.Now

	damage := combat.TowerDamage(t.Level)
	hit := pop.Damage(h, damage)
	if !hit.Applied {
		return false
	}

	f.emit(event.Event{
		Kind:   event.TowerShot,
		Source: event.SourceTower,
		Pos:    t.Pos,
		Target: hit.Pos,
		Amount: damage,
		Level:  t.Level,
	})
	f.emit(event.Event{
		Kind:   event.EnemyDamaged,
		Source: event.SourceTower,
		Pos:    hit.Pos,
		Amount: damage,
	})

	if !hit.Killed {
		return false
	}
	GrantMeat(f, f.Tuning.Player.KillMeat)
	f.emit(event.Event{
		Kind:   event.EnemyKilled,
		Source: event.SourceTower,
		Pos:    hit.Pos,
	})
	return true
}
