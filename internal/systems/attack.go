package systems

import (
	"github.com/samdwyer/snowhunt/internal/combat"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/horde"
)

// AutoAttack cleaves every enemy within attack range once the cooldown has
// elapsed. The cooldown is only consumed when at least one enemy was in range.
// Each kill grants exactly one reward. It returns the number of kills.
func AutoAttack(f *Frame, pop *horde.Population) int {
	def := f.Tuning.Player
	p := f.Player
	if !combat.Ready(f.Now, p.LastAttackAt, def.AttackCooldown) {
		return 0
	}

	targets := pop.InRange(p.Pos, def.AttackRange)
	if len(targets) == 0 {
		return 0
	}
	p.LastAttackAt = f.Now

	damage := combat.Damage(f.State.WeaponLevel)
	kills := 0
	for _, h := range targets {
		hit := pop.Damage(h, damage)
		if !hit.Applied {
			continue
		}
		f.emit(event.Event{
			Kind:   event.EnemyDamaged,
			Source: event.SourcePlayer,
			Pos:    hit.Pos,
			Amount: damage,
		})
		if hit.Killed {
			kills++
			GrantKill(f, hit)
		}
	}
	return kills
}
