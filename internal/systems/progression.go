package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/snowhunt/internal/combat"
	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/horde"
	"github.com/samdwyer/snowhunt/pkg/logger"
)

// GrantKill applies one player kill reward: meat (also carried as a raw item
// on the head-stack), money and experience.
func GrantKill(f *Frame, hit horde.Hit) {
	def := f.Tuning.Player
	gs := f.State

	GrantMeat(f, def.KillMeat)
	gs.Money += def.KillMoney

	f.emit(event.Event{
		Kind:   event.EnemyKilled,
		Source: event.SourcePlayer,
		Pos:    hit.Pos,
		Amount: def.KillMoney,
	})
	logger.Component("player").WithFields(logrus.Fields{
		"meat":  gs.MeatCount,
		"money": gs.Money,
	}).Debug("Enemy killed.")

	AddExperience(f, def.KillExperience)
}

// GrantMeat adds n raw meat to the player's count and head-stack.
func GrantMeat(f *Frame, n int) {
	for i := 0; i < n; i++ {
		f.State.MeatCount++
		f.Player.Stack.Push(entity.ItemRaw)
	}
}

// AddExperience adds experience and applies every level-up it earns. Each
// level raises max health and fully heals. It returns the levels gained.
func AddExperience(f *Frame, amount int) int {
	gs := f.State
	gs.Experience += amount

	gained := 0
	for gs.Experience >= combat.ExperienceRequired(gs.Level+1) {
		gs.Level++
		gs.MaxHealth += f.Tuning.Player.HealthPerLevel
		gs.Health = gs.MaxHealth
		gained++

		f.emit(event.Event{
			Kind:   event.LeveledUp,
			Source: event.SourcePlayer,
			Pos:    f.Player.Pos,
			Level:  gs.Level,
		})
		logger.Component("player").WithFields(logrus.Fields{
			"level":      gs.Level,
			"max_health": gs.MaxHealth,
		}).Info("Level up.")
	}
	return gained
}
