// Package economy runs the zone actions (cooking, selling, upgrades) and
// item pickup.
package economy

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/snowhunt/internal/combat"
	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/systems"
	"github.com/samdwyer/snowhunt/internal/world"
	"github.com/samdwyer/snowhunt/pkg/logger"
)

// Economy owns the zone timers through the field and acts on the player's
// head-stack and the world items.
type Economy struct {
	field *world.Field
	items *world.Items
	tower *entity.Tower
	tiers *gamedata.TierRegistry
}

// New creates the economy.
func New(field *world.Field, items *world.Items, tower *entity.Tower, tiers *gamedata.TierRegistry) *Economy {
	return &Economy{
		field: field,
		items: items,
		tower: tower,
		tiers: tiers,
	}
}

// Update runs at most one action per zone the player stands in. Each zone
// acts at most once per action interval; the timer advances on every
// attempt, successful or not, and is never reset by leaving the zone.
// It returns the number of actions that changed state.
func (e *Economy) Update(f *systems.Frame) int {
	def := f.Tuning.Economy
	done := 0
	for _, z := range e.field.Zones {
		if !z.Contains(f.Player.Pos, def.ZoneMargin) {
			continue
		}
		if !combat.Ready(f.Now, z.LastProcessedAt, def.ActionInterval) {
			continue
		}
		z.LastProcessedAt = f.Now

		var ok bool
		switch z.Kind {
		case gamedata.ZoneCooking:
			ok = e.cook(f, z)
		case gamedata.ZoneShop:
			ok = e.sell(f, z)
		case gamedata.ZoneForge:
			ok = e.upgradeWeapon(f, z)
		case gamedata.ZoneTower:
			ok = e.upgradeTower(f, z)
		}
		if ok {
			done++
		}
	}
	return done
}

// cook turns one raw item into a cooked pile at the zone output.
func (e *Economy) cook(f *systems.Frame, z *world.Zone) bool {
	if f.Player.Stack.Remove(entity.ItemRaw, 1) != 1 {
		return false
	}
	gs := f.State
	gs.MeatCount = max(0, gs.MeatCount-1)
	gs.ProcessedMeats++

	it := e.items.Spawn(entity.ItemCooked, z.Output)
	f.Events.Emit(event.Event{
		Kind:   event.ItemCooked,
		Source: event.SourceZone,
		Time:   f.Now,
		Pos:    it.Pos,
		Amount: 1,
		Note:   z.Name,
	})
	return true
}

// sell cashes in one cooked item and drops a coin at the zone output.
func (e *Economy) sell(f *systems.Frame, z *world.Zone) bool {
	if f.Player.Stack.Remove(entity.ItemCooked, 1) != 1 {
		return false
	}
	value := f.Tuning.Economy.CashInValue
	f.State.Money += value

	it := e.items.Spawn(entity.ItemCoin, z.Output)
	f.Events.Emit(event.Event{
		Kind:   event.CoinMinted,
		Source: event.SourceZone,
		Time:   f.Now,
		Pos:    it.Pos,
		Amount: value,
		Note:   z.Name,
	})
	return true
}

// spendCoins removes cost coins from the head-stack and the purse. Nothing
// changes when the stack holds fewer than cost coins.
func spendCoins(f *systems.Frame, cost int) bool {
	if f.Player.Stack.Count(entity.ItemCoin) < cost {
		return false
	}
	f.Player.Stack.Remove(entity.ItemCoin, cost)
	f.State.SpendMoney(cost)
	return true
}

func (e *Economy) upgradeWeapon(f *systems.Frame, z *world.Zone) bool {
	if !spendCoins(f, f.Tuning.Economy.UpgradeCost) {
		return false
	}
	gs := f.State
	gs.WeaponLevel++

	tierName := ""
	if tier := e.tiers.ForLevel(gs.WeaponLevel); tier != nil {
		tierName = tier.Name
	}
	f.Events.Emit(event.Event{
		Kind:   event.WeaponUpgraded,
		Source: event.SourceZone,
		Time:   f.Now,
		Pos:    f.Player.Pos,
		Level:  gs.WeaponLevel,
		Note:   tierName,
	})
	logger.Component("economy").WithFields(logrus.Fields{
		"zone":   z.ID,
		"level":  gs.WeaponLevel,
		"tier":   tierName,
		"damage": combat.Damage(gs.WeaponLevel),
	}).Info("Weapon upgraded.")
	return true
}

func (e *Economy) upgradeTower(f *systems.Frame, z *world.Zone) bool {
	if !spendCoins(f, f.Tuning.Economy.UpgradeCost) {
		return false
	}
	e.tower.Upgrade()

	f.Events.Emit(event.Event{
		Kind:   event.TowerUpgraded,
		Source: event.SourceZone,
		Time:   f.Now,
		Pos:    e.tower.Pos,
		Level:  e.tower.Level,
		Note:   z.Name,
	})
	logger.Component("economy").WithFields(logrus.Fields{
		"zone":   z.ID,
		"level":  e.tower.Level,
		"damage": combat.TowerDamage(e.tower.Level),
	}).Info("Tower upgraded.")
	return true
}
