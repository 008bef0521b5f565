package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
	"github.com/samdwyer/snowhunt/internal/systems"
	"github.com/samdwyer/snowhunt/internal/world"
)

type fixture struct {
	frame *systems.Frame
	econ  *Economy
	field *world.Field
	items *world.Items
	tower *entity.Tower
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tuning := gamedata.DefaultTuning()
	field := world.Build(context.Background(), tuning)
	items := world.NewItems(tuning.World.PileStep, tuning.World.PileRadius)
	tower := entity.NewTower(tuning.Tower.Position)
	return &fixture{
		frame: &systems.Frame{
			State:  entity.NewGameState(tuning.Player.StartHealth),
			Player: entity.NewPlayer(geom.Vec3{}, tuning.Player.StackStep),
			Events: event.NewQueue(),
			Tuning: tuning,
		},
		econ:  New(field, items, tower, gamedata.NewTierRegistry(tuning.WeaponTiers)),
		field: field,
		items: items,
		tower: tower,
	}
}

func (fx *fixture) standIn(kind gamedata.ZoneKind) {
	fx.frame.Player.Pos = fx.field.ZoneOf(kind).Center()
}

func (fx *fixture) give(kind entity.ItemKind, n int) {
	for i := 0; i < n; i++ {
		fx.frame.Player.Stack.Push(kind)
	}
}

func (fx *fixture) tick(now float64) {
	fx.frame.Now = now
	fx.econ.Update(fx.frame)
	fx.econ.Pickup(fx.frame)
}

func TestCookingTurnsRawIntoStackedPiles(t *testing.T) {
	fx := newFixture(t)
	fx.standIn(gamedata.ZoneCooking)
	fx.give(entity.ItemRaw, 3)
	fx.frame.State.MeatCount = 3

	fx.tick(0.5)
	assert.Equal(t, 3, fx.frame.Player.Stack.Count(entity.ItemRaw), "nothing before the first interval")

	for _, now := range []float64{1, 1.5, 2, 2.5, 3} {
		fx.tick(now)
	}

	assert.Zero(t, fx.frame.Player.Stack.Count(entity.ItemRaw))
	assert.Zero(t, fx.frame.State.MeatCount)
	assert.Equal(t, 3, fx.frame.State.ProcessedMeats)

	out := fx.field.ZoneOf(gamedata.ZoneCooking).Output
	piles := fx.items.Within(out, 0.5, entity.ItemCooked)
	require.Len(t, piles, 3)
	for i, want := range []float64{0, 0.09, 0.18} {
		assert.InDelta(t, want, piles[i].Pos.Y, 1e-9)
	}
	assert.Equal(t, 3, fx.frame.Events.Count(event.ItemCooked))
}

func TestZoneTimerSurvivesLeaving(t *testing.T) {
	fx := newFixture(t)
	fx.give(entity.ItemRaw, 3)

	fx.standIn(gamedata.ZoneCooking)
	fx.tick(1)
	require.Equal(t, 2, fx.frame.Player.Stack.Count(entity.ItemRaw))

	fx.frame.Player.Pos = geom.V3(0, 0, 20)
	fx.tick(1.5)

	fx.standIn(gamedata.ZoneCooking)
	fx.tick(1.7)
	assert.Equal(t, 2, fx.frame.Player.Stack.Count(entity.ItemRaw))

	fx.tick(2)
	assert.Equal(t, 1, fx.frame.Player.Stack.Count(entity.ItemRaw))
}

func TestShopSellsCookedForCoin(t *testing.T) {
	fx := newFixture(t)
	fx.standIn(gamedata.ZoneShop)
	fx.give(entity.ItemCooked, 2)

	fx.tick(1)

	assert.Equal(t, 1, fx.frame.State.Money)
	assert.Equal(t, 1, fx.frame.Player.Stack.Count(entity.ItemCooked))
	out := fx.field.ZoneOf(gamedata.ZoneShop).Output
	assert.Len(t, fx.items.Within(out, 0.5, entity.ItemCoin), 1)
	assert.Equal(t, 1, fx.frame.Events.Count(event.CoinMinted))
}

func TestShopWithoutCookedDoesNothing(t *testing.T) {
	fx := newFixture(t)
	fx.standIn(gamedata.ZoneShop)
	fx.give(entity.ItemRaw, 2)

	fx.tick(1)

	assert.Zero(t, fx.frame.State.Money)
	assert.Zero(t, fx.items.Len())
	assert.Equal(t, 2, fx.frame.Player.Stack.Count(entity.ItemRaw))
}

func TestForgeWithTooFewCoinsDoesNothing(t *testing.T) {
	fx := newFixture(t)
	fx.standIn(gamedata.ZoneForge)
	fx.give(entity.ItemCoin, 4)
	fx.frame.State.Money = 4

	for _, now := range []float64{1, 2, 3} {
		fx.tick(now)
	}

	assert.Equal(t, 1, fx.frame.State.WeaponLevel)
	assert.Equal(t, 4, fx.frame.Player.Stack.Count(entity.ItemCoin))
	assert.Equal(t, 4, fx.frame.State.Money)
	assert.Zero(t, fx.frame.Events.Count(event.WeaponUpgraded))
}

func TestForgeUpgradesWeapon(t *testing.T) {
	fx := newFixture(t)
	fx.standIn(gamedata.ZoneForge)
	fx.give(entity.ItemRaw, 1)
	fx.give(entity.ItemCoin, 6)
	fx.frame.State.Money = 6

	fx.tick(1)
	fx.tick(2)

	assert.Equal(t, 2, fx.frame.State.WeaponLevel)
	assert.Equal(t, 1, fx.frame.Player.Stack.Count(entity.ItemCoin))
	assert.Equal(t, 1, fx.frame.Player.Stack.Count(entity.ItemRaw))
	assert.Equal(t, 1, fx.frame.State.Money)

	events := fx.frame.Events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, event.WeaponUpgraded, events[0].Kind)
	assert.Equal(t, 2, events[0].Level)
	assert.Equal(t, "Wooden Club", events[0].Note)
}

func TestTowerZoneActivatesAndUpgradesTower(t *testing.T) {
	fx := newFixture(t)
	fx.standIn(gamedata.ZoneTower)
	fx.give(entity.ItemCoin, 10)
	fx.frame.State.Money = 10

	fx.tick(1)
	assert.True(t, fx.tower.Active)
	assert.Equal(t, 1, fx.tower.Level)

	fx.tick(2)
	assert.Equal(t, 2, fx.tower.Level)
	assert.Zero(t, fx.frame.State.Money)
	assert.Equal(t, 2, fx.frame.Events.Count(event.TowerUpgraded))
}

func TestPickup(t *testing.T) {
	fx := newFixture(t)
	fx.frame.Player.Pos = geom.V3(0, 0, -20)
	fx.items.Spawn(entity.ItemCooked, geom.V3(2, 0, -20))
	fx.items.Spawn(entity.ItemCoin, geom.V3(0, 0, -17.6))
	fx.items.Spawn(entity.ItemCooked, geom.V3(0, 0, -17.6))
	fx.items.Spawn(entity.ItemCoin, geom.V3(10, 0, -20))

	assert.Equal(t, 2, fx.econ.Pickup(fx.frame))

	stack := fx.frame.Player.Stack
	assert.Equal(t, 1, stack.Count(entity.ItemCooked))
	assert.Equal(t, 1, stack.Count(entity.ItemCoin))
	assert.Equal(t, 1, fx.frame.State.Money)
	assert.Equal(t, 2, fx.items.Len())
	assert.Equal(t, 2, fx.frame.Events.Count(event.ItemPicked))
}
