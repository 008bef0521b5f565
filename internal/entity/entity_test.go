package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/snowhunt/internal/geom"
)

const step = 0.095

func assertPacked(t *testing.T, s *HeadStack) {
	t.Helper()
	for i, it := range s.Items() {
		assert.InDelta(t, float64(i)*step, it.Height, 1e-12, "item %d height", i)
	}
}

func TestHeadStackPushHeights(t *testing.T) {
	s := NewHeadStack(step)
	s.Push(ItemRaw)
	s.Push(ItemCooked)
	s.Push(ItemCoin)

	require.Equal(t, 3, s.Len())
	assertPacked(t, s)
	assert.Equal(t, ItemCoin, s.Items()[2].Kind)
}

func TestHeadStackRemoveFromTop(t *testing.T) {
	s := NewHeadStack(step)
	for _, k := range []ItemKind{ItemRaw, ItemCoin, ItemRaw, ItemCooked, ItemRaw} {
		s.Push(k)
	}

	got := s.Remove(ItemRaw, 1)
	assert.Equal(t, 1, got)

	kinds := []ItemKind{}
	for _, it := range s.Items() {
		kinds = append(kinds, it.Kind)
	}
	// The topmost raw (index 4) went first.
	assert.Equal(t, []ItemKind{ItemRaw, ItemCoin, ItemRaw, ItemCooked}, kinds)
	assertPacked(t, s)

	got = s.Remove(ItemRaw, 1)
	assert.Equal(t, 1, got)
	assert.Equal(t, ItemCoin, s.Items()[1].Kind)
	assertPacked(t, s)
}

func TestHeadStackPartialRemove(t *testing.T) {
	s := NewHeadStack(step)
	s.Push(ItemCoin)
	s.Push(ItemRaw)
	s.Push(ItemCoin)

	assert.Equal(t, 2, s.Remove(ItemCoin, 5))
	assert.Equal(t, 0, s.Count(ItemCoin))
	assert.Equal(t, 1, s.Len())
	assertPacked(t, s)

	assert.Equal(t, 0, s.Remove(ItemCooked, 1))
	assert.Equal(t, 1, s.Len())
}

func TestHeadStackPackInvariantAfterMixedSequence(t *testing.T) {
	s := NewHeadStack(step)
	ops := []struct {
		push   bool
		kind   ItemKind
		remove int
	}{
		{true, ItemRaw, 0},
		{true, ItemRaw, 0},
		{true, ItemCooked, 0},
		{false, ItemRaw, 1},
		{true, ItemCoin, 0},
		{true, ItemCoin, 0},
		{false, ItemCooked, 3},
		{true, ItemRaw, 0},
		{false, ItemCoin, 1},
	}
	for _, op := range ops {
		if op.push {
			s.Push(op.kind)
		} else {
			s.Remove(op.kind, op.remove)
		}
		assertPacked(t, s)
	}
	assert.Equal(t, 3, s.Len())
}

func TestGameStateDefaults(t *testing.T) {
	s := NewGameState(100)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 100, s.Health)
	assert.Equal(t, 100, s.MaxHealth)
	assert.Equal(t, 1, s.WeaponLevel)
	assert.Equal(t, 1, s.ArmorLevel)
	assert.Zero(t, s.Money)
}

func TestGameStateApplyDamageFullHealsAtZero(t *testing.T) {
	s := NewGameState(100)
	assert.False(t, s.ApplyDamage(40))
	assert.Equal(t, 60, s.Health)

	assert.True(t, s.ApplyDamage(60))
	assert.Equal(t, 100, s.Health, "zero health restores to max")

	assert.True(t, s.ApplyDamage(500))
	assert.Equal(t, 100, s.Health)

	assert.False(t, s.ApplyDamage(0))
	assert.Equal(t, 100, s.Health)
}

func TestGameStateHealClamps(t *testing.T) {
	s := NewGameState(100)
	s.Health = 90
	assert.Equal(t, 10, s.Heal(50))
	assert.Equal(t, 100, s.Health)
}

func TestGameStateCurrency(t *testing.T) {
	s := NewGameState(100)
	s.Money = 7
	assert.Equal(t, 70, s.Currency(10))
	s.SpendMoney(10)
	assert.Zero(t, s.Money)
}

func TestTowerUpgrade(t *testing.T) {
	tower := NewTower(geom.V3(0, 0, -5))
	assert.False(t, tower.Active)
	assert.Zero(t, tower.Level)

	tower.Upgrade()
	assert.True(t, tower.Active)
	assert.Equal(t, 1, tower.Level)

	for i := 0; i < 20; i++ {
		tower.Upgrade()
	}
	assert.Equal(t, 21, tower.Level)
}

func TestPlayerInvulnerable(t *testing.T) {
	p := NewPlayer(geom.Vec3{}, step)
	assert.False(t, p.Invulnerable(0.1, 0.6), "no hit landed yet")

	p.MarkDamaged(1.0)
	assert.True(t, p.Invulnerable(1.3, 0.6))
	assert.False(t, p.Invulnerable(1.6, 0.6))
}

func TestItemKindString(t *testing.T) {
	assert.Equal(t, "raw", ItemRaw.String())
	assert.Equal(t, "cooked", ItemCooked.String())
	assert.Equal(t, "coin", ItemCoin.String())
	assert.Equal(t, "unknown", ItemKind(42).String())
}
