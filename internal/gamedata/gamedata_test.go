package gamedata

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningDefaults(t *testing.T) {
	tuning, err := LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 100.0, tuning.World.SpawnWidth)
	assert.Equal(t, 50.0, tuning.World.SpawnDepth)
	assert.Equal(t, 4.0, tuning.World.SafeZoneRadius)
	assert.Equal(t, 6.0, tuning.World.ContainRadius())
	assert.Equal(t, 30, tuning.World.EnemyCount)

	assert.Equal(t, 100, tuning.Enemy.MaxHP)
	assert.Equal(t, 2.0, tuning.Enemy.Speed)
	assert.Equal(t, 5, tuning.Enemy.MaxChasers)
	assert.Equal(t, 1.5, tuning.Enemy.AttackCooldown)

	assert.Equal(t, 0.3, tuning.Player.AttackCooldown)
	assert.Equal(t, 0.6, tuning.Player.IFrames)
	assert.Equal(t, 0.095, tuning.Player.StackStep)

	assert.Equal(t, 15.0, tuning.Tower.AttackRange)
	assert.Equal(t, 1.0, tuning.Tower.AttackCooldown)

	assert.Equal(t, 5, tuning.Economy.UpgradeCost)
	assert.Len(t, tuning.Zones, 4)
}

func TestDefaultTuningReturnsFreshCopies(t *testing.T) {
	a := DefaultTuning()
	b := DefaultTuning()
	a.Enemy.MaxHP = 1
	assert.Equal(t, 100, b.Enemy.MaxHP)
}

func TestSpawnArea(t *testing.T) {
	w := WorldDef{SpawnWidth: 100, SpawnDepth: 50}
	area := w.SpawnArea()
	assert.Equal(t, -50.0, area.MinX)
	assert.Equal(t, 50.0, area.MaxX)
	assert.Equal(t, -50.0, area.MinZ)
	assert.Equal(t, 0.0, area.MaxZ)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode[WorldDef](strings.NewReader(`{"spawnWidth": 10, "spawnWdith": 3}`))
	assert.Error(t, err)

	w, err := Decode[WorldDef](strings.NewReader(`{"spawnWidth": 10}`))
	require.NoError(t, err)
	assert.Equal(t, 10.0, w.SpawnWidth)
}

func TestValidate(t *testing.T) {
	tuning := DefaultTuning()
	require.NoError(t, tuning.Validate())

	tuning.World.SafeZoneRadius = 80
	tuning.Enemy.MaxHP = 0
	tuning.Zones = append(tuning.Zones, ZoneDef{ID: "dup", Kind: ZoneShop})
	err := tuning.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "safe zone")
	assert.Contains(t, err.Error(), "maxHp")
	assert.Contains(t, err.Error(), "duplicate")
}

func TestTierRegistry(t *testing.T) {
	registry := NewTierRegistry([]WeaponTierDef{
		{MinLevel: 5, Name: "Steel"},
		{MinLevel: 1, Name: "Wood"},
		{MinLevel: 3, Name: "Iron"},
	})
	require.Equal(t, 3, registry.Count())

	tests := []struct {
		level int
		want  string
	}{
		{0, "Wood"},
		{1, "Wood"},
		{2, "Wood"},
		{3, "Iron"},
		{4, "Iron"},
		{5, "Steel"},
		{99, "Steel"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, registry.ForLevel(tt.level).Name, "level %d", tt.level)
	}

	assert.Nil(t, NewTierRegistry(nil).ForLevel(1))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#48DBFB", true},
		{"#FFF", true},
		{"invalid", false},
		{"#FFFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}
}

func TestParseHexColorShorthand(t *testing.T) {
	short, err := ParseHexColor("#0F8")
	require.NoError(t, err)
	long, err := ParseHexColor("00FF88")
	require.NoError(t, err)
	assert.Equal(t, long, short)
	assert.Equal(t, tcell.NewRGBColor(0, 0xFF, 0x88), long)
}

func TestEmbeddedColorsParse(t *testing.T) {
	tuning := DefaultTuning()
	for _, z := range tuning.Zones {
		_, err := ParseHexColor(z.Color)
		assert.NoError(t, err, "zone %s", z.ID)
	}
	for _, tier := range tuning.WeaponTiers {
		_, err := ParseHexColor(tier.Color)
		assert.NoError(t, err, "tier %s", tier.Name)
	}
	assert.Equal(t, 'w', tuning.Enemy.GlyphRune())
}
