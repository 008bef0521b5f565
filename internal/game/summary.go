package game

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/snowhunt/internal/event"
)

// Summary tallies a session from its drained events.
type Summary struct {
	PlayerKills    int
	TowerKills     int
	LevelUps       int
	WeaponUpgrades int
	TowerUpgrades  int
	HitsTaken      int
	DamageTaken    int
	ItemsCooked    int
	CoinsMinted    int
	ItemsPicked    int
}

// Record adds one event to the tally.
func (s *Summary) Record(e event.Event) {
	switch e.Kind {
	case event.EnemyKilled:
		if e.Source == event.SourceTower {
			s.TowerKills++
		} else {
			s.PlayerKills++
		}
	case event.LeveledUp:
		s.LevelUps++
	case event.WeaponUpgraded:
		s.WeaponUpgrades++
	case event.TowerUpgraded:
		s.TowerUpgrades++
	case event.PlayerDamaged:
		s.HitsTaken++
		s.DamageTaken += e.Amount
	case event.ItemCooked:
		s.ItemsCooked++
	case event.CoinMinted:
		s.CoinsMinted++
	case event.ItemPicked:
		s.ItemsPicked++
	}
}

// Kills returns all kills regardless of source.
func (s *Summary) Kills() int {
	return s.PlayerKills + s.TowerKills
}

// Attributes returns the tally as span attributes.
func (s *Summary) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("session.player_kills", s.PlayerKills),
		attribute.Int("session.tower_kills", s.TowerKills),
		attribute.Int("session.level_ups", s.LevelUps),
		attribute.Int("session.weapon_upgrades", s.WeaponUpgrades),
		attribute.Int("session.tower_upgrades", s.TowerUpgrades),
		attribute.Int("session.hits_taken", s.HitsTaken),
		attribute.Int("session.damage_taken", s.DamageTaken),
		attribute.Int("session.items_cooked", s.ItemsCooked),
		attribute.Int("session.coins_minted", s.CoinsMinted),
	}
}

// Fields returns the tally as log fields.
func (s *Summary) Fields() logrus.Fields {
	return logrus.Fields{
		"player_kills":    s.PlayerKills,
		"tower_kills":     s.TowerKills,
		"level_ups":       s.LevelUps,
		"weapon_upgrades": s.WeaponUpgrades,
		"tower_upgrades":  s.TowerUpgrades,
		"damage_taken":    s.DamageTaken,
		"items_cooked":    s.ItemsCooked,
	}
}
