package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/snowhunt/internal/combat"
	"github.com/samdwyer/snowhunt/internal/economy"
	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
	"github.com/samdwyer/snowhunt/internal/horde"
	"github.com/samdwyer/snowhunt/internal/systems"
	"github.com/samdwyer/snowhunt/internal/telemetry"
	"github.com/samdwyer/snowhunt/internal/ui"
	"github.com/samdwyer/snowhunt/internal/world"
	"github.com/samdwyer/snowhunt/pkg/logger"
)

// Input is the external feed for one tick.
type Input struct {
	Now  float64   // Simulated seconds since start
	Dt   float64   // Seconds since the previous tick
	Move geom.Vec2 // Movement intent, magnitude <= 1
}

// Sim owns every piece of simulation state and advances it one tick at a
// time. It has no terminal dependency.
type Sim struct {
	tuning *gamedata.Tuning
	tiers  *gamedata.TierRegistry

	state  *entity.GameState
	player *entity.Player
	tower  *entity.Tower
	pop    *horde.Population
	ai     *horde.AI
	field  *world.Field
	items  *world.Items
	econ   *economy.Economy
	events *event.Queue

	hud   ui.HUD
	ticks int
}

// NewSim builds the field, spawns the enemies and places the player at the
// origin.
func NewSim(ctx context.Context, cfg Config, tuning *gamedata.Tuning) *Sim {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	field := world.Build(ctx, tuning)
	items := world.NewItems(tuning.World.PileStep, tuning.World.PileRadius)
	tower := entity.NewTower(field.TowerPos)
	tiers := gamedata.NewTierRegistry(tuning.WeaponTiers)
	pop := horde.NewPopulation(tuning, rng)

	s := &Sim{
		tuning: tuning,
		tiers:  tiers,
		state:  entity.NewGameState(tuning.Player.StartHealth),
		player: entity.NewPlayer(geom.Vec3{}, tuning.Player.StackStep),
		tower:  tower,
		pop:    pop,
		ai:     horde.NewAI(pop, tuning),
		field:  field,
		items:  items,
		econ:   economy.New(field, items, tower, tiers),
		events: event.NewQueue(),
	}

	count := cfg.EnemyCount
	if count == 0 {
		count = tuning.World.EnemyCount
	}
	pop.Spawn(ctx, count)
	s.hud = s.snapshot(0, 0)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("game.enemies", count),
		attribute.String("game.session_id", telemetry.SessionID()),
	)
	logger.Component("game").WithFields(logrus.Fields{
		"seed":    seed,
		"enemies": count,
	}).Info("Simulation initialized.")
	return s
}

// Step advances the simulation by one tick in the fixed order: movement,
// enemy AI, player auto-attack, tower, zone actions, pickups, HUD snapshot.
func (s *Sim) Step(in Input) ui.HUD {
	f := &systems.Frame{
		Now:    in.Now,
		Dt:     in.Dt,
		State:  s.state,
		Player: s.player,
		Events: s.events,
		Tuning: s.tuning,
	}

	systems.MovePlayer(f, in.Move, s.field.Boxes)
	stats := s.ai.Update(in.Now, in.Dt, f)
	systems.AutoAttack(f, s.pop)
	systems.UpdateTower(f, s.tower, s.pop)
	s.econ.Update(f)
	s.econ.Pickup(f)

	s.ticks++
	s.hud = s.snapshot(in.Now, stats.Chasers)
	return s.hud
}

func (s *Sim) snapshot(now float64, chasers int) ui.HUD {
	gs := s.state
	hud := ui.HUD{
		Time:           now,
		Level:          gs.Level,
		Experience:     gs.Experience,
		NextLevelAt:    combat.ExperienceRequired(gs.Level + 1),
		Health:         gs.Health,
		MaxHealth:      gs.MaxHealth,
		WeaponLevel:    gs.WeaponLevel,
		Damage:         combat.Damage(gs.WeaponLevel),
		ArmorLevel:     gs.ArmorLevel,
		MeatCount:      gs.MeatCount,
		ProcessedMeats: gs.ProcessedMeats,
		Money:          gs.Money,
		Currency:       gs.Currency(s.tuning.Economy.CurrencyRate),
		Carried:        s.player.Stack.Len(),
		TowerActive:    s.tower.Active,
		TowerLevel:     s.tower.Level,
		Enemies:        s.pop.Len(),
		Chasers:        chasers,
	}
	if tier := s.tiers.ForLevel(gs.WeaponLevel); tier != nil {
		hud.WeaponTier = tier.Name
		hud.WeaponColor = tier.TCellColor()
	}
	if z := s.field.ZoneAt(s.player.Pos, s.tuning.Economy.ZoneMargin); z != nil {
		hud.Zone = z.Name
	}
	return hud
}

// View returns everything the renderer needs for the current state.
func (s *Sim) View() ui.View {
	return ui.View{
		HUD: s.hud,
		Player: ui.PlayerView{
			Pos:    s.player.Pos,
			Facing: s.player.Facing,
			Moving: s.player.Moving,
			Stack:  s.player.Stack.Items(),
		},
		Enemies: s.pop.Snapshots(),
		Items:   s.items.All(),
		Tower:   *s.tower,
		Field:   s.field,
	}
}

// Events returns the queue gameplay events are emitted to.
func (s *Sim) Events() *event.Queue {
	return s.events
}

// HUD returns the snapshot taken at the end of the last tick.
func (s *Sim) HUD() ui.HUD {
	return s.hud
}

// Ticks returns the number of steps taken.
func (s *Sim) Ticks() int {
	return s.ticks
}
