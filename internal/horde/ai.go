package horde

import (
	"sort"

	"github.com/samdwyer/snowhunt/internal/combat"
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
	"github.com/samdwyer/snowhunt/pkg/logger"
)

// rangeEpsilon keeps an enemy parked exactly at the collision radius inside
// its attack range.
const rangeEpsilon = 1e-9

// Target is what enemies pursue and attack. ReceiveAttack is called for every
// attack that is off cooldown; the target decides whether the hit lands.
type Target interface {
	Position() geom.Vec3
	ReceiveAttack(now float64)
}

// TickStats summarizes one AI update.
type TickStats struct {
	Chasers int
	Attacks int
}

// AI drives enemy behavior. It moves enemies and changes their behavior
// state but never touches their health.
type AI struct {
	pop       *Population
	def       gamedata.EnemyDef
	world     gamedata.WorldDef
	spawnArea geom.Rect

	candidates []candidate
	chasing    map[uint32]bool
}

type candidate struct {
	index uint32
	dist  float64
}

// NewAI creates the AI for pop.
func NewAI(pop *Population, tuning *gamedata.Tuning) *AI {
	return &AI{
		pop:       pop,
		def:       tuning.Enemy,
		world:     tuning.World,
		spawnArea: tuning.World.SpawnArea(),
		chasing:   make(map[uint32]bool),
	}
}

// Update advances every enemy by dt seconds at time now.
//
// Order: chaser selection, movement and attacks, then containment
// (safe-zone clamp, pairwise separation, player push-out).
func (ai *AI) Update(now, dt float64, target Target) TickStats {
	playerPos := target.Position()
	ai.selectChasers(playerPos)

	var stats TickStats
	ai.pop.forEach(func(h Handle, e *Enemy) {
		if ai.chasing[h.index] {
			e.State = Chasing
			stats.Chasers++
			if ai.chase(now, dt, e, playerPos) {
				target.ReceiveAttack(now)
				stats.Attacks++
			}
			return
		}
		e.State = Wandering
		ai.wander(dt, e)
	})

	ai.containSafeZone()
	ai.separate(dt)
	ai.pushFromPlayer(playerPos)

	if stats.Attacks > 0 {
		logger.Component("horde").WithField("attacks", stats.Attacks).Debug("Enemies attacked.")
	}
	return stats
}

// PlayerHuntable reports whether the player stands where enemies give chase:
// inside the spawn area and outside the safe zone.
func (ai *AI) PlayerHuntable(playerPos geom.Vec3) bool {
	return ai.spawnArea.Contains(playerPos, 0) &&
		playerPos.PlanarLen() >= ai.world.SafeZoneRadius
}

// selectChasers recomputes the set of at most MaxChasers enemies nearest to
// the player. The set is empty while the player is not huntable.
func (ai *AI) selectChasers(playerPos geom.Vec3) {
	clear(ai.chasing)
	if !ai.PlayerHuntable(playerPos) {
		return
	}

	ai.candidates = ai.candidates[:0]
	ai.pop.forEach(func(h Handle, e *Enemy) {
		d := e.Pos.PlanarDist(playerPos)
		if d <= ai.def.ChaseCutoff {
			ai.candidates = append(ai.candidates, candidate{index: h.index, dist: d})
		}
	})
	sort.SliceStable(ai.candidates, func(i, j int) bool {
		return ai.candidates[i].dist < ai.candidates[j].dist
	})

	n := min(ai.def.MaxChasers, len(ai.candidates))
	for _, c := range ai.candidates[:n] {
		ai.chasing[c.index] = true
	}
}

// chase moves e toward the player at full speed and reports whether it
// attacked this tick.
func (ai *AI) chase(now, dt float64, e *Enemy, playerPos geom.Vec3) bool {
	toPlayer := playerPos.Sub(e.Pos)
	dist := toPlayer.PlanarLen()
	e.Moving = false
	if dist > 0 {
		e.Facing = toPlayer.Yaw()
	}
	if dist > ai.def.PlayerCollisionRadius {
		step := min(ai.def.Speed*dt, dist)
		e.Pos = e.Pos.Add(toPlayer.PlanarNormalize().Scale(step))
		e.Moving = true
		dist = e.Pos.PlanarDist(playerPos)
	}

	if dist > ai.def.AttackRange+rangeEpsilon {
		return false
	}
	if !combat.Ready(now, e.LastAttackAt, ai.def.AttackCooldown) {
		return false
	}
	e.LastAttackAt = now
	return true
}

// wander moves e toward its wander target at reduced speed, picking a new
// target once the current one is within reach.
func (ai *AI) wander(dt float64, e *Enemy) {
	if e.Pos.PlanarDist(e.WanderTarget) < ai.def.WanderReach {
		e.WanderTarget = ai.pop.SamplePoint()
	}
	toTarget := e.WanderTarget.Sub(e.Pos)
	dist := toTarget.PlanarLen()
	e.Moving = false
	if dist == 0 {
		return
	}
	step := min(ai.def.Speed*ai.def.WanderSpeedFactor*dt, dist)
	e.Pos = e.Pos.Add(toTarget.PlanarNormalize().Scale(step))
	e.Facing = toTarget.Yaw()
	e.Moving = true
}

// containSafeZone projects every enemy back onto the containment circle.
func (ai *AI) containSafeZone() {
	r := ai.world.ContainRadius()
	ai.pop.forEach(func(_ Handle, e *Enemy) {
		e.Pos = geom.ClampOutside(e.Pos, r)
	})
}

// separate pushes overlapping enemy pairs apart. Each pair gets an equal and
// opposite push of (overlap/distance) * strength * dt, split between the two.
func (ai *AI) separate(dt float64) {
	radius := ai.def.SeparationRadius
	contain := ai.world.ContainRadius()

	var live []*Enemy
	ai.pop.forEach(func(_ Handle, e *Enemy) {
		live = append(live, e)
	})

	for i := 0; i < len(live); i++ {
		a := live[i]
		for j := i + 1; j < len(live); j++ {
			b := live[j]
			diff := a.Pos.Sub(b.Pos).Planar()
			dist := diff.PlanarLen()
			if dist >= radius || dist == 0 {
				continue
			}
			overlap := radius - dist
			push := diff.Scale((overlap / dist) * ai.def.SeparationStrength * dt * 0.5)
			a.Pos = geom.ClampOutside(a.Pos.Add(push), contain)
			b.Pos = geom.ClampOutside(b.Pos.Sub(push), contain)
		}
	}
}

// pushFromPlayer moves enemies that overlap the player out to exactly the
// collision radius along the player-to-enemy axis. The safe-zone clamp is
// re-applied so the containment circle holds at the end of every tick.
func (ai *AI) pushFromPlayer(playerPos geom.Vec3) {
	radius := ai.def.PlayerCollisionRadius
	contain := ai.world.ContainRadius()
	ai.pop.forEach(func(_ Handle, e *Enemy) {
		away := e.Pos.Sub(playerPos).Planar()
		dist := away.PlanarLen()
		if dist >= radius {
			return
		}
		dir := away.PlanarNormalize()
		if dist == 0 {
			// Directly on the player: push outward from the origin.
			dir = playerPos.PlanarNormalize()
			if dir == (geom.Vec3{}) {
				dir = geom.Vec3{Z: -1}
			}
		}
		pos := playerPos.Add(dir.Scale(radius))
		pos.Y = e.Pos.Y
		e.Pos = geom.ClampOutside(pos, contain)
	})
}
