// Package horde owns the enemy population and drives its AI.
//
// Enemies live in a slot arena and are addressed by generational handles.
// Population.Damage is the only code path that changes enemy health; other
// packages read enemies through copies and snapshots.
package horde

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
	"github.com/samdwyer/snowhunt/internal/telemetry"
	"github.com/samdwyer/snowhunt/pkg/logger"
)

// maxSampleAttempts bounds rejection sampling; Tuning.Validate guarantees the
// accepted region is non-empty.
const maxSampleAttempts = 1000

// State is an enemy behavior state.
type State int

const (
	// Wandering is the initial state: drift toward a random wander target at reduced speed.
	Wandering State = iota
	// Chasing pursues and attacks the player at full speed.
	Chasing
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Wandering:
		return "wandering"
	case Chasing:
		return "chasing"
	default:
		return "unknown"
	}
}

// Handle addresses one enemy. A handle goes stale when its enemy dies; stale
// handles are detected in O(1). The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// Enemy is one roaming enemy.
type Enemy struct {
	Pos          geom.Vec3
	Facing       float64
	State        State
	WanderTarget geom.Vec3
	LastAttackAt float64
	Moving       bool

	hp    int
	maxHP int
}

// HP returns the current hit points. It may be negative on the killing blow.
func (e *Enemy) HP() int { return e.hp }

// MaxHP returns the hit points the enemy spawned with.
func (e *Enemy) MaxHP() int { return e.maxHP }

// Snapshot is the read-only per-tick view of one enemy.
type Snapshot struct {
	Handle Handle
	Pos    geom.Vec3
	Facing float64
	HP     int
	MaxHP  int
	State  State
	Moving bool
}

// Hit is the outcome of Population.Damage.
type Hit struct {
	Applied   bool      // False for stale handles
	Killed    bool      // The enemy was removed by this hit
	Remaining int       // HP after the hit
	Pos       geom.Vec3 // Where the enemy was when hit
}

type slot struct {
	enemy Enemy
	gen   uint32
	live  bool
}

// Population is the enemy arena.
type Population struct {
	slots []slot
	free  []uint32
	live  int
	world gamedata.WorldDef
	def   gamedata.EnemyDef
	rng   *rand.Rand
}

// NewPopulation creates an empty population using the given tuning.
func NewPopulation(tuning *gamedata.Tuning, rng *rand.Rand) *Population {
	return &Population{
		world: tuning.World,
		def:   tuning.Enemy,
		rng:   rng,
	}
}

// Spawn places n enemies by rejection sampling inside the spawn area and
// outside the safe zone. Every enemy faces the origin, starts Wandering and
// gets its own wander target.
func (p *Population) Spawn(ctx context.Context, n int) []Handle {
	tracer := telemetry.Tracer("horde")
	_, span := tracer.Start(ctx, "horde.spawn")
	defer span.End()

	handles := make([]Handle, 0, n)
	for i := 0; i < n; i++ {
		handles = append(handles, p.SpawnAt(p.SamplePoint()))
	}

	span.SetAttributes(
		attribute.Int("horde.spawned", n),
		attribute.Int("horde.alive", p.live),
	)
	logger.Component("horde").WithFields(logrus.Fields{
		"spawned": n,
		"alive":   p.live,
	}).Info("Enemy batch spawned.")

	return handles
}

// SpawnAt places one enemy at pos with full health.
func (p *Population) SpawnAt(pos geom.Vec3) Handle {
	e := Enemy{
		Pos:          pos,
		Facing:       geom.Vec3{}.Sub(pos).Yaw(),
		State:        Wandering,
		WanderTarget: p.SamplePoint(),
		hp:           p.def.MaxHP,
		maxHP:        p.def.MaxHP,
	}

	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, slot{})
	}
	s := &p.slots[idx]
	s.gen++
	s.enemy = e
	s.live = true
	p.live++
	return Handle{index: idx, gen: s.gen}
}

// SamplePoint draws a point uniformly from the spawn rectangle, rejecting
// points inside the safe-zone circle.
func (p *Population) SamplePoint() geom.Vec3 {
	w := p.world
	var pt geom.Vec3
	for i := 0; i < maxSampleAttempts; i++ {
		pt = geom.Vec3{
			X: (p.rng.Float64() - 0.5) * w.SpawnWidth,
			Z: -p.rng.Float64() * w.SpawnDepth,
		}
		if pt.PlanarLen() >= w.SafeZoneRadius {
			return pt
		}
	}
	return geom.ClampOutside(pt, w.SafeZoneRadius)
}

// Damage subtracts amount from the enemy's health. At hp <= 0 the enemy is
// removed before Damage returns and the Hit reports Killed; granting rewards
// is the caller's job. A stale handle is a no-op.
func (p *Population) Damage(h Handle, amount int) Hit {
	e := p.lookup(h)
	if e == nil {
		return Hit{}
	}
	e.hp -= amount
	hit := Hit{Applied: true, Remaining: e.hp, Pos: e.Pos}
	if e.hp <= 0 {
		p.remove(h)
		hit.Killed = true
	}
	return hit
}

// Get returns a copy of the enemy behind h.
func (p *Population) Get(h Handle) (Enemy, bool) {
	e := p.lookup(h)
	if e == nil {
		return Enemy{}, false
	}
	return *e, true
}

// Alive reports whether h still addresses a live enemy.
func (p *Population) Alive(h Handle) bool {
	return p.lookup(h) != nil
}

// Len returns the number of live enemies.
func (p *Population) Len() int {
	return p.live
}

// Handles returns the handles of all live enemies in arena order.
func (p *Population) Handles() []Handle {
	out := make([]Handle, 0, p.live)
	for i := range p.slots {
		if p.slots[i].live {
			out = append(out, Handle{index: uint32(i), gen: p.slots[i].gen})
		}
	}
	return out
}

// Snapshots returns the read-only per-tick view of all live enemies.
func (p *Population) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, p.live)
	for i := range p.slots {
		s := &p.slots[i]
		if !s.live {
			continue
		}
		out = append(out, Snapshot{
			Handle: Handle{index: uint32(i), gen: s.gen},
			Pos:    s.enemy.Pos,
			Facing: s.enemy.Facing,
			HP:     s.enemy.hp,
			MaxHP:  s.enemy.maxHP,
			State:  s.enemy.State,
			Moving: s.enemy.Moving,
		})
	}
	return out
}

// InRange returns the handles of all live enemies within r of pos.
func (p *Population) InRange(pos geom.Vec3, r float64) []Handle {
	var out []Handle
	for i := range p.slots {
		s := &p.slots[i]
		if s.live && s.enemy.Pos.PlanarDist(pos) <= r {
			out = append(out, Handle{index: uint32(i), gen: s.gen})
		}
	}
	return out
}

// Nearest returns the closest live enemy within r of pos.
func (p *Population) Nearest(pos geom.Vec3, r float64) (Handle, bool) {
	var (
		best  Handle
		bestD = r
		found bool
	)
	for i := range p.slots {
		s := &p.slots[i]
		if !s.live {
			continue
		}
		if d := s.enemy.Pos.PlanarDist(pos); d < bestD || (!found && d <= bestD) {
			best = Handle{index: uint32(i), gen: s.gen}
			bestD = d
			found = true
		}
	}
	return best, found
}

// CountState returns how many live enemies are in the given state.
func (p *Population) CountState(state State) int {
	n := 0
	for i := range p.slots {
		if p.slots[i].live && p.slots[i].enemy.State == state {
			n++
		}
	}
	return n
}

func (p *Population) lookup(h Handle) *Enemy {
	if int(h.index) >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.index]
	if !s.live || s.gen != h.gen || h.gen == 0 {
		return nil
	}
	return &s.enemy
}

func (p *Population) remove(h Handle) {
	s := &p.slots[h.index]
	s.live = false
	s.enemy = Enemy{}
	p.free = append(p.free, h.index)
	p.live--
}

// forEach iterates mutable enemies in arena order.
func (p *Population) forEach(fn func(h Handle, e *Enemy)) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.live {
			fn(Handle{index: uint32(i), gen: s.gen}, &s.enemy)
		}
	}
}
