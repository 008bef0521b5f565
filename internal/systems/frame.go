// Package systems implements the player's per-tick behavior (movement,
// auto-attack, damage intake, progression) and the tower.
package systems

import (
	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
	"github.com/samdwyer/snowhunt/internal/horde"
)

// Frame is the per-tick borrow of the game loop's state. Systems receive it
// for one tick and must not keep it afterwards.
type Frame struct {
	Now    float64
	Dt     float64
	State  *entity.GameState
	Player *entity.Player
	Events *event.Queue
	Tuning *gamedata.Tuning
}

// Position returns the player position for the enemy AI.
func (f *Frame) Position() geom.Vec3 {
	return f.Player.Pos
}

// ReceiveAttack routes an enemy attack into the player's damage intake.
func (f *Frame) ReceiveAttack(now float64) {
	ReceiveAttack(f, now)
}

// emit stamps and queues an event.
func (f *Frame) emit(e event.Event) {
	e.Time = f.Now
	f.Events.Emit(e)
}

// Ensure Frame implements horde.Target
var _ horde.Target = (*Frame)(nil)
