package economy

import (
	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/systems"
)

// Pickup moves every cooked pile and coin within reach of the player onto
// the head-stack. Coins are also added to money. It returns the number of
// items picked up.
func (e *Economy) Pickup(f *systems.Frame) int {
	def := f.Tuning.Economy
	n := e.pick(f, entity.ItemCooked, def.MeatPickupRadius)
	coins := e.pick(f, entity.ItemCoin, def.CoinPickupRadius)
	f.State.Money += coins
	return n + coins
}

func (e *Economy) pick(f *systems.Frame, kind entity.ItemKind, radius float64) int {
	picked := 0
	for _, it := range e.items.Within(f.Player.Pos, radius, kind) {
		if !e.items.Remove(it.ID) {
			continue
		}
		f.Player.Stack.Push(kind)
		picked++
		f.Events.Emit(event.Event{
			Kind:   event.ItemPicked,
			Source: event.SourcePlayer,
			Time:   f.Now,
			Pos:    it.Pos,
			Amount: 1,
			Note:   kind.String(),
		})
	}
	return picked
}
