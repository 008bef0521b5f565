package world

import (
	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/geom"
)

// ItemID identifies a world item.
type ItemID uint64

// Item is one item lying on the ground.
type Item struct {
	ID   ItemID
	Kind entity.ItemKind
	Pos  geom.Vec3 // Y is the pile height
}

// Items holds the world-item piles in spawn order.
type Items struct {
	step   float64
	radius float64
	next   ItemID
	items  []Item
}

// NewItems creates an empty item set. New items stack by step for every
// same-kind item already within radius of the drop point.
func NewItems(step, radius float64) *Items {
	return &Items{step: step, radius: radius}
}

// Spawn drops an item at pos, stacked on any same-kind items nearby.
func (s *Items) Spawn(kind entity.ItemKind, pos geom.Vec3) Item {
	nearby := len(s.Within(pos, s.radius, kind))
	s.next++
	it := Item{
		ID:   s.next,
		Kind: kind,
		Pos:  geom.Vec3{X: pos.X, Y: float64(nearby) * s.step, Z: pos.Z},
	}
	s.items = append(s.items, it)
	return it
}

// Remove deletes the item with the given id and reports whether it existed.
func (s *Items) Remove(id ItemID) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Within returns the items of the given kind within r of pos on the ground plane.
func (s *Items) Within(pos geom.Vec3, r float64, kind entity.ItemKind) []Item {
	var out []Item
	for _, it := range s.items {
		if it.Kind == kind && it.Pos.PlanarDist(pos) <= r {
			out = append(out, it)
		}
	}
	return out
}

// All returns a copy of every item.
func (s *Items) All() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *Items) Len() int {
	return len(s.items)
}
