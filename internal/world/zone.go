package world

import (
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
)

// Zone is a rectangle that triggers a periodic economic action while the
// player stands in it.
type Zone struct {
	ID     string
	Name   string
	Kind   gamedata.ZoneKind
	Area   geom.Rect
	Output geom.Vec3 // Where produced items are dropped

	// LastProcessedAt is the time of the last action. Leaving the zone does
	// not reset it.
	LastProcessedAt float64
}

// NewZone creates a zone from its definition.
func NewZone(def gamedata.ZoneDef) *Zone {
	return &Zone{
		ID:     def.ID,
		Name:   def.Name,
		Kind:   def.Kind,
		Area:   def.Area,
		Output: def.Output,
	}
}

// Contains reports whether pos is inside the area expanded by margin.
func (z *Zone) Contains(pos geom.Vec3, margin float64) bool {
	return z.Area.Contains(pos, margin)
}

// Center returns the center of the zone area.
func (z *Zone) Center() geom.Vec3 {
	return z.Area.Center()
}
