// Package world provides the static field layout and the item piles lying on it.
package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
	"github.com/samdwyer/snowhunt/internal/telemetry"
)

// Field represents the playable ground. It is read-only once built.
type Field struct {
	SpawnArea      geom.Rect
	SafeZoneRadius float64
	ContainRadius  float64
	Boxes          []geom.Rect
	BoxNames       []string
	Zones          []*Zone
	TowerPos       geom.Vec3
}

// Build lays out the field from the tuning.
func Build(ctx context.Context, tuning *gamedata.Tuning) *Field {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "field.build")
	defer span.End()

	startTime := time.Now()

	f := &Field{
		SpawnArea:      tuning.World.SpawnArea(),
		SafeZoneRadius: tuning.World.SafeZoneRadius,
		ContainRadius:  tuning.World.ContainRadius(),
		TowerPos:       tuning.Tower.Position,
	}
	for _, b := range tuning.Boxes {
		f.Boxes = append(f.Boxes, b.Area)
		f.BoxNames = append(f.BoxNames, b.Name)
	}
	for i := range tuning.Zones {
		f.Zones = append(f.Zones, NewZone(tuning.Zones[i]))
	}

	span.SetAttributes(
		attribute.Float64("field.width", f.SpawnArea.Width()),
		attribute.Float64("field.depth", f.SpawnArea.Depth()),
		attribute.Int("field.box_count", len(f.Boxes)),
		attribute.Int("field.zone_count", len(f.Zones)),
		attribute.Int64("field.build_us", time.Since(startTime).Microseconds()),
	)
	return f
}

// ZoneAt returns the first zone whose margin-expanded area contains pos,
// or nil.
func (f *Field) ZoneAt(pos geom.Vec3, margin float64) *Zone {
	for _, z := range f.Zones {
		if z.Contains(pos, margin) {
			return z
		}
	}
	return nil
}

// ZoneOf returns the zone of the given kind, or nil.
func (f *Field) ZoneOf(kind gamedata.ZoneKind) *Zone {
	for _, z := range f.Zones {
		if z.Kind == kind {
			return z
		}
	}
	return nil
}

// Bounds returns the smallest rectangle covering the spawn area, every box
// and every zone.
func (f *Field) Bounds() geom.Rect {
	b := f.SpawnArea
	grow := func(r geom.Rect) {
		b.MinX = min(b.MinX, r.MinX)
		b.MaxX = max(b.MaxX, r.MaxX)
		b.MinZ = min(b.MinZ, r.MinZ)
		b.MaxZ = max(b.MaxZ, r.MaxZ)
	}
	for _, box := range f.Boxes {
		grow(box)
	}
	for _, z := range f.Zones {
		grow(z.Area)
		grow(geom.Rect{MinX: z.Output.X, MaxX: z.Output.X, MinZ: z.Output.Z, MaxZ: z.Output.Z})
	}
	return b
}
