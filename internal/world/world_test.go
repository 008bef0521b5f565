package world

import (
	"context"
	"testing"

	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
)

func TestBuildField(t *testing.T) {
	tuning := gamedata.DefaultTuning()
	f := Build(context.Background(), tuning)

	if len(f.Zones) != len(tuning.Zones) {
		t.Fatalf("Zone count mismatch: %d != %d", len(f.Zones), len(tuning.Zones))
	}
	if len(f.Boxes) != len(tuning.Boxes) || len(f.BoxNames) != len(f.Boxes) {
		t.Fatalf("Box count mismatch: %d != %d", len(f.Boxes), len(tuning.Boxes))
	}
	if f.ContainRadius != 6 {
		t.Errorf("ContainRadius = %v, want 6", f.ContainRadius)
	}
	for _, kind := range []gamedata.ZoneKind{gamedata.ZoneCooking, gamedata.ZoneShop, gamedata.ZoneForge, gamedata.ZoneTower} {
		if f.ZoneOf(kind) == nil {
			t.Errorf("No zone of kind %s", kind)
		}
	}
}

func TestBuildDoesNotShareZoneState(t *testing.T) {
	tuning := gamedata.DefaultTuning()
	a := Build(context.Background(), tuning)
	b := Build(context.Background(), tuning)

	a.Zones[0].LastProcessedAt = 9
	if b.Zones[0].LastProcessedAt != 0 {
		t.Error("Zones of separate fields share state")
	}
}

func TestZoneAtUsesMargin(t *testing.T) {
	f := Build(context.Background(), gamedata.DefaultTuning())
	kitchen := f.ZoneOf(gamedata.ZoneCooking)
	center := kitchen.Center()

	if got := f.ZoneAt(center, 0.6); got != kitchen {
		t.Errorf("ZoneAt(center) = %v, want kitchen", got)
	}

	// Just outside the area but inside the margin.
	edge := geom.V3(kitchen.Area.MaxX+0.5, 0, center.Z)
	if f.ZoneAt(edge, 0) != nil {
		t.Error("Point outside area matched without margin")
	}
	if f.ZoneAt(edge, 0.6) != kitchen {
		t.Error("Point inside margin did not match")
	}

	if f.ZoneAt(geom.V3(0, 0, -30), 0.6) != nil {
		t.Error("Point in the hunting ground matched a zone")
	}
}

func TestBoundsCoverEverything(t *testing.T) {
	f := Build(context.Background(), gamedata.DefaultTuning())
	b := f.Bounds()

	for _, box := range f.Boxes {
		if !b.Contains(box.Center(), 0) {
			t.Errorf("Bounds %v miss box %v", b, box)
		}
	}
	for _, z := range f.Zones {
		if !b.Contains(z.Output, 0) {
			t.Errorf("Bounds %v miss output of %s", b, z.ID)
		}
	}
}

func TestItemsStackByKind(t *testing.T) {
	items := NewItems(0.09, 0.5)
	out := geom.V3(-14, 0, 2.5)

	wantHeights := []float64{0, 0.09, 0.18}
	for i, want := range wantHeights {
		it := items.Spawn(entity.ItemCooked, out)
		if diff := it.Pos.Y - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Item %d height = %v, want %v", i, it.Pos.Y, want)
		}
	}

	coin := items.Spawn(entity.ItemCoin, out)
	if coin.Pos.Y != 0 {
		t.Errorf("Coin height = %v, want 0 (other kinds do not stack)", coin.Pos.Y)
	}

	far := items.Spawn(entity.ItemCooked, geom.V3(0, 0, 20))
	if far.Pos.Y != 0 {
		t.Errorf("Far item height = %v, want 0", far.Pos.Y)
	}
}

func TestItemsRemoveAndWithin(t *testing.T) {
	items := NewItems(0.09, 0.5)
	a := items.Spawn(entity.ItemCoin, geom.V3(1, 0, 1))
	items.Spawn(entity.ItemCoin, geom.V3(5, 0, 5))
	items.Spawn(entity.ItemCooked, geom.V3(1, 0, 1))

	if got := len(items.Within(geom.V3(0, 0, 0), 2.5, entity.ItemCoin)); got != 1 {
		t.Errorf("Within = %d coins, want 1", got)
	}
	if !items.Remove(a.ID) {
		t.Error("Remove returned false for a live item")
	}
	if items.Remove(a.ID) {
		t.Error("Remove returned true twice")
	}
	if items.Len() != 2 || len(items.All()) != 2 {
		t.Errorf("Len = %d, want 2", items.Len())
	}
}
