package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snowhunt/internal/event"
	"github.com/samdwyer/snowhunt/internal/ui"
)

const (
	textTTL = 0.9
	shotTTL = 0.15
)

// present turns one drained event into floating text. Enemy damage is
// shown only for the player's own hits.
func present(fx *ui.Effects, e event.Event, now float64) {
	switch e.Kind {
	case event.PlayerDamaged:
		fx.Add(fmt.Sprintf("-%d", e.Amount), e.Pos, tcell.ColorRed, now, textTTL)
	case event.EnemyDamaged:
		if e.Source == event.SourcePlayer {
			fx.Add(fmt.Sprintf("%d", e.Amount), e.Pos, tcell.ColorWhite, now, textTTL/2)
		}
	case event.EnemyKilled:
		fx.Add("+1 meat", e.Pos, tcell.ColorIndianRed, now, textTTL)
	case event.LeveledUp:
		fx.Add(fmt.Sprintf("LEVEL %d!", e.Level), e.Pos, tcell.ColorLime, now, textTTL*2)
	case event.WeaponUpgraded:
		fx.Add(e.Note+"!", e.Pos, tcell.ColorGold, now, textTTL*2)
	case event.TowerUpgraded:
		fx.Add(fmt.Sprintf("Tower Lv %d", e.Level), e.Pos, tcell.ColorAqua, now, textTTL*2)
	case event.TowerShot:
		fx.AddShot(e.Pos, e.Target, now, shotTTL)
	case event.CoinMinted:
		fx.Add("+$", e.Pos, tcell.ColorGold, now, textTTL)
	}
}

// traceEvent records the milestone events as spans under the session span.
func traceEvent(ctx context.Context, tracer trace.Tracer, e event.Event) {
	var name string
	attrs := []attribute.KeyValue{
		attribute.String("event.source", e.Source.String()),
		attribute.Float64("event.time", e.Time),
	}
	switch e.Kind {
	case event.EnemyKilled:
		name = "combat.kill"
	case event.LeveledUp:
		name = "progress.level_up"
		attrs = append(attrs, attribute.Int("player.level", e.Level))
	case event.WeaponUpgraded:
		name = "economy.upgrade"
		attrs = append(attrs,
			attribute.String("upgrade.target", "weapon"),
			attribute.Int("upgrade.level", e.Level),
			attribute.String("weapon.tier", e.Note),
		)
	case event.TowerUpgraded:
		name = "economy.upgrade"
		attrs = append(attrs,
			attribute.String("upgrade.target", "tower"),
			attribute.Int("upgrade.level", e.Level),
		)
	default:
		return
	}
	_, span := tracer.Start(ctx, name)
	span.SetAttributes(attrs...)
	span.End()
}

// drain empties the event queue into the effects, the summary and telemetry.
func drain(ctx context.Context, tracer trace.Tracer, q *event.Queue, fx *ui.Effects, sum *Summary, now float64) int {
	events := q.Drain()
	for _, e := range events {
		sum.Record(e)
		present(fx, e, now)
		traceEvent(ctx, tracer, e)
	}
	return len(events)
}
