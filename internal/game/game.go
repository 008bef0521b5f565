package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/telemetry"
	"github.com/samdwyer/snowhunt/internal/ui"
	"github.com/samdwyer/snowhunt/pkg/logger"
)

// Game runs the simulation in the terminal.
type Game struct {
	cfg      Config
	tuning   *gamedata.Tuning
	screen   *ui.Screen
	renderer *ui.Renderer
	input    *ui.Input
	effects  *ui.Effects
	sim      *Sim
	summary  Summary
	state    State
	running  bool

	start   time.Time
	simTime float64 // Seconds advanced while playing
}

// New creates a new game instance on a fresh terminal screen.
func New(cfg Config, tuning *gamedata.Tuning) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, tuning, screen), nil
}

// NewWithScreen creates a game drawing to the given screen.
func NewWithScreen(cfg Config, tuning *gamedata.Tuning, screen *ui.Screen) *Game {
	return &Game{
		cfg:      cfg,
		tuning:   tuning,
		screen:   screen,
		renderer: ui.NewRenderer(screen, tuning),
		input:    ui.NewInput(),
		effects:  ui.NewEffects(),
		state:    StatePlaying,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, session := tracer.Start(ctx, "game.session")
	defer session.End()

	g.sim = NewSim(ctx, g.cfg, g.tuning)

	events := make(chan tcell.Event)
	done := make(chan struct{})
	go g.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	g.start = time.Now()
	last := g.start
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ev)
		case tick := <-ticker.C:
			wall := tick.Sub(g.start).Seconds()
			dt := min(tick.Sub(last).Seconds(), maxDt)
			last = tick
			g.frame(ctx, tracer, wall, dt)
		}
	}

	close(done)
	g.screen.Close()

	session.SetAttributes(g.summary.Attributes()...)
	session.SetAttributes(
		attribute.Int("session.ticks", g.sim.Ticks()),
		attribute.Float64("session.seconds", g.simTime),
		attribute.Int("session.final_level", g.sim.HUD().Level),
	)
	logger.Component("game").
		WithFields(g.summary.Fields()).
		WithField("seconds", g.simTime).
		Info("Session ended.")
	return nil
}

// frame steps the simulation (unless paused), drains its events and draws.
func (g *Game) frame(ctx context.Context, tracer trace.Tracer, wall, dt float64) {
	if g.state == StatePlaying {
		g.simTime += dt
		g.sim.Step(Input{
			Now:  g.simTime,
			Dt:   dt,
			Move: g.input.Intent(wall),
		})
		drain(ctx, tracer, g.sim.Events(), g.effects, &g.summary, g.simTime)
		g.effects.Expire(g.simTime)
	}

	g.renderer.Render(g.sim.View(), g.effects, g.simTime)
	if g.state == StatePaused {
		_, h := g.screen.Size()
		g.renderer.RenderMessage("PAUSED - press p to resume", h/2)
		g.screen.Show()
	}
}

// pollEvents forwards terminal events until the screen is closed.
func (g *Game) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
			return
		case 'p', 'P':
			g.togglePause()
			return
		}
	}
	g.input.HandleKey(ev, time.Since(g.start).Seconds())
}

func (g *Game) togglePause() {
	if g.state == StatePlaying {
		g.state = StatePaused
		g.input.Release()
	} else {
		g.state = StatePlaying
	}
	logger.Component("game").WithField("state", g.state.String()).Debug("Pause toggled.")
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
