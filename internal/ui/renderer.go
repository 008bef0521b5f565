package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snowhunt/internal/entity"
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/geom"
	"github.com/samdwyer/snowhunt/internal/horde"
)

// Terminal cells are about twice as tall as wide, so one world unit is one
// column but half a row.
const (
	colsPerUnit = 1.0
	rowsPerUnit = 0.5

	hudRows    = 2 // Status lines at the top
	footerRows = 1 // Head-stack line at the bottom

	effectRise = 2.0 // Rows a floating text climbs over its lifetime
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	tuning *gamedata.Tuning
	zones  map[string]tcell.Color

	camera geom.Vec3
	cx, cy int
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, tuning *gamedata.Tuning) *Renderer {
	zones := make(map[string]tcell.Color, len(tuning.Zones))
	for i := range tuning.Zones {
		zones[tuning.Zones[i].ID] = tuning.Zones[i].TCellColor()
	}
	return &Renderer{
		screen: screen,
		tuning: tuning,
		zones:  zones,
	}
}

// Render draws one frame, top-down and centered on the player.
func (r *Renderer) Render(v View, fx *Effects, now float64) {
	r.screen.Clear()

	w, h := r.screen.Size()
	r.camera = v.Player.Pos
	r.cx = w / 2
	r.cy = hudRows + (h-hudRows-footerRows)/2

	r.drawGround(v, w, h)
	r.drawZones(v)
	r.drawBoxes(v)
	r.drawItems(v)
	r.drawTower(v)
	r.drawShots(fx)
	r.drawEnemies(v)
	r.drawPlayer(v)
	r.drawEffects(fx, now)
	r.drawHUD(v.HUD, w)
	r.drawStack(v.Player.Stack, h)

	r.screen.Show()
}

// Project maps a world position to a screen cell for the current camera.
func (r *Renderer) Project(p geom.Vec3) (int, int) {
	x := r.cx + int(math.Round((p.X-r.camera.X)*colsPerUnit))
	y := r.cy + int(math.Round((p.Z-r.camera.Z)*rowsPerUnit))
	return x, y
}

// unproject maps a screen cell back to the ground plane.
func (r *Renderer) unproject(x, y int) geom.Vec3 {
	return geom.Vec3{
		X: r.camera.X + float64(x-r.cx)/colsPerUnit,
		Z: r.camera.Z + float64(y-r.cy)/rowsPerUnit,
	}
}

func (r *Renderer) inView(x, y int) bool {
	w, h := r.screen.Size()
	return x >= 0 && x < w && y >= hudRows && y < h-footerRows
}

func (r *Renderer) put(p geom.Vec3, ch rune, style tcell.Style) {
	x, y := r.Project(p)
	if r.inView(x, y) {
		r.screen.SetContent(x, y, ch, style)
	}
}

// drawGround marks the hunting ground and the safe-zone ring.
func (r *Renderer) drawGround(v View, w, h int) {
	if v.Field == nil {
		return
	}
	ground := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	ring := tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	halfCell := 0.5 / rowsPerUnit

	for y := hudRows; y < h-footerRows; y++ {
		for x := 0; x < w; x++ {
			p := r.unproject(x, y)
			d := p.PlanarLen()
			switch {
			case math.Abs(d-v.Field.SafeZoneRadius) < halfCell/2:
				r.screen.SetContent(x, y, '·', ring)
			case v.Field.SpawnArea.Contains(p, 0) && (x+y)%4 == 0:
				r.screen.SetContent(x, y, '.', ground)
			}
		}
	}
}

func (r *Renderer) drawZones(v View) {
	if v.Field == nil {
		return
	}
	for _, z := range v.Field.Zones {
		color, ok := r.zones[z.ID]
		if !ok {
			color = tcell.ColorDarkGreen
		}
		style := tcell.StyleDefault.Background(color).Foreground(tcell.ColorBlack)
		r.fillRect(z.Area, ' ', style)

		x, y := r.Project(z.Center())
		label := []rune(z.Name)
		x -= len(label) / 2
		for i, ch := range label {
			if r.inView(x+i, y) {
				r.screen.SetContent(x+i, y, ch, style)
			}
		}
	}
}

func (r *Renderer) drawBoxes(v View) {
	if v.Field == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, box := range v.Field.Boxes {
		r.fillRect(box, '#', style)
	}
}

func (r *Renderer) fillRect(rect geom.Rect, ch rune, style tcell.Style) {
	x0, y0 := r.Project(geom.Vec3{X: rect.MinX, Z: rect.MinZ})
	x1, y1 := r.Project(geom.Vec3{X: rect.MaxX, Z: rect.MaxZ})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.inView(x, y) {
				r.screen.SetContent(x, y, ch, style)
			}
		}
	}
}

func (r *Renderer) drawItems(v View) {
	for _, it := range v.Items {
		r.put(it.Pos, it.Kind.Symbol(), itemStyle(it.Kind))
	}
}

func itemStyle(kind entity.ItemKind) tcell.Style {
	switch kind {
	case entity.ItemRaw:
		return tcell.StyleDefault.Foreground(tcell.ColorIndianRed)
	case entity.ItemCooked:
		return tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)
	case entity.ItemCoin:
		return tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) drawTower(v View) {
	def := &r.tuning.Tower
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if v.Tower.Active {
		style = tcell.StyleDefault.Foreground(def.TCellColor()).Bold(true)
	}
	r.put(v.Tower.Pos, def.GlyphRune(), style)
}

// drawShots draws each live tower shot as a dotted line.
func (r *Renderer) drawShots(fx *Effects) {
	if fx == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(r.tuning.Tower.TCellColor())
	for _, s := range fx.Shots() {
		x0, y0 := r.Project(s.From)
		x1, y1 := r.Project(s.To)
		steps := max(abs(x1-x0), abs(y1-y0))
		for i := 1; i < steps; i++ {
			x := x0 + (x1-x0)*i/steps
			y := y0 + (y1-y0)*i/steps
			if r.inView(x, y) {
				r.screen.SetContent(x, y, '∙', style)
			}
		}
	}
}

// drawEnemies draws wanderers in lower case and chasers in upper case,
// colored by remaining health.
func (r *Renderer) drawEnemies(v View) {
	def := &r.tuning.Enemy
	glyph := def.GlyphRune()
	for _, e := range v.Enemies {
		ch := glyph
		if e.State == horde.Chasing {
			ch = upper(glyph)
		}
		style := tcell.StyleDefault.Foreground(healthColor(e.HP, e.MaxHP, def.TCellColor()))
		if e.State == horde.Chasing {
			style = style.Bold(true)
		}
		r.put(e.Pos, ch, style)
	}
}

func healthColor(hp, maxHP int, full tcell.Color) tcell.Color {
	if maxHP <= 0 || hp >= maxHP {
		return full
	}
	switch frac := float64(hp) / float64(maxHP); {
	case frac > 0.6:
		return tcell.ColorYellowGreen
	case frac > 0.3:
		return tcell.ColorOrange
	default:
		return tcell.ColorRed
	}
}

func (r *Renderer) drawPlayer(v View) {
	def := &r.tuning.Player
	style := tcell.StyleDefault.Foreground(def.TCellColor()).Bold(true)
	r.put(v.Player.Pos, def.GlyphRune(), style)
}

func (r *Renderer) drawEffects(fx *Effects, now float64) {
	if fx == nil {
		return
	}
	for _, e := range fx.Texts() {
		x, y := r.Project(e.Pos)
		if life := e.Expires - e.Born; life > 0 {
			y -= int(effectRise * (now - e.Born) / life)
		}
		text := []rune(e.Text)
		x -= len(text) / 2
		style := tcell.StyleDefault.Foreground(e.Color).Bold(true)
		for i, ch := range text {
			if r.inView(x+i, y) {
				r.screen.SetContent(x+i, y, ch, style)
			}
		}
	}
}

func (r *Renderer) drawHUD(hud HUD, w int) {
	label := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	health := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if hud.Health*3 < hud.MaxHealth {
		health = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}

	x := r.screen.SetString(0, 0, fmt.Sprintf("Lv %d  XP %d/%d  ", hud.Level, hud.Experience, hud.NextLevelAt), label)
	x = r.screen.SetString(x, 0, fmt.Sprintf("HP %d/%d  ", hud.Health, hud.MaxHealth), health)
	x = r.screen.SetString(x, 0, fmt.Sprintf("Weapon %d ", hud.WeaponLevel), label)
	x = r.screen.SetString(x, 0, hud.WeaponTier, tcell.StyleDefault.Foreground(hud.WeaponColor).Bold(true))
	r.screen.SetString(x, 0, fmt.Sprintf(" (%d dmg)  Armor %d", hud.Damage, hud.ArmorLevel), label)

	tower := "Tower -"
	if hud.TowerActive {
		tower = fmt.Sprintf("Tower Lv %d", hud.TowerLevel)
	}
	line := fmt.Sprintf("Meat %d  Cooked %d  ¥%d  %s  Wolves %d (%d hunting)",
		hud.MeatCount, hud.ProcessedMeats, hud.Currency, tower, hud.Enemies, hud.Chasers)
	if hud.Zone != "" {
		line += "  [" + hud.Zone + "]"
	}
	if runes := []rune(line); len(runes) > w {
		line = string(runes[:w])
	}
	r.screen.SetString(0, 1, line, label)
}

// drawStack draws the head-stack bottom first on the footer line.
func (r *Renderer) drawStack(stack []entity.StackItem, h int) {
	y := h - 1
	x := r.screen.SetString(0, y, "Carrying: ", tcell.StyleDefault.Foreground(tcell.ColorGray))
	for _, it := range stack {
		r.screen.SetContent(x, y, it.Kind.Symbol(), itemStyle(it.Kind))
		x++
	}
}

// RenderMessage displays a message at the bottom of the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.SetString(0, y, msg, style)
}

func upper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
