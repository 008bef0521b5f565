package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snowhunt/internal/geom"
)

// holdWindow is how long a key press keeps a direction held. Terminals
// report presses and auto-repeat but never releases.
const holdWindow = 0.2

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// Input turns key presses into a movement intent.
type Input struct {
	pressedAt [dirCount]float64
	pressed   [dirCount]bool
}

// NewInput creates an input tracker with nothing held.
func NewInput() *Input {
	return &Input{}
}

// HandleKey records a key press at now. It returns false for keys that are
// not movement keys.
func (in *Input) HandleKey(ev *tcell.EventKey, now float64) bool {
	dir, ok := keyDirection(ev)
	if !ok {
		return false
	}
	in.pressedAt[dir] = now
	in.pressed[dir] = true
	return true
}

// Intent returns the movement intent for the directions held at now.
// Up is toward -Z. The result is not normalized.
func (in *Input) Intent(now float64) geom.Vec2 {
	var v geom.Vec2
	if in.held(dirUp, now) {
		v.Z--
	}
	if in.held(dirDown, now) {
		v.Z++
	}
	if in.held(dirLeft, now) {
		v.X--
	}
	if in.held(dirRight, now) {
		v.X++
	}
	return v
}

// Release drops every held direction.
func (in *Input) Release() {
	in.pressed = [dirCount]bool{}
}

func (in *Input) held(d direction, now float64) bool {
	return in.pressed[d] && now-in.pressedAt[d] < holdWindow
}

func keyDirection(ev *tcell.EventKey) (direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dirUp, true
	case tcell.KeyDown:
		return dirDown, true
	case tcell.KeyLeft:
		return dirLeft, true
	case tcell.KeyRight:
		return dirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return dirUp, true
		case 's', 'S':
			return dirDown, true
		case 'a', 'A':
			return dirLeft, true
		case 'd', 'D':
			return dirRight, true
		}
	}
	return 0, false
}
