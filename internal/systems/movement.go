package systems

import (
	"github.com/samdwyer/snowhunt/internal/geom"
)

// MovePlayer moves the player along the normalized intent at the configured
// speed. A move whose destination overlaps any collision box (inflated by the
// player radius) is rejected whole; there is no sliding along walls.
// It returns true if the player moved.
func MovePlayer(f *Frame, intent geom.Vec2, boxes []geom.Rect) bool {
	p := f.Player
	p.Moving = false

	dir := intent.Normalize()
	if dir == (geom.Vec2{}) {
		return false
	}

	def := f.Tuning.Player
	step := def.MoveSpeed * f.Dt
	candidate := geom.Vec3{
		X: p.Pos.X + dir.X*step,
		Y: p.Pos.Y,
		Z: p.Pos.Z + dir.Z*step,
	}
	p.Facing = geom.Vec3{X: dir.X, Z: dir.Z}.Yaw()

	if Blocked(candidate, def.Radius, boxes) {
		return false
	}

	p.Pos = candidate
	p.Moving = true
	return true
}

// Blocked reports whether a body of the given radius at pos overlaps any box.
func Blocked(pos geom.Vec3, radius float64, boxes []geom.Rect) bool {
	for _, box := range boxes {
		b := box.Inflate(radius)
		if pos.X > b.MinX && pos.X < b.MaxX && pos.Z > b.MinZ && pos.Z < b.MaxZ {
			return true
		}
	}
	return false
}
