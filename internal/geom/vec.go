// Package geom provides the planar math shared by every simulation component.
//
// Positions are 3-component vectors but only X and Z take part in gameplay;
// Y is cosmetic (bob animation, stack height).
package geom

import "math"

// Vec3 is a position or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Planar drops the vertical component.
func (v Vec3) Planar() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// PlanarLen returns the length of v on the XZ plane.
func (v Vec3) PlanarLen() float64 {
	return math.Hypot(v.X, v.Z)
}

// PlanarDist returns the XZ distance between v and o.
func (v Vec3) PlanarDist(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Z-o.Z)
}

// PlanarNormalize returns the unit XZ direction of v, or the zero vector if v
// has no planar extent.
func (v Vec3) PlanarNormalize() Vec3 {
	l := v.PlanarLen()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / l, Z: v.Z / l}
}

// Yaw returns the facing angle (radians) of a direction on the XZ plane,
// measured the way a model looking down +Z is rotated around Y.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}

// Vec2 is a movement intent on the XZ plane.
type Vec2 struct {
	X, Z float64
}

// Len returns the magnitude of the intent.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// Normalize returns the unit intent, or zero for a zero intent.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Z: v.Z / l}
}

// ClampOutside radially projects p onto the circle of radius r around the
// origin when it lies inside it. The angle is preserved; Y is untouched.
// A point exactly at the origin is pushed along +Z.
func ClampOutside(p Vec3, r float64) Vec3 {
	d := p.PlanarLen()
	if d >= r {
		return p
	}
	if d == 0 {
		return Vec3{X: 0, Y: p.Y, Z: r}
	}
	s := r / d
	return Vec3{X: p.X * s, Y: p.Y, Z: p.Z * s}
}
