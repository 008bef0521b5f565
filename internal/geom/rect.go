package geom

// Rect is an axis-aligned rectangle on the XZ plane.
type Rect struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Center returns the middle of the rectangle.
func (r Rect) Center() Vec3 {
	return Vec3{X: (r.MinX + r.MaxX) / 2, Z: (r.MinZ + r.MaxZ) / 2}
}

// Width returns the X extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Depth returns the Z extent.
func (r Rect) Depth() float64 { return r.MaxZ - r.MinZ }

// Inflate grows the rectangle by m on every side.
func (r Rect) Inflate(m float64) Rect {
	return Rect{MinX: r.MinX - m, MaxX: r.MaxX + m, MinZ: r.MinZ - m, MaxZ: r.MaxZ + m}
}

// Contains reports whether p lies inside the rectangle expanded by margin.
// Edges are inclusive.
func (r Rect) Contains(p Vec3, margin float64) bool {
	return p.X >= r.MinX-margin && p.X <= r.MaxX+margin &&
		p.Z >= r.MinZ-margin && p.Z <= r.MaxZ+margin
}

// Intersects returns true if this rectangle overlaps another one.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX < other.MaxX &&
		r.MaxX > other.MinX &&
		r.MinZ < other.MaxZ &&
		r.MaxZ > other.MinZ
}
