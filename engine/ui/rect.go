package ui

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in a parent's local space, where [-1,1] spans the parent
// on both axes and +Y points up.
type Rect struct {
	Left, Right, Bottom, Top float32
}

// FullRect covers the whole parent.
var FullRect = Rect{Left: -1, Right: 1, Bottom: -1, Top: 1}

// RectFromCenter builds a Rect from its center and full size.
//
// Parameters:
//   - center: rectangle center
//   - size: full width and height
//
// Returns:
//   - Rect: the rectangle
func RectFromCenter(center, size mgl32.Vec2) Rect {
	return Rect{
		Left:   center[0] - size[0]/2,
		Right:  center[0] + size[0]/2,
		Bottom: center[1] - size[1]/2,
		Top:    center[1] + size[1]/2,
	}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() mgl32.Vec2 {
	return mgl32.Vec2{(r.Left + r.Right) / 2, (r.Bottom + r.Top) / 2}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() mgl32.Vec2 {
	return mgl32.Vec2{r.Right - r.Left, r.Top - r.Bottom}
}

// WithCenter returns the rectangle moved so its midpoint is c, keeping its size.
func (r Rect) WithCenter(c mgl32.Vec2) Rect {
	return RectFromCenter(c, r.Size())
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p[0] >= r.Left && p[0] <= r.Right && p[1] >= r.Bottom && p[1] <= r.Top
}

// toOuter maps a point from this rectangle's own [-1,1] space into the space the rectangle is
// expressed in.
func (r Rect) toOuter(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		r.Left + (p[0]+1)/2*(r.Right-r.Left),
		r.Bottom + (p[1]+1)/2*(r.Top-r.Bottom),
	}
}

// toInner is the inverse of toOuter. Degenerate axes map to 0.
func (r Rect) toInner(p mgl32.Vec2) mgl32.Vec2 {
	var out mgl32.Vec2
	if w := r.Right - r.Left; w != 0 {
		out[0] = (p[0]-r.Left)/w*2 - 1
	}
	if h := r.Top - r.Bottom; h != 0 {
		out[1] = (p[1]-r.Bottom)/h*2 - 1
	}
	return out
}
