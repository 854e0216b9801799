package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// WorldUp is the world up axis (+Y).
	WorldUp = mgl32.Vec3{0, 1, 0}

	// WorldForward is the canonical forward axis (-Z), matching the view direction of an unrotated camera.
	WorldForward = mgl32.Vec3{0, 0, -1}
)

// ToCenteredSpace converts a point from normalized screen space ([0,1], y down) to centered
// space ([-1,1], y up).
//
// Parameters:
//   - p: the normalized screen point
//
// Returns:
//   - mgl32.Vec2: the point in centered space
func ToCenteredSpace(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{p[0]*2 - 1, 1 - p[1]*2}
}

// ToNormalizedSpace converts a point from centered space ([-1,1], y up) back to normalized
// screen space ([0,1], y down). It is the inverse of ToCenteredSpace.
//
// Parameters:
//   - p: the centered point
//
// Returns:
//   - mgl32.Vec2: the point in normalized screen space
func ToNormalizedSpace(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{(p[0] + 1) / 2, (1 - p[1]) / 2}
}

// MoveTowards returns the point reached by moving from `from` toward `to` by at most maxDistance.
// If `to` is closer than maxDistance it is returned unchanged.
//
// Parameters:
//   - from: the start point
//   - to: the destination point
//   - maxDistance: the maximum distance to travel
//
// Returns:
//   - mgl32.Vec3: the resulting point
func MoveTowards(from, to mgl32.Vec3, maxDistance float32) mgl32.Vec3 {
	delta := to.Sub(from)
	dist := delta.Len()
	if dist <= maxDistance || dist == 0 {
		return to
	}
	return from.Add(delta.Mul(maxDistance / dist))
}

// ProjectOnPlane removes the component of v along the plane normal.
// A zero normal returns v unchanged.
//
// Parameters:
//   - v: the vector to project
//   - normal: the plane normal (need not be unit length)
//
// Returns:
//   - mgl32.Vec3: the projection of v onto the plane
func ProjectOnPlane(v, normal mgl32.Vec3) mgl32.Vec3 {
	nn := normal.Dot(normal)
	if nn == 0 {
		return v
	}
	return v.Sub(normal.Mul(v.Dot(normal) / nn))
}

// LerpVec2 linearly interpolates between a and b by t.
func LerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// LerpVec3 linearly interpolates between a and b by t.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// HorizontalDistance returns the distance between a and b with the Y components zeroed.
//
// Parameters:
//   - a, b: world-space points
//
// Returns:
//   - float32: the distance measured in the XZ plane
func HorizontalDistance(a, b mgl32.Vec3) float32 {
	a[1], b[1] = 0, 0
	return a.Sub(b).Len()
}

// Roll extracts the rotation about the view axis from a quaternion, wrapped into [0, 2π).
// The rotation is decomposed as yaw (Y), then pitch (X), then roll (Z), so yaw and pitch alone
// always give a roll of 0.
//
// Parameters:
//   - q: the rotation
//
// Returns:
//   - float32: the Z Euler angle in radians
func Roll(q mgl32.Quat) float32 {
	x, y, z, w := float64(q.V[0]), float64(q.V[1]), float64(q.V[2]), float64(q.W)
	roll := math.Atan2(2*(x*y+w*z), 1-2*(x*x+z*z))
	if roll < 0 {
		roll += 2 * math.Pi
	}
	return float32(roll)
}

// YawTowards returns the rotation about the world up axis that maps WorldForward onto the horizontal
// component of dir. ok is false when dir has no horizontal component.
//
// Parameters:
//   - dir: the direction to face
//
// Returns:
//   - mgl32.Quat: the yaw rotation
//   - bool: false if dir is (nearly) vertical
func YawTowards(dir mgl32.Vec3) (mgl32.Quat, bool) {
	flat := ProjectOnPlane(dir, WorldUp)
	if flat.Len() < 1e-6 {
		return mgl32.QuatIdent(), false
	}
	// R_y(θ)·(0,0,-1) = (-sinθ, 0, -cosθ)
	flat = flat.Normalize()
	angle := float32(math.Atan2(float64(-flat[0]), float64(-flat[2])))
	return mgl32.QuatRotate(angle, WorldUp), true
}

// PointerPosition converts a cursor position in window coordinates to normalized screen space.
// A degenerate window size yields the screen center.
//
// Parameters:
//   - x, y: cursor position, origin at the top left
//   - width, height: window size in the same units
//
// Returns:
//   - mgl32.Vec2: the normalized position, clamped to [0,1]
func PointerPosition(x, y float64, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{0.5, 0.5}
	}
	return mgl32.Vec2{
		mgl32.Clamp(float32(x/float64(width)), 0, 1),
		mgl32.Clamp(float32(y/float64(height)), 0, 1),
	}
}
