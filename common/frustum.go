package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is the set of points p with Normal·p + Distance = 0.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the distance from p to the plane, positive on the normal's side.
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum holds the six planes of a view volume, oriented so the inside is positive.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// FrustumFromMatrix extracts the planes of a view-projection matrix (Gribb/Hartmann).
//
// Parameters:
//   - viewProj: the combined projection * view matrix
//
// Returns:
//   - Frustum: the frustum with unit-length plane normals
func FrustumFromMatrix(viewProj mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)

	var f Frustum
	for i, row := range [6]mgl32.Vec4{
		FrustumLeft:   r3.Add(r0),
		FrustumRight:  r3.Sub(r0),
		FrustumBottom: r3.Add(r1),
		FrustumTop:    r3.Sub(r1),
		FrustumNear:   r3.Add(r2),
		FrustumFar:    r3.Sub(r2),
	} {
		plane := Plane{Normal: row.Vec3(), Distance: row[3]}
		if l := plane.Normal.Len(); l > 0 {
			plane.Normal = plane.Normal.Mul(1 / l)
			plane.Distance /= l
		}
		f.Planes[i] = plane
	}
	return f
}

// ContainsPoint reports whether p lies inside every plane of the frustum.
func (f Frustum) ContainsPoint(p mgl32.Vec3) bool {
	for _, plane := range f.Planes {
		if plane.SignedDistance(p) < 0 {
			return false
		}
	}
	return true
}
