package ui

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-nav/common"
	"github.com/go-gl/mathgl/mgl32"
)

type screenTransform struct {
	mu *sync.Mutex

	name    string
	anchors Rect
	parent  ScreenTransform
	enabled bool
}

// ScreenTransform positions a UI element on screen. Its anchors are a rectangle in the parent's
// local space; a transform without a parent is anchored to the full screen.
//
// Screen points exchanged with a ScreenTransform are in normalized screen space ([0,1], y down).
type ScreenTransform interface {
	// Name returns the element name.
	Name() string

	// Anchors returns the anchor rectangle in parent-local space.
	//
	// Returns:
	//   - Rect: the anchors
	Anchors() Rect

	// SetAnchors replaces the anchor rectangle.
	//
	// Parameters:
	//   - r: the new anchors in parent-local space
	SetAnchors(r Rect)

	// Center returns the anchors' center in parent-local space.
	//
	// Returns:
	//   - mgl32.Vec2: the center
	Center() mgl32.Vec2

	// SetCenter moves the anchors so their center is c, keeping their size.
	//
	// Parameters:
	//   - c: the new center in parent-local space
	SetCenter(c mgl32.Vec2)

	// Parent returns the parent transform, or nil for a root element.
	Parent() ScreenTransform

	// Enabled returns whether the element is shown.
	Enabled() bool

	// SetEnabled shows or hides the element.
	SetEnabled(enabled bool)

	// LocalPointToScreenPoint converts a point in this element's local space to a screen point.
	//
	// Parameters:
	//   - p: point in local [-1,1] space
	//
	// Returns:
	//   - mgl32.Vec2: normalized screen point
	LocalPointToScreenPoint(p mgl32.Vec2) mgl32.Vec2

	// ScreenPointToParentPoint converts a screen point to this element's parent-local space,
	// the space its anchors are expressed in.
	//
	// Parameters:
	//   - p: normalized screen point
	//
	// Returns:
	//   - mgl32.Vec2: the point in parent-local space
	ScreenPointToParentPoint(p mgl32.Vec2) mgl32.Vec2

	// ScreenCenter returns the anchors' center as a screen point.
	//
	// Returns:
	//   - mgl32.Vec2: normalized screen point
	ScreenCenter() mgl32.Vec2

	// ContainsScreenPoint reports whether the screen point lies inside this element.
	//
	// Parameters:
	//   - p: normalized screen point
	//
	// Returns:
	//   - bool: true if the point is inside the element's rectangle
	ContainsScreenPoint(p mgl32.Vec2) bool
}

var _ ScreenTransform = &screenTransform{}

// NewScreenTransform creates a ScreenTransform covering its whole parent unless configured otherwise.
//
// Parameters:
//   - options: functional options to configure the transform
//
// Returns:
//   - ScreenTransform: the newly created transform
func NewScreenTransform(options ...ScreenTransformOption) ScreenTransform {
	st := &screenTransform{
		mu:      &sync.Mutex{},
		anchors: FullRect,
		enabled: true,
	}
	for _, option := range options {
		option(st)
	}
	return st
}

func (st *screenTransform) Name() string {
	return st.name
}

func (st *screenTransform) Anchors() Rect {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.anchors
}

func (st *screenTransform) SetAnchors(r Rect) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.anchors = r
}

func (st *screenTransform) Center() mgl32.Vec2 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.anchors.Center()
}

func (st *screenTransform) SetCenter(c mgl32.Vec2) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.anchors = st.anchors.WithCenter(c)
}

func (st *screenTransform) Parent() ScreenTransform {
	return st.parent
}

func (st *screenTransform) Enabled() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.enabled
}

func (st *screenTransform) SetEnabled(enabled bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.enabled = enabled
}

func (st *screenTransform) LocalPointToScreenPoint(p mgl32.Vec2) mgl32.Vec2 {
	return common.ToNormalizedSpace(st.screenRect().toOuter(p))
}

func (st *screenTransform) ScreenPointToParentPoint(p mgl32.Vec2) mgl32.Vec2 {
	return parentScreenRect(st.parent).toInner(common.ToCenteredSpace(p))
}

func (st *screenTransform) ScreenCenter() mgl32.Vec2 {
	center := st.Center()
	return common.ToNormalizedSpace(parentScreenRect(st.parent).toOuter(center))
}

func (st *screenTransform) ContainsScreenPoint(p mgl32.Vec2) bool {
	return st.screenRect().Contains(common.ToCenteredSpace(p))
}

// screenRect returns this element's rectangle in centered screen space.
func (st *screenTransform) screenRect() Rect {
	outer := parentScreenRect(st.parent)
	a := st.Anchors()
	bl := outer.toOuter(mgl32.Vec2{a.Left, a.Bottom})
	tr := outer.toOuter(mgl32.Vec2{a.Right, a.Top})
	return Rect{Left: bl[0], Right: tr[0], Bottom: bl[1], Top: tr[1]}
}

// parentScreenRect returns the centered screen rectangle of parent, or the full screen for nil.
func parentScreenRect(parent ScreenTransform) Rect {
	if parent == nil {
		return FullRect
	}
	if st, ok := parent.(*screenTransform); ok {
		return st.screenRect()
	}
	bl := common.ToCenteredSpace(parent.LocalPointToScreenPoint(mgl32.Vec2{-1, -1}))
	tr := common.ToCenteredSpace(parent.LocalPointToScreenPoint(mgl32.Vec2{1, 1}))
	return Rect{Left: bl[0], Right: tr[0], Bottom: bl[1], Top: tr[1]}
}
