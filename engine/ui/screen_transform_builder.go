package ui

// ScreenTransformOption is a functional option for configuring a ScreenTransform.
type ScreenTransformOption func(*screenTransform)

// WithName sets the element name.
//
// Parameters:
//   - name: the element name
//
// Returns:
//   - ScreenTransformOption: functional option to set the name
func WithName(name string) ScreenTransformOption {
	return func(st *screenTransform) {
		st.name = name
	}
}

// WithAnchors sets the anchor rectangle in parent-local space.
//
// Parameters:
//   - r: the anchors
//
// Returns:
//   - ScreenTransformOption: functional option to set the anchors
func WithAnchors(r Rect) ScreenTransformOption {
	return func(st *screenTransform) {
		st.anchors = r
	}
}

// WithParent nests the element inside another ScreenTransform.
//
// Parameters:
//   - parent: the parent transform
//
// Returns:
//   - ScreenTransformOption: functional option to set the parent
func WithParent(parent ScreenTransform) ScreenTransformOption {
	return func(st *screenTransform) {
		st.parent = parent
	}
}

// WithEnabled sets whether the element starts shown.
//
// Parameters:
//   - enabled: false to start hidden
//
// Returns:
//   - ScreenTransformOption: functional option to set the enabled flag
func WithEnabled(enabled bool) ScreenTransformOption {
	return func(st *screenTransform) {
		st.enabled = enabled
	}
}
