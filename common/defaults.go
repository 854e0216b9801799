package common

// Coalesce returns the first argument that is not the zero value of T. Config defaults are
// applied with it, so an unset field falls through to the default listed after it.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value if there is none
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
