package types

// Ptr returns a pointer to a copy of v; handy for optional parameters
// like a threshold range.
func Ptr[T any](v T) *T {
	return &v
}
