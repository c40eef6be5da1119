package util

// Pointer returns a pointer to the supplied value. Mostly used to build
// pointer-field config overrides inline, where &literal is not legal Go.
func Pointer[T any](v T) *T {
	return &v
}
