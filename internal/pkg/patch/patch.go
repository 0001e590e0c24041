// Package patch merges partial updates (nil means "leave as is") into current values.
package patch

// Coalesce returns *ptr when set, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Clearable merges an optional text field where an empty string removes the value.
// nil keeps current; the result never aliases in.
func Clearable(in, current *string) *string {
	if in == nil {
		return current
	}
	if *in == "" {
		return nil
	}
	v := *in
	return &v
}
