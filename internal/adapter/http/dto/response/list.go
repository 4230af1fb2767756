package response

// FromList maps records to response items. Empty input yields an empty,
// non-nil slice so lists always encode as [].
func FromList[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
