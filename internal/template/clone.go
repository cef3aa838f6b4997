package template

// Clone returns a structural copy of a decoded JSON value. Objects and lists
// are copied recursively; scalars are immutable and returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Clone(val)
		}
		return out
	case Document:
		return Document(Clone(map[string]any(t)).(map[string]any))
	case []any:
		if t == nil {
			return []any(nil)
		}
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}
