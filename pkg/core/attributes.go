package core

import "sort"

// Attributes is the configuration map of a single element. Keys are
// kebab-case strings ("text-size"); values are raw description values:
// primitives, [Symbol], [Dimension], nested maps, slices, or callbacks.
type Attributes map[string]any

// Clone returns a shallow copy. A nil map clones to an empty, non-nil map so
// callers can consume from the copy without allocation checks.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge returns a new map holding the receiver's entries with over's entries
// written on top. When both sides hold a nested Attributes or map[string]any
// value under the same key, the nested maps merge recursively; any other
// collision is won by over.
func (a Attributes) Merge(over Attributes) Attributes {
	out := a.Clone()
	for k, v := range over {
		if base, ok := asAttributes(out[k]); ok {
			if top, ok := asAttributes(v); ok {
				out[k] = base.Merge(top)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// Without returns a copy with the given keys removed. Keys that are not
// present are ignored.
func (a Attributes) Without(keys ...string) Attributes {
	out := a.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Has reports whether the key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// SortedKeys returns the keys in lexical order, giving deterministic
// application order for the generic setter pass.
func (a Attributes) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the string value of the key, unwrapping a [Symbol] to its
// name. The second result is false when the key is absent or holds neither
// form.
func (a Attributes) String(key string) (string, bool) {
	switch v := a[key].(type) {
	case string:
		return v, true
	case Symbol:
		return string(v), true
	}
	return "", false
}

func asAttributes(v any) (Attributes, bool) {
	switch m := v.(type) {
	case Attributes:
		return m, true
	case map[string]any:
		return Attributes(m), true
	}
	return nil, false
}
