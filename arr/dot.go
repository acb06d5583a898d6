package arr

import (
	"cmp"
	"strings"

	"github.com/hasbyte1/go-underbar-utils/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-path property access for map[string]any rows
//
// Rows decoded from JSON or YAML are usually map[string]any. These helpers
// let pluck and sort address a property by name, including nested ones:
//
//	rows := []map[string]any{
//	    {"name": "Alice", "address": map[string]any{"city": "London"}},
//	    {"name": "Bob", "address": map[string]any{"city": "Paris"}},
//	}
//	PluckPath(rows, "address.city") → ["London", "Paris"]
// ─────────────────────────────────────────────────────────────────────────────

// Lookup returns the value at the dot-separated path in m and whether every
// segment of the path exists.
func Lookup(m map[string]any, path string) (any, bool) {
	type cursor struct {
		value any
		found bool
	}
	segments := collections.From(strings.Split(path, "."))
	end := collections.ReduceWhile(segments, func(c cursor, seg string) (cursor, bool) {
		node, ok := c.value.(map[string]any)
		if !ok {
			return cursor{}, false
		}
		v, ok := node[seg]
		if !ok {
			return cursor{}, false
		}
		return cursor{value: v, found: true}, true
	}, cursor{value: m})
	return end.value, end.found
}

// Get returns the value at path, or def[0] (or nil) when it is missing.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, path string, def ...any) any {
	if v, ok := Lookup(m, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := Lookup(m, path)
	return ok
}

// PluckPath returns the value at path for every row, nil where missing.
func PluckPath(rows []map[string]any, path string) []any {
	return Pluck(rows, func(row map[string]any) any { return Get(row, path) })
}

// SortByPath returns a copy of rows stably sorted by the value at path.
// Rows where the value is missing or not an O sort as O's zero value.
func SortByPath[O cmp.Ordered](rows []map[string]any, path string) []map[string]any {
	return SortBy(rows, func(row map[string]any) O {
		v, _ := Get(row, path).(O)
		return v
	})
}
