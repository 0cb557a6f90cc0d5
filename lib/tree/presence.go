package tree

import (
	"fmt"
	"reflect"
)

// --------------------------------------------------------------------------
// Presence (value with presence flag)
// --------------------------------------------------------------------------

// Presence pairs a value with a flag telling whether the value was present.
// It separates "no value" from "a value that equals the zero value (or nil)".
// When Found is false the value must not be treated as meaningful.
type Presence[L any] struct {
	found bool
	value L
}

// Present creates a Presence holding v.
func Present[L any](v L) Presence[L] {
	return Presence[L]{found: true, value: v}
}

// Absent creates an empty Presence.
func Absent[L any]() Presence[L] {
	return Presence[L]{}
}

// Found reports whether a value was present.
func (p Presence[L]) Found() bool {
	return p.found
}

// Value returns the value. It is the zero value if nothing was found.
func (p Presence[L]) Value() L {
	return p.value
}

// Get returns the value and the presence flag, in the comma-ok style.
func (p Presence[L]) Get() (L, bool) {
	return p.value, p.found
}

// OrDefault returns the value if it was found and def otherwise.
func (p Presence[L]) OrDefault(def L) L {
	if p.found {
		return p.value
	}
	return def
}

// Then calls fn with the flag and the value.
func (p Presence[L]) Then(fn func(found bool, value L)) {
	fn(p.found, p.value)
}

// Matches applies predicate to the flag and the value.
func (p Presence[L]) Matches(predicate func(found bool, value L) bool) bool {
	return predicate(p.found, p.value)
}

// Equals reports whether both pairs have the same flag and, if found, deeply equal values.
func (p Presence[L]) Equals(other Presence[L]) bool {
	if p.found != other.found {
		return false
	}
	return !p.found || reflect.DeepEqual(p.value, other.value)
}

func (p Presence[L]) String() string {
	if !p.found {
		return "(absent)"
	}
	return fmt.Sprintf("(present %s)", FormatValue(p.value))
}

// --------------------------------------------------------------------------
// Entry (path + item reported by a query)
// --------------------------------------------------------------------------

// Entry is a (path, item) pair reported by a query. It remembers the tree it was read from
// for provenance only; mutating the tree afterwards does not change the entry.
type Entry[N comparable, L any] struct {
	source ITree[N, L]
	path   Path[N]
	value  L
}

// NewEntry creates an entry for a value read from source at path.
func NewEntry[N comparable, L any](source ITree[N, L], path Path[N], value L) Entry[N, L] {
	return Entry[N, L]{source: source, path: path, value: value}
}

// Source returns the tree the entry was read from.
func (e Entry[N, L]) Source() ITree[N, L] { return e.source }

// Path returns the path of the entry, relative to the root of its source.
func (e Entry[N, L]) Path() Path[N] { return e.path }

// Key is a synonym of Path.
func (e Entry[N, L]) Key() Path[N] { return e.path }

// Value returns the item of the entry.
func (e Entry[N, L]) Value() L { return e.value }

// Item is a synonym of Value.
func (e Entry[N, L]) Item() L { return e.value }

func (e Entry[N, L]) String() string {
	return fmt.Sprintf("%s=%s", e.path, FormatValue(e.value))
}

// FormatValue renders a leaf value for diagnostics; nil values render as "(null)".
func FormatValue(v any) string {
	if IsNil(v) {
		return "(null)"
	}
	return fmt.Sprint(v)
}
