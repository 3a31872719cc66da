// Package settings provides the map-backed settings snapshot and its file
// loader. A snapshot is built once, never mutated, and may be shared freely
// across concurrent resolvers.
package settings

import (
	"sort"
	"strings"

	"github.com/justapithecus/scout/scout"
)

// Snapshot is an immutable, flat key-value settings store. Keys are plain
// dotted strings; hierarchy exists only by prefix convention. A key is bound
// to exactly one of a string or an integer.
type Snapshot struct {
	strings map[string]string
	ints    map[string]int
}

// Empty returns a snapshot with no keys bound.
func Empty() *Snapshot {
	return NewBuilder().Build()
}

// GetString returns the string bound to key.
func (s *Snapshot) GetString(key string) (string, bool) {
	v, ok := s.strings[key]
	return v, ok
}

// GetInt returns the integer bound to key.
func (s *Snapshot) GetInt(key string) (int, bool) {
	v, ok := s.ints[key]
	return v, ok
}

// KeysWithPrefix returns all bound keys starting with prefix, in lexical
// order regardless of value type.
func (s *Snapshot) KeysWithPrefix(prefix string) []string {
	var keys []string
	for k := range s.strings {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	for k := range s.ints {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Compile-time checks: Snapshot is a Settings with key listing.
var (
	_ scout.Settings  = (*Snapshot)(nil)
	_ scout.KeyLister = (*Snapshot)(nil)
)

// Builder accumulates key bindings for a Snapshot. Binding a key twice keeps
// the last value; binding it with a different type moves it to that type.
// Builders are not safe for concurrent use; the built Snapshot is.
type Builder struct {
	strings map[string]string
	ints    map[string]int
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		strings: make(map[string]string),
		ints:    make(map[string]int),
	}
}

// PutString binds key to a string value.
func (b *Builder) PutString(key, value string) *Builder {
	delete(b.ints, key)
	b.strings[key] = value
	return b
}

// PutInt binds key to an integer value.
func (b *Builder) PutInt(key string, value int) *Builder {
	delete(b.strings, key)
	b.ints[key] = value
	return b
}

// Build produces an immutable Snapshot of the bindings made so far. The
// builder remains usable; later Put calls do not affect earlier snapshots.
func (b *Builder) Build() *Snapshot {
	s := &Snapshot{
		strings: make(map[string]string, len(b.strings)),
		ints:    make(map[string]int, len(b.ints)),
	}
	for k, v := range b.strings {
		s.strings[k] = v
	}
	for k, v := range b.ints {
		s.ints[k] = v
	}
	return s
}
