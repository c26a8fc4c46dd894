// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package header

// A Pair is a single header name and its value.
type Pair struct {
	Key   string
	Value string
}

// A Map maps header names to values. Its zero value is an empty map
// ready to use.
//
// Keys are unique by exact string equality. Iteration order, as
// reported by Pairs, is the order in which each key was first inserted.
//
// A Map must not be copied after first use; use Clone to obtain an
// independent copy.
type Map struct {
	keys []string
	vals map[string]string
}

// FromPairs returns a new Map built by inserting each pair in order.
// If the same key appears more than once, the last value wins.
func FromPairs(pairs ...Pair) Map {
	var m Map
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// Insert sets the value for key, overwriting any existing value. An
// overwritten key keeps its original position in the iteration order.
func (m *Map) Insert(key, value string) {
	if m.vals == nil {
		m.vals = make(map[string]string)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Get returns the value for key and whether key is present.
func (m Map) Get(key string) (string, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// GetKeyValue returns the stored pair for key and whether key is
// present.
func (m Map) GetKeyValue(key string) (Pair, bool) {
	v, ok := m.vals[key]
	if !ok {
		return Pair{}, false
	}
	return Pair{Key: key, Value: v}, true
}

// Len returns the number of entries in the map.
func (m Map) Len() int {
	return len(m.keys)
}

// Pairs returns the map's entries in insertion order. The returned
// slice is owned by the caller.
func (m Map) Pairs() []Pair {
	if len(m.keys) == 0 {
		return nil
	}
	pairs := make([]Pair, len(m.keys))
	for i, k := range m.keys {
		pairs[i] = Pair{Key: k, Value: m.vals[k]}
	}
	return pairs
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	return FromPairs(m.Pairs()...)
}
