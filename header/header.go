// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package header

import "net/http"

// A Header wraps exactly one Map. Its zero value holds an empty map.
//
// A Header never shares storage with the Map it was made from or the
// Maps it hands out, so a Header value is effectively immutable.
type Header struct {
	m Map
}

// FromMap returns a Header holding a copy of m.
func FromMap(m Map) Header {
	return Header{m: m.Clone()}
}

// Map returns a copy of the Header's underlying map.
func (h Header) Map() Map {
	return h.m.Clone()
}

// Pairs returns the Header's entries in insertion order.
func (h Header) Pairs() []Pair {
	return h.m.Pairs()
}

// Get returns the value for key and whether key is present.
func (h Header) Get(key string) (string, bool) {
	return h.m.Get(key)
}

// Len returns the number of entries in the Header.
func (h Header) Len() int {
	return h.m.Len()
}

// ToHTTP returns the entries as a net/http header. Keys are stored as
// given, without canonicalization, so they reach the wire verbatim.
func (h Header) ToHTTP() http.Header {
	hh := make(http.Header, h.m.Len())
	for _, p := range h.m.Pairs() {
		hh[p.Key] = []string{p.Value}
	}
	return hh
}
