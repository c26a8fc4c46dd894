// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"github.com/gogama/httpreq/header"
	"github.com/gogama/httpreq/uri"
)

// A Builder accumulates the method, URL, header, and body of a request.
// Its zero value is an empty builder ready to use.
//
// Builder is a value type. Every method returns a new Builder and leaves
// its receiver untouched, so builders may be stored and branched freely:
//
//	base := request.Post("https://example.com/upload").Header("Accept", "application/json")
//	a := base.Body("a")
//	b := base.Body("b") // a is unaffected
//
// A builder is either empty or populated. The first call to Method,
// URL, or Header populates it by starting from DefaultComponents and
// replacing one field. Every later call replaces exactly one field of
// the current snapshot and copies the other two.
type Builder struct {
	populated  bool
	components Components
	body       string
}

// NewBuilder returns an empty builder.
func NewBuilder() Builder {
	return Builder{}
}

func (b Builder) current() Components {
	if !b.populated {
		return DefaultComponents()
	}
	return b.components
}

func (b Builder) with(c Components) Builder {
	b.populated = true
	b.components = c
	return b
}

// Method returns a builder whose snapshot has method m. The most recent
// call to Method wins.
func (b Builder) Method(m Method) Builder {
	return b.with(b.current().withMethod(m))
}

// URL returns a builder whose snapshot has the URL parsed from raw. The
// most recent call to URL wins.
//
// Parsing never fails; see uri.New for how malformed input is handled.
func (b Builder) URL(raw string) Builder {
	return b.with(b.current().withURL(uri.New(raw)))
}

// Header returns a builder whose snapshot header also contains name.
//
// The new entry is merged with the existing header by folding the new
// entry first and the existing entries after it, so an existing entry
// with the same name overwrites the new value. In other words the
// FIRST call to Header for a given name determines its value, and later
// calls for the same name have no effect:
//
//	b := request.NewBuilder().Header("X", "1").Header("X", "2")
//	// X is "1"
//
// Names are compared by exact string equality. Entries with distinct
// names accumulate. Empty values are allowed.
func (b Builder) Header(name, value string) Builder {
	c := b.current()
	single := header.FromPairs(header.Pair{Key: name, Value: value})
	merged := header.FromPairs(append(single.Pairs(), c.header.Pairs()...)...)
	return b.with(c.withHeader(header.FromMap(merged)))
}

// Body returns a builder with body s. The most recent call to Body wins.
// Setting the body does not populate the snapshot.
func (b Builder) Body(s string) Builder {
	b.body = s
	return b
}

// Components returns the current snapshot and true, or the zero
// Components and false if the builder is still empty.
func (b Builder) Components() (Components, bool) {
	if !b.populated {
		return Components{}, false
	}
	return b.components, true
}

// Build finalizes the builder into a Request. An empty builder yields
// DefaultComponents and a builder without a body yields an empty body.
func (b Builder) Build() Request {
	return Request{
		components: b.current(),
		body:       b.body,
	}
}
