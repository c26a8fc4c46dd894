// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"github.com/gogama/httpreq/header"
	"github.com/gogama/httpreq/uri"
)

// Components is an immutable snapshot of the structural parts of a
// request: its method, URL, and header.
//
// The zero value is the default snapshot: method Get, the URL parsed
// from the empty string, and an empty header. It is identical to the
// value returned by DefaultComponents.
type Components struct {
	method Method
	url    uri.URL
	header header.Header
}

// DefaultComponents returns the snapshot a Builder starts from.
func DefaultComponents() Components {
	return Components{
		method: MethodGet,
		url:    uri.New(""),
		header: header.Header{},
	}
}

// Method returns the snapshot's request method.
func (c Components) Method() Method {
	return c.method
}

// URL returns the snapshot's URL.
func (c Components) URL() uri.URL {
	return c.url
}

// Header returns the snapshot's header.
func (c Components) Header() header.Header {
	return c.header
}

func (c Components) withMethod(m Method) Components {
	return Components{
		method: m,
		url:    c.url,
		header: c.header,
	}
}

func (c Components) withURL(u uri.URL) Components {
	return Components{
		method: c.method,
		url:    u,
		header: c.header,
	}
}

func (c Components) withHeader(h header.Header) Components {
	return Components{
		method: c.method,
		url:    c.url,
		header: h,
	}
}
