// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Builder (accumulates the parts
of an HTTP request), Components (an immutable snapshot of a request's
method, URL, and header), and Request (a finished snapshot paired with
a body).

Start a builder from one of the verb helpers, or from NewBuilder, and
chain calls on it:

	b := request.Get("https://example.com/index/index.html").
		Header("Accept", "application/json").
		Header("Content-Type", "application/json")

Every call returns a new Builder; no call ever modifies a Builder or a
Components value obtained earlier. The snapshot accumulated so far is
available from Components:

	c, ok := b.Components()
	c.Method()          // request.MethodGet
	c.URL().Host()      // "example.com"
	c.Header().Get("Accept")

Method and URL replace the current value. Header is different: when the
same header name is given more than once, the first value is kept and
later ones are ignored. See Builder.Header.

Building never fails. Call Build to obtain a Request, and ToHTTP to
convert it into a net/http request, which is the first point at which
the URL and headers are checked:

	r := b.Body(`{"q":1}`).Build()
	hr, err := r.ToHTTP(ctx)
	...
*/
package request
