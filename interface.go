// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpreq

import (
	"context"

	"github.com/gogama/httpreq/request"
)

// Doer is the interface that wraps the basic Send method.
//
// Send sends a finished request and returns the final exchange state
// (and error, if any). Sender implements the Doer interface, and any
// other Doer implementation must behave substantially the same as
// Sender.Send.
type Doer interface {
	Send(ctx context.Context, r request.Request) (*Exchange, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any connections which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
type IdleCloser interface {
	CloseIdleConnections()
}

// Do finalizes b with Build and sends the result with d.
func Do(ctx context.Context, d Doer, b request.Builder) (*Exchange, error) {
	return d.Send(ctx, b.Build())
}

// Get uses d to issue a GET to the specified URL.
//
// To send a request with custom headers, use request.Get and Do.
func Get(ctx context.Context, d Doer, url string) (*Exchange, error) {
	return Do(ctx, d, request.Get(url))
}

// Post uses d to issue a POST to the specified URL with the given
// content type.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.BodyString, namely: string; []byte;
// io.Reader; and io.ReadCloser.
func Post(ctx context.Context, d Doer, url, contentType string, body interface{}) (*Exchange, error) {
	s, err := request.BodyString(body)
	if err != nil {
		return nil, err
	}
	b := request.Post(url).
		Header("Content-Type", contentType).
		Body(s)
	return Do(ctx, d, b)
}
