// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpreq

import (
	"net/http"
	"time"

	"github.com/gogama/httpreq/request"
	"github.com/pkg/errors"
)

// An Exchange represents the state of sending a single Request.
//
// Event handlers receive the Exchange while it is in progress. They
// should treat its fields as read-only, with the exception of making
// reasonable changes to HTTPRequest during BeforeSend.
type Exchange struct {
	// Request is the finished request being sent.
	Request request.Request

	// Start is the time the send started. It is non-zero for every
	// Exchange returned by Sender.
	Start time.Time

	// End is the time the send ended. It contains the zero value until
	// the send is over.
	End time.Time

	// HTTPRequest is the net/http request built from Request. It is
	// nil if Request could not be converted.
	HTTPRequest *http.Request

	// Response is the HTTP response received. It is nil if the send
	// ended in error before a response was received.
	Response *http.Response

	// Err is the error the send ended with, if any. Transport errors
	// have the type *url.Error.
	Err error

	// Body is the complete response body. It should be treated as
	// invalid unless Err is nil.
	Body []byte
}

// StatusCode returns the status code of the HTTP response, or 0 if
// there is no HTTP response.
func (e *Exchange) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers, or the nil header if there
// is no HTTP response.
func (e *Exchange) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return e.Response.Header
}

// Duration returns End minus Start once the send has ended, the time
// elapsed since Start while it is in flight, and zero before it starts.
func (e *Exchange) Duration() time.Duration {
	if e.Start.IsZero() {
		return time.Duration(0)
	} else if e.End.IsZero() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Timeout indicates whether Err is a timeout error.
func (e *Exchange) Timeout() bool {
	var t hasTimeout
	return e.Err != nil && errors.As(e.Err, &t) && t.Timeout()
}

type hasTimeout interface {
	Timeout() bool
}
