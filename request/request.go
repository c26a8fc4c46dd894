// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/gogama/httpreq/header"
	"github.com/gogama/httpreq/uri"
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg   = "httpreq/request: nil context"
	emptyURLMsg = "httpreq/request: empty URL"
)

// A Request is a finished request: a Components snapshot paired with a
// body. Requests are created by Builder.Build.
//
// The zero value is a GET request with an empty URL, no headers, and an
// empty body.
type Request struct {
	components Components
	body       string
}

// Get returns a builder for a GET request to url.
func Get(url string) Builder {
	return NewBuilder().Method(MethodGet).URL(url)
}

// Post returns a builder for a POST request to url.
func Post(url string) Builder {
	return NewBuilder().Method(MethodPost).URL(url)
}

// Put returns a builder for a PUT request to url.
func Put(url string) Builder {
	return NewBuilder().Method(MethodPut).URL(url)
}

// Delete returns a builder for a DELETE request to url.
func Delete(url string) Builder {
	return NewBuilder().Method(MethodDelete).URL(url)
}

// Components returns the request's snapshot.
func (r Request) Components() Components {
	return r.components
}

// Method returns the request method.
func (r Request) Method() Method {
	return r.components.method
}

// URL returns the request URL.
func (r Request) URL() uri.URL {
	return r.components.url
}

// Header returns the request header.
func (r Request) Header() header.Header {
	return r.components.header
}

// Body returns the request body. An empty body means no body is sent.
func (r Request) Body() string {
	return r.body
}

// ToHTTP creates an HTTP request corresponding to r. The context of the
// new request is set to ctx, which may not be nil.
//
// ToHTTP is where a request is first checked for sendability. It
// returns an error if the URL is empty or cannot be parsed, if the
// method is not a supported Method, or if a header name is not a valid
// HTTP token or a header value contains characters not allowed in an
// HTTP field value. Header names are copied verbatim, without
// canonicalization.
func (r Request) ToHTTP(ctx context.Context) (*http.Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if !r.Method().Valid() {
		return nil, errors.Errorf("httpreq/request: invalid method %d", int(r.Method()))
	}
	if r.URL().IsZero() {
		return nil, errors.New(emptyURLMsg)
	}
	u, err := r.URL().Parsed()
	if err != nil {
		return nil, errors.Wrap(err, "httpreq/request: parsing URL")
	}
	u.Host = removeEmptyPort(u.Host)
	for _, p := range r.Header().Pairs() {
		if !httpguts.ValidHeaderFieldName(p.Key) {
			return nil, errors.Errorf("httpreq/request: invalid header name %q", p.Key)
		}
		if !httpguts.ValidHeaderFieldValue(p.Value) {
			return nil, errors.Errorf("httpreq/request: invalid value for header %q", p.Key)
		}
	}

	hr := template.WithContext(ctx)
	hr.Method = r.Method().String()
	hr.URL = u
	hr.Header = r.Header().ToHTTP()
	if len(r.body) > 0 {
		body := r.body
		hr.Body = ioutil.NopCloser(strings.NewReader(body))
		hr.GetBody = func() (io.ReadCloser, error) {
			return ioutil.NopCloser(strings.NewReader(body)), nil
		}
		hr.ContentLength = int64(len(body))
	}
	hr.Host = u.Host
	return hr, nil
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
