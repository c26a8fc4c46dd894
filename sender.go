// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpreq

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gogama/httpreq/request"
	"github.com/gogama/httpreq/timeout"
)

const nilCtxMsg = "httpreq: nil context"

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Sender sends finished requests built with package request. Its
// zero value is a valid configuration.
//
// The zero value sender uses http.DefaultClient (from net/http) as the
// HTTPDoer, timeout.DefaultPolicy as the timeout policy, and an empty
// handler group.
//
// Sender is the only part of this module which performs network I/O,
// and it does so entirely through its HTTPDoer. Sender is safe for
// concurrent use by multiple goroutines provided its HTTPDoer, timeout
// policy, and handlers are.
type Sender struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// TimeoutPolicy specifies the timeout to set on each send.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur while sending.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Send converts r to an HTTP request, sends it with the HTTPDoer, and
// reads and buffers the whole response body.
//
// The returned Exchange is never nil. If the returned error is nil, the
// Exchange contains a non-nil Response and a non-nil Body (although
// Body may have zero length). A non-2XX status code is not an error.
//
// If r cannot be converted (see request.Request.ToHTTP), the conversion
// error is returned as-is and nothing is sent. Any error from the
// HTTPDoer, or from reading the response body, is returned as a
// *url.Error.
//
// The context ctx, which must be non-nil, controls the whole send. The
// timeout policy's deadline is applied on top of it.
func (s *Sender) Send(ctx context.Context, r request.Request) (*Exchange, error) {
	if ctx == nil {
		panic(nilCtxMsg)
	}

	e := Exchange{
		Request: r,
	}

	timeoutPolicy := s.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}

	handlers := s.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	e.Start = time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeoutPolicy.Timeout(r))
	defer cancel()

	hr, err := r.ToHTTP(ctx)
	if err != nil {
		e.Err = err
	} else {
		e.HTTPRequest = hr
		handlers.run(BeforeSend, &e)
		sendAndReceive(&e, s.doer(), handlers)
		if e.Timeout() {
			handlers.run(AfterTimeout, &e)
		}
	}

	e.End = time.Now()
	handlers.run(AfterSend, &e)
	return &e, e.Err
}

func sendAndReceive(e *Exchange, doer HTTPDoer, handlers *HandlerGroup) {
	var err error
	e.Response, err = doer.Do(e.HTTPRequest)
	if err != nil {
		e.Err = urlErrorWrap(e.Request, err)
	} else {
		readBody(e, handlers)
	}
}

func readBody(e *Exchange, handlers *HandlerGroup) {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	handlers.run(BeforeReadBody, e)
	var err error
	e.Body, err = ioutil.ReadAll(e.Response.Body)
	if err != nil {
		e.Err = urlErrorWrap(e.Request, err)
	}
}

// CloseIdleConnections invokes the same method on the sender's
// underlying HTTPDoer, if it has one.
func (s *Sender) CloseIdleConnections() {
	doer := s.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (s *Sender) doer() HTTPDoer {
	if s.HTTPDoer == nil {
		return http.DefaultClient
	}

	return s.HTTPDoer
}

func urlErrorWrap(r request.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(r.Method().String()),
		URL: r.URL().String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
