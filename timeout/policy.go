// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/httpreq/request"
)

// A Policy defines a timeout policy which may be plugged into a
// request sender (httpreq.Sender) to direct how long a single send may
// take, from connecting through reading the whole response body.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on sending r.
	Timeout(r request.Request) time.Duration
}

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 5 seconds on each send.
var DefaultPolicy Policy = Fixed(5 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that always returns d.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

// ByMethod constructs a timeout policy that looks up the request
// method in overrides, and returns d if the method has no override.
//
// Use ByMethod when some methods are known to be slow, for example
// uploads sent with POST or PUT:
//
// 	p := ByMethod(2*time.Second, map[request.Method]time.Duration{
// 		request.MethodPost: 30 * time.Second,
// 		request.MethodPut:  30 * time.Second,
// 	})
//
// The overrides map is copied, so later changes to it have no effect.
func ByMethod(d time.Duration, overrides map[request.Method]time.Duration) Policy {
	p := byMethod{
		usual:     d,
		overrides: make(map[request.Method]time.Duration, len(overrides)),
	}
	for m, o := range overrides {
		p.overrides[m] = o
	}
	return p
}

type fixed time.Duration

func (f fixed) Timeout(_ request.Request) time.Duration {
	return time.Duration(f)
}

type byMethod struct {
	usual     time.Duration
	overrides map[request.Method]time.Duration
}

func (p byMethod) Timeout(r request.Request) time.Duration {
	if d, ok := p.overrides[r.Method()]; ok {
		return d
	}
	return p.usual
}
