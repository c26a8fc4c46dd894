// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpreq

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Sender to extend it with custom
// functionality, such as logging.
type Event int

const (
	// BeforeSend identifies the event that occurs after the request
	// has been converted to an http.Request, and before it is handed
	// to the HTTPDoer.
	//
	// When Sender fires BeforeSend, the exchange's HTTPRequest field
	// is set to the HTTP request that WILL BE sent after all BeforeSend
	// handlers have finished. Handlers may modify the HTTP request, for
	// example to sign it.
	//
	// BeforeSend does not fire if the request could not be converted,
	// for example because its URL is empty.
	BeforeSend Event = iota
	// BeforeReadBody identifies the event that occurs after the HTTPDoer
	// has returned an HTTP response (as opposed to an error) but before
	// the response body is read and buffered.
	BeforeReadBody
	// AfterTimeout identifies the event that occurs after a send failed
	// because of a timeout error, whether set by the sender's timeout
	// policy or by the caller's context.
	AfterTimeout
	// AfterSend identifies the event that occurs after a send is
	// concluded, regardless of whether it concluded successfully or not.
	// It always fires exactly once per Send, after the exchange's End
	// time has been set.
	AfterSend
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeSend",
	"BeforeReadBody",
	"AfterTimeout",
	"AfterSend",
}

// Events returns a slice containing all events which can occur while
// Sender sends a request, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeSend,
		BeforeReadBody,
		AfterTimeout,
		AfterSend,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
