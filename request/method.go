// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Method is an HTTP request method. The zero value is MethodGet.
type Method int

const (
	// MethodGet is the HTTP GET method.
	MethodGet Method = iota
	// MethodPost is the HTTP POST method.
	MethodPost
	// MethodPut is the HTTP PUT method.
	MethodPut
	// MethodDelete is the HTTP DELETE method.
	MethodDelete
	// methodSentinel provides the total number of methods typed as a
	// Method.
	methodSentinel
)

var methodNames = []string{
	"GET",
	"POST",
	"PUT",
	"DELETE",
}

// Methods returns a slice containing all supported methods.
func Methods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodDelete}
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	return m >= 0 && m < methodSentinel
}

// String returns the method's upper-case token as it is sent on the
// wire, for example "GET".
func (m Method) String() string {
	if !m.Valid() {
		return ""
	}
	return methodNames[m]
}

// ParseMethod returns the Method whose token is s. The comparison is
// case-sensitive, as HTTP methods are.
func ParseMethod(s string) (Method, bool) {
	for i, name := range methodNames {
		if name == s {
			return Method(i), true
		}
	}
	return 0, false
}
