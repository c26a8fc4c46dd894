// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package uri

import (
	urlpkg "net/url"
	"strings"
)

// A Protocol is the scheme of a URL, restricted to the schemes an HTTP
// request can be sent over.
type Protocol int

const (
	// Unknown is the protocol of an empty URL, an unparsable URL, or a
	// URL whose scheme is neither http nor https.
	Unknown Protocol = iota
	// HTTP is the protocol of a URL with the scheme "http".
	HTTP
	// HTTPS is the protocol of a URL with the scheme "https".
	HTTPS
)

var protocolNames = []string{
	"",
	"http",
	"https",
}

// String returns the lower-case scheme name of the protocol, or the
// empty string for Unknown.
func (p Protocol) String() string {
	if p < 0 || int(p) >= len(protocolNames) {
		return ""
	}
	return protocolNames[p]
}

// A URL is an immutable parsed URL.
//
// The zero value is equivalent to New("").
type URL struct {
	raw      string
	protocol Protocol
	host     string
	path     string
}

// New parses raw into a URL. New never fails: if raw is empty or cannot
// be parsed, the returned URL has an Unknown protocol and an empty host
// and path, but its String method still returns raw.
func New(raw string) URL {
	u := URL{raw: raw}
	if raw == "" {
		return u
	}
	p, err := urlpkg.Parse(raw)
	if err != nil {
		return u
	}
	u.protocol = protocolOf(p.Scheme)
	u.host = p.Host
	u.path = p.Path
	return u
}

func protocolOf(scheme string) Protocol {
	switch strings.ToLower(scheme) {
	case "http":
		return HTTP
	case "https":
		return HTTPS
	default:
		return Unknown
	}
}

// Protocol returns the URL's protocol.
func (u URL) Protocol() Protocol {
	return u.protocol
}

// Host returns the URL's host, including the port if one was given.
func (u URL) Host() string {
	return u.host
}

// Path returns the URL's decoded path.
func (u URL) Path() string {
	return u.path
}

// String returns the exact string the URL was created from.
func (u URL) String() string {
	return u.raw
}

// IsZero reports whether the URL was created from the empty string.
func (u URL) IsZero() bool {
	return u.raw == ""
}

// Parsed parses the URL's original string again using the standard
// net/url package and returns the result, which the caller owns.
func (u URL) Parsed() (*urlpkg.URL, error) {
	return urlpkg.Parse(u.raw)
}
