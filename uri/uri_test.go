// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		protocol Protocol
		host     string
		path     string
	}{
		{
			name: "empty",
		},
		{
			name:     "https with path",
			raw:      "https://example.com/index/index.html",
			protocol: HTTPS,
			host:     "example.com",
			path:     "/index/index.html",
		},
		{
			name:     "http with port",
			raw:      "http://localhost:8080/a/b?c=d#e",
			protocol: HTTP,
			host:     "localhost:8080",
			path:     "/a/b",
		},
		{
			name:     "upper-case scheme",
			raw:      "HTTPS://Example.com",
			protocol: HTTPS,
			host:     "Example.com",
		},
		{
			name:     "unsupported scheme",
			raw:      "ftp://files.example.com/pub",
			protocol: Unknown,
			host:     "files.example.com",
			path:     "/pub",
		},
		{
			name: "relative",
			raw:  "index/index.html",
			path: "index/index.html",
		},
		{
			name: "unparsable",
			raw:  ":::",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			u := New(testCase.raw)
			assert.Equal(t, testCase.raw, u.String())
			assert.Equal(t, testCase.protocol, u.Protocol())
			assert.Equal(t, testCase.host, u.Host())
			assert.Equal(t, testCase.path, u.Path())
			assert.Equal(t, testCase.raw == "", u.IsZero())
		})
	}
}

func TestURL_String(t *testing.T) {
	// Round-trip must not normalize anything.
	raw := "https://example.com:/a/../b?z=1&a=2"
	assert.Equal(t, raw, New(raw).String())
}

func TestURL_Zero(t *testing.T) {
	assert.Equal(t, New(""), URL{})
}

func TestURL_Parsed(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		p, err := New("https://example.com/x?y=z").Parsed()
		require.NoError(t, err)
		assert.Equal(t, "example.com", p.Host)
		assert.Equal(t, "y=z", p.RawQuery)
	})
	t.Run("error", func(t *testing.T) {
		p, err := New(":::").Parsed()
		assert.Nil(t, p)
		assert.Error(t, err)
	})
}

func TestProtocol_String(t *testing.T) {
	assert.Equal(t, "", Unknown.String())
	assert.Equal(t, "http", HTTP.String())
	assert.Equal(t, "https", HTTPS.String())
	assert.Equal(t, "", Protocol(42).String())
}
