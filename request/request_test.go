// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbs(t *testing.T) {
	testCases := []struct {
		name   string
		verb   func(string) Builder
		method Method
	}{
		{"Get", Get, MethodGet},
		{"Post", Post, MethodPost},
		{"Put", Put, MethodPut},
		{"Delete", Delete, MethodDelete},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := testCase.verb("http://foo.com/bar")
			c, ok := b.Components()
			require.True(t, ok)
			assert.Equal(t, testCase.method, c.Method())
			assert.Equal(t, "http://foo.com/bar", c.URL().String())
			assert.Equal(t, 0, c.Header().Len())
			expected := NewBuilder().URL("http://foo.com/bar").Method(testCase.method)
			assert.Equal(t, expected, b, "order of Method and URL must not matter")
		})
	}
}

func TestRequest_ToHTTP(t *testing.T) {
	type foo struct{}
	ctx := context.WithValue(context.Background(), foo{}, "bar")
	for _, testCase := range toHTTPTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			hr, err := testCase.request.ToHTTP(ctx)
			testCase.asserts(t, hr, err)
			if hr != nil {
				assert.Same(t, ctx, hr.Context())
			}
		})
	}
	t.Run("nil context", func(t *testing.T) {
		hr, err := Get("http://foo.com").Build().ToHTTP(nil)
		assert.Nil(t, hr)
		assert.EqualError(t, err, nilCtxMsg)
	})
}

var toHTTPTestCases = []struct {
	name    string
	request Request
	asserts func(*testing.T, *http.Request, error)
}{
	{
		name:    "GET without body",
		request: Get("https://example.com/index/index.html").Build(),
		asserts: func(t *testing.T, hr *http.Request, err error) {
			require.NoError(t, err)
			require.NotNil(t, hr)
			assert.Equal(t, "GET", hr.Method)
			assert.Equal(t, "https://example.com/index/index.html", hr.URL.String())
			assert.Equal(t, "example.com", hr.Host)
			assert.Empty(t, hr.Header)
			assert.Nil(t, hr.Body)
			assert.Equal(t, int64(0), hr.ContentLength)
		},
	},
	{
		name: "POST with body and verbatim headers",
		request: Post("http://ham.com/upload?x=1").
			Header("Content-Type", "text/plain").
			Header("x-lower-case", "").
			Body("spam").
			Build(),
		asserts: func(t *testing.T, hr *http.Request, err error) {
			require.NoError(t, err)
			require.NotNil(t, hr)
			assert.Equal(t, "POST", hr.Method)
			assert.Equal(t, "x=1", hr.URL.RawQuery)
			assert.Equal(t, http.Header{
				"Content-Type": {"text/plain"},
				"x-lower-case": {""},
			}, hr.Header)
			assert.Equal(t, int64(4), hr.ContentLength)
			b, err := ioutil.ReadAll(hr.Body)
			require.NoError(t, err)
			assert.Equal(t, "spam", string(b))
			require.NotNil(t, hr.GetBody)
			rc, err := hr.GetBody()
			require.NoError(t, err)
			b, err = ioutil.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, "spam", string(b))
		},
	},
	{
		name:    "remove empty port",
		request: Delete("http://ham:/x").Build(),
		asserts: func(t *testing.T, hr *http.Request, err error) {
			require.NoError(t, err)
			require.NotNil(t, hr)
			assert.Equal(t, "DELETE", hr.Method)
			assert.Equal(t, "ham", hr.Host)
			assert.Equal(t, "ham", hr.URL.Host)
		},
	},
	{
		name:    "error empty URL",
		request: NewBuilder().Build(),
		asserts: func(t *testing.T, hr *http.Request, err error) {
			assert.Nil(t, hr)
			assert.EqualError(t, err, emptyURLMsg)
		},
	},
	{
		name:    "error invalid URL",
		request: Put(":::").Build(),
		asserts: func(t *testing.T, hr *http.Request, err error) {
			assert.Nil(t, hr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "httpreq/request: parsing URL: ")
		},
	},
	{
		name:    "error invalid method",
		request: NewBuilder().URL("http://foo.com").Method(Method(9)).Build(),
		asserts: func(t *testing.T, hr *http.Request, err error) {
			assert.Nil(t, hr)
			assert.EqualError(t, err, "httpreq/request: invalid method 9")
		},
	},
	{
		name:    "error invalid header name",
		request: Get("http://foo.com").Header("Bad Name", "x").Build(),
		asserts: func(t *testing.T, hr *http.Request, err error) {
			assert.Nil(t, hr)
			assert.EqualError(t, err, `httpreq/request: invalid header name "Bad Name"`)
		},
	},
	{
		name:    "error invalid header value",
		request: Get("http://foo.com").Header("X-Split", "a\r\nb").Build(),
		asserts: func(t *testing.T, hr *http.Request, err error) {
			assert.Nil(t, hr)
			assert.EqualError(t, err, `httpreq/request: invalid value for header "X-Split"`)
		},
	},
}
