// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

const badBodyTypeMsg = "httpreq/request: invalid type (for body use nil, " +
	"string, []byte, io.Reader or io.ReadCloser)"

// BodyString converts a generic body parameter to a string suitable
// for Builder.Body.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser. The conversion logic is:
//
// • If body is nil, the empty string and no error is returned.
//
// • If body is a string, body itself and no error is returned.
//
// • If body is a []byte, the built-in conversion from byte slice to
// string, and no error, is returned.
//
// • If body is an io.Reader or io.ReadCloser, the whole contents of the
// reader are read (and the reader is closed if it implements Closer).
// If reading or closing fails, the empty string and the error, wrapped
// with context, are returned.
//
// • If body is any other type than those listed above, the empty
// string and an error is returned.
func BodyString(body interface{}) (string, error) {
	switch x := body.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case io.ReadCloser:
		b, err := ioutil.ReadAll(x)
		if err != nil {
			return "", errors.Wrap(err, "httpreq/request: reading body")
		}
		err = x.Close()
		if err != nil {
			return "", errors.Wrap(err, "httpreq/request: closing body")
		}
		return string(b), nil
	case io.Reader:
		return BodyString(ioutil.NopCloser(x))
	default:
		return "", errors.New(badBodyTypeMsg)
	}
}
