// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package uri provides URL, an immutable parsed URL which remembers the
// exact string it was created from.
//
// Unlike url.Parse from the standard net/url package, New never fails.
// A string that cannot be parsed produces a degenerate URL whose
// accessors return zero values, but whose String method still returns
// the original input. Deciding whether such a URL is usable is left to
// whichever component finally sends the request.
package uri
