// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package header contains Map, an insertion-ordered map of HTTP header
names to values, and Header, the value wrapper a request snapshot holds.

Header names are compared by exact string equality. Unlike http.Header
from net/http, Map never canonicalizes a name, so "accept" and "Accept"
are two different entries:

	var m header.Map
	m.Insert("Accept", "application/json")
	m.Insert("accept", "text/plain")
	m.Len() // 2

Maps can be folded from a sequence of pairs, which is how request
snapshots merge headers:

	m := header.FromPairs(append(a.Pairs(), b.Pairs()...)...)

Later pairs overwrite earlier pairs having the same name.
*/
package header
