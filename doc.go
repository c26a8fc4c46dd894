// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpreq sends HTTP requests described with package request.

Describe a request with an immutable builder, then send it:

	b := request.Post("https://example.com/upload").
		Header("Content-Type", "application/json").
		Body(`{"name":"value"}`)
	s := &httpreq.Sender{}
	ex, err := httpreq.Do(ctx, s, b)
	...

Building a request never fails and never performs I/O. A Sender is
where the finished request is checked and handed to an HTTPDoer, which
is http.DefaultClient unless another is configured:

	s := &httpreq.Sender{
		HTTPDoer:      &http.Client{...},
		TimeoutPolicy: timeout.Fixed(10 * time.Second),
	}

To hook into sending, install a handler into the appropriate handler
chain. LogHandler logs events with logrus:

	handlers := &httpreq.HandlerGroup{}
	handlers.PushBack(httpreq.AfterSend, httpreq.LogHandler(logrus.StandardLogger()))
	s := &httpreq.Sender{
		Handlers: handlers,
	}
*/
package httpreq
