// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpreq

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var exchs []*Exchange
	h1 := &testHandler{seq: 1, evts: &evts, exchs: &exchs}
	h2 := &testHandler{seq: 2, evts: &evts, exchs: &exchs}
	g := &HandlerGroup{}
	t.Run("PushBack", func(t *testing.T) {
		assert.Panics(t, func() { g.PushBack(BeforeSend, nil) })
		assert.Panics(t, func() { g.PushBack(Event(123), h1) })
		g.PushBack(BeforeSend, h1)
		g.PushBack(BeforeSend, h2)
		g.PushBack(AfterSend, h1)
	})
	t.Run("run", func(t *testing.T) {
		e1 := &Exchange{Body: []byte("1")}
		e2 := &Exchange{Body: []byte("2")}
		assert.Empty(t, evts)
		assert.Empty(t, exchs)
		g.run(AfterTimeout, e1)
		assert.Empty(t, evts)
		assert.Empty(t, exchs)
		g.run(BeforeSend, e1)
		assert.Equal(t, []string{"1.BeforeSend", "2.BeforeSend"}, evts)
		assert.Equal(t, []*Exchange{e1, e1}, exchs)
		evts = evts[:0]
		exchs = exchs[:0]
		g.run(AfterSend, e2)
		assert.Equal(t, []string{"1.AfterSend"}, evts)
		assert.Equal(t, []*Exchange{e2}, exchs)
	})
	t.Run("zero group", func(t *testing.T) {
		var empty HandlerGroup
		assert.NotPanics(t, func() { empty.run(AfterSend, &Exchange{}) })
	})
}

type testHandler struct {
	seq   int
	evts  *[]string
	exchs *[]*Exchange
}

func (h *testHandler) Handle(evt Event, e *Exchange) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.exchs = append(*h.exchs, e)
}

func TestHandlerFunc(t *testing.T) {
	var _evt Event
	var _e *Exchange
	var f = func(evt Event, e *Exchange) {
		_evt = evt
		_e = e
	}
	h := HandlerFunc(f)
	e := &Exchange{}
	h.Handle(BeforeReadBody, e)

	assert.Equal(t, BeforeReadBody, _evt)
	assert.Same(t, e, _e)
}
