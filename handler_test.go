// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axios

import (
	"fmt"
	"testing"

	"github.com/gogama/axios/request"
	"github.com/stretchr/testify/assert"
)

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var execs []*request.Execution
	h1 := &testHandler{seq: 1, evts: &evts, execs: &execs}
	h2 := &testHandler{seq: 2, evts: &evts, execs: &execs}
	g := &HandlerGroup{}
	t.Run("PushBack", func(t *testing.T) {
		assert.PanicsWithValue(t, "axios: nil handler", func() { g.PushBack(BeforeDispatch, nil) })
		assert.PanicsWithValue(t, "axios: invalid event 123", func() { g.PushBack(Event(123), h1) })
		assert.PanicsWithValue(t, "axios: invalid event -1", func() { g.PushFront(Event(-1), h1) })
		g.PushBack(BeforeDispatch, h1)
		g.PushBack(BeforeDispatch, h2)
		g.PushBack(AfterTransport, h1)
		assert.Equal(t, 2, g.Len(BeforeDispatch))
		assert.Equal(t, 0, g.Len(BeforeTransport))
		assert.Equal(t, 1, g.Len(AfterTransport))
		assert.Equal(t, 0, g.Len(Event(99)))
	})
	t.Run("run", func(t *testing.T) {
		e1 := &request.Execution{RequestID: "1"}
		e2 := &request.Execution{RequestID: "2"}
		assert.Empty(t, evts)
		assert.Empty(t, execs)
		g.run(AfterDispatch, e1)
		assert.Empty(t, evts)
		assert.Empty(t, execs)
		g.run(BeforeDispatch, e1)
		assert.Equal(t, []string{"1.BeforeDispatch", "2.BeforeDispatch"}, evts)
		assert.Equal(t, []*request.Execution{e1, e1}, execs)
		evts = evts[:0]
		execs = execs[:0]
		g.run(AfterTransport, e2)
		assert.Equal(t, []string{"1.AfterTransport"}, evts)
		assert.Equal(t, []*request.Execution{e2}, execs)
		evts = evts[:0]
		execs = execs[:0]
		g.run(BeforeDispatch, e2)
		assert.Equal(t, []string{"1.BeforeDispatch", "2.BeforeDispatch"}, evts)
		assert.Equal(t, []*request.Execution{e2, e2}, execs)
	})
	t.Run("PushFront", func(t *testing.T) {
		evts = evts[:0]
		execs = execs[:0]
		h3 := &testHandler{seq: 3, evts: &evts, execs: &execs}
		g.PushFront(BeforeDispatch, h3)
		g.run(BeforeDispatch, &request.Execution{})
		assert.Equal(t, []string{"3.BeforeDispatch", "1.BeforeDispatch", "2.BeforeDispatch"}, evts)
	})
	t.Run("empty group", func(t *testing.T) {
		var empty HandlerGroup
		assert.NotPanics(t, func() { empty.run(AfterDispatch, &request.Execution{}) })
		var nilGroup *HandlerGroup
		assert.NotPanics(t, func() { nilGroup.run(AfterDispatch, &request.Execution{}) })
		assert.Equal(t, 0, nilGroup.Len(AfterDispatch))
	})
}

type testHandler struct {
	seq   int
	evts  *[]string
	execs *[]*request.Execution
}

func (h *testHandler) Handle(evt Event, e *request.Execution) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.execs = append(*h.execs, e)
}

func TestHandlerFunc(t *testing.T) {
	var _evt Event
	var _e *request.Execution
	var f = func(evt Event, e *request.Execution) {
		_evt = evt
		_e = e
	}
	h := HandlerFunc(f)
	e := &request.Execution{}
	h.Handle(AfterTransport, e)

	assert.Equal(t, AfterTransport, _evt)
	assert.Same(t, e, _e)
}
