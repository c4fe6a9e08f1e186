// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axios

import (
	"fmt"

	"github.com/gogama/axios/request"
)

// A HandlerGroup holds one handler chain per Event. Install it in a
// Client to observe or adjust each dispatch as it moves from merged
// config to settled outcome. The zero value is an empty group.
//
// A HandlerGroup must not be modified while a Client using it is
// dispatching.
type HandlerGroup struct {
	chains [numEvents][]Handler
}

// PushBack appends h to the chain for evt, so it runs after every
// handler already installed there.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	checkInstall(evt, h)
	g.chains[evt] = append(g.chains[evt], h)
}

// PushFront prepends h to the chain for evt, so it runs before every
// handler already installed there.
func (g *HandlerGroup) PushFront(evt Event, h Handler) {
	checkInstall(evt, h)
	g.chains[evt] = append([]Handler{h}, g.chains[evt]...)
}

// Len returns the number of handlers in the chain for evt.
func (g *HandlerGroup) Len(evt Event) int {
	if g == nil || !evt.valid() {
		return 0
	}
	return len(g.chains[evt])
}

func (g *HandlerGroup) run(evt Event, e *request.Execution) {
	if g == nil {
		return
	}
	for _, h := range g.chains[evt] {
		h.Handle(evt, e)
	}
}

func checkInstall(evt Event, h Handler) {
	if !evt.valid() {
		panic(fmt.Sprintf("axios: invalid event %d", int(evt)))
	}
	if h == nil {
		panic("axios: nil handler")
	}
}

// A Handler observes one stage of a dispatch. Handlers installed at
// BeforeDispatch or BeforeTransport may modify e.Config; later stages
// see the result.
type Handler interface {
	Handle(Event, *request.Execution)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(Event, *request.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *request.Execution) {
	f(evt, e)
}
