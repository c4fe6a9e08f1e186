// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
)

// An Execution represents the state of a single dispatch.
//
// The dispatch pipeline creates one Execution per call and updates it as
// the request progresses: Config is replaced as each stage resolves it,
// and Response or Err is set when the transport settles. Event handlers
// receive the Execution and may read it, but should treat its exported
// fields as read-only. Use SetValue and Value to carry handler data.
type Execution struct {
	// Config is the config as resolved so far. Before the transport
	// runs it is the merged config; afterward it is the fully resolved
	// config sent to the transport.
	Config *Config

	// RequestID is the value of the request id header injected by the
	// client, or empty.
	RequestID string

	// Start is the time the dispatch started.
	Start time.Time

	// End is the time the dispatch ended, or the zero time while it is
	// in flight.
	End time.Time

	// Clock is the clock Start and End were read from. Duration uses it
	// while the dispatch is in flight. If nil, the real clock is used.
	Clock clock.Clock

	// Response is the response, once the transport has succeeded.
	Response *Response

	// Err is the failure, once the dispatch has failed.
	Err error

	data context.Context
}

// StatusCode returns the response status code, or 0 if there is no
// response. A response rejected by status validation still has its
// status code reported.
func (e *Execution) StatusCode() int {
	if e.Response != nil {
		return e.Response.Status
	}
	var ae *Error
	if errors.As(e.Err, &ae) && ae.Response != nil {
		return ae.Response.Status
	}
	return 0
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return e.now().Sub(e.Start)
	}

	return e.End.Sub(e.Start)
}

func (e *Execution) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// Kind classifies Err.
func (e *Execution) Kind() Kind {
	return KindOf(e.Err)
}

// Timeout indicates whether Err is a timeout.
func (e *Execution) Timeout() bool {
	return e.Kind() == Timeout
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • it may not be nil;
//
// • it must be comparable;
//
// • it should not be of type string or any other built-in type to avoid
// collisions between different event handlers putting data into the
// same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
