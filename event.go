// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axios

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeDispatch identifies the event that occurs before the
	// dispatch starts.
	//
	// When Client fires BeforeDispatch, the execution's config is the
	// merged config: defaults and call config combined, but with the
	// URL not yet built, the body not yet transformed and the headers
	// not yet flattened. The start time and request id are set.
	BeforeDispatch Event = iota
	// BeforeTransport identifies the event that occurs after the config
	// has been fully resolved but before it is handed to the transport.
	//
	// When Client fires BeforeTransport, the execution's config is the
	// resolved config which WILL BE sent.
	//
	// BeforeTransport never fires if the dispatch failed earlier, for
	// example because the cancel token was already cancelled.
	BeforeTransport
	// AfterTransport identifies the event that occurs after the
	// transport settles, regardless of whether it succeeded.
	//
	// When Client fires AfterTransport, exactly one of the execution's
	// response and error fields is set. The response body has not yet
	// been through the response transforms.
	AfterTransport
	// AfterDispatch identifies the event that occurs after the dispatch
	// ends.
	//
	// When Client fires AfterDispatch, the execution holds the outcome
	// returned to the caller, and its end time is set.
	//
	// Note that AfterDispatch always fires, even when BeforeTransport
	// and AfterTransport did not.
	AfterDispatch
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeDispatch",
	"BeforeTransport",
	"AfterTransport",
	"AfterDispatch",
}

// Events returns a slice containing all events which can occur in a
// dispatch by Client, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeDispatch,
		BeforeTransport,
		AfterTransport,
		AfterDispatch,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

func (evt Event) valid() bool {
	return evt >= 0 && evt < eventSentinel
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
