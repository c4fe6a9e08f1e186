// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gogama/axios/cancel"
)

// CodeAborted is the Error code of a request which exceeded its
// timeout.
const CodeAborted = "ECONNABORTED"

// An Error describes a request which failed in the transport: a
// network failure, a timeout, or a response rejected by status
// validation. Cancellation is never reported as an Error; the
// cancellation reason is returned as is.
type Error struct {
	// Message is a human-readable description.
	Message string

	// Config is the resolved config of the failed request.
	Config *Config

	// Code is a machine-readable code, or empty. Timeouts have the
	// code CodeAborted.
	Code string

	// Request is the request given to the transport.
	Request *http.Request

	// Response is set only when status validation failed.
	Response *Response

	// Err is the underlying cause, if any.
	Err error
}

// Error returns the message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsAxiosError always returns true. It lets code that only has an
// error value recognize a request error by interface.
func (e *Error) IsAxiosError() bool {
	return true
}

// Timeout reports whether the request exceeded its timeout.
func (e *Error) Timeout() bool {
	return e.Code == CodeAborted
}

// IsAxiosError reports whether err is, or wraps, an *Error.
func IsAxiosError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// A Kind classifies a dispatch failure.
type Kind int

const (
	// Other is any failure not classified below, including a
	// cancellation reason chosen by the caller.
	Other Kind = iota
	// Cancelled indicates a *cancel.Cancel reason or a done context.
	Cancelled
	// Network indicates the exchange failed without a response.
	Network
	// Timeout indicates the request exceeded its timeout.
	Timeout
	// Status indicates a response rejected by status validation.
	Status
)

var kindNames = []string{"Other", "Cancelled", "Network", "Timeout", "Status"}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[int(k)]
}

// KindOf classifies err. A nil error is classified as Other.
func KindOf(err error) Kind {
	if err == nil {
		return Other
	}
	var e *Error
	if errors.As(err, &e) {
		switch {
		case e.Timeout():
			return Timeout
		case e.Response != nil:
			return Status
		default:
			return Network
		}
	}
	if cancel.IsCancel(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Cancelled
	}
	return Other
}
