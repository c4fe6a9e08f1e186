// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cancel

import (
	"errors"
	"sync"
)

// A Cancel is the reason set on a Token cancelled by a Func. Its
// message is whatever the canceller passed.
type Cancel struct {
	Message string
}

// Error returns the cancellation message.
func (c *Cancel) Error() string {
	if c.Message == "" {
		return "axios/cancel: canceled"
	}
	return c.Message
}

// IsCancel reports whether err is, or wraps, a *Cancel.
func IsCancel(err error) bool {
	var c *Cancel
	return errors.As(err, &c)
}

// A Func requests cancellation of its Token with a *Cancel reason
// carrying message. Only the first call has any effect.
type Func func(message string)

// A CauseFunc requests cancellation of its Token using reason verbatim.
// Only the first call has any effect. A nil reason is replaced with an
// empty *Cancel.
type CauseFunc func(reason error)

// A Token is a cooperative cancellation signal. The zero value is not
// usable; construct tokens with New, NewSource, or NewSourceCause.
//
// Token is safe for concurrent use by multiple goroutines.
type Token struct {
	once   sync.Once
	done   chan struct{}
	lock   sync.Mutex
	reason error
}

// New constructs a Token and hands executor the function which cancels
// it. The executor runs synchronously before New returns.
func New(executor func(CauseFunc)) *Token {
	if executor == nil {
		panic("axios/cancel: nil executor")
	}
	t := &Token{done: make(chan struct{})}
	executor(t.cancel)
	return t
}

// NewSource returns a new pending Token and the Func that cancels it.
func NewSource() (*Token, Func) {
	var cf CauseFunc
	t := New(func(c CauseFunc) { cf = c })
	return t, func(message string) {
		cf(&Cancel{Message: message})
	}
}

// NewSourceCause returns a new pending Token and the CauseFunc that
// cancels it with a caller-chosen reason.
func NewSourceCause() (*Token, CauseFunc) {
	var cf CauseFunc
	t := New(func(c CauseFunc) { cf = c })
	return t, cf
}

func (t *Token) cancel(reason error) {
	if reason == nil {
		reason = &Cancel{}
	}
	t.once.Do(func() {
		t.lock.Lock()
		t.reason = reason
		t.lock.Unlock()
		close(t.done)
	})
}

// Done returns a channel that is closed when cancellation is requested.
func (t *Token) Done() <-chan struct{} {
	return t.done
}

// Reason returns the cancellation reason, or nil while the token is
// still pending.
func (t *Token) Reason() error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.reason
}

// Err is the synchronous cancellation check. It returns the reason if
// cancellation has been requested and nil otherwise.
func (t *Token) Err() error {
	select {
	case <-t.done:
		return t.Reason()
	default:
		return nil
	}
}
