// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"strings"
)

// DefaultHeaders holds the header layers folded into a request's own
// headers when it is dispatched: Common applies to every method, and
// each PerMethod entry applies only to requests with that method.
type DefaultHeaders struct {
	Common    http.Header
	PerMethod map[Method]http.Header
}

// Method returns the layer for method m, or nil. The lookup is case
// insensitive.
func (d DefaultHeaders) Method(m Method) http.Header {
	if d.PerMethod == nil {
		return nil
	}
	if h, ok := d.PerMethod[m]; ok {
		return h
	}
	return d.PerMethod[m.Normalize()]
}

// Empty reports whether d has no layers at all.
func (d DefaultHeaders) Empty() bool {
	return d.Common == nil && len(d.PerMethod) == 0
}

// Clone returns a deep copy of d.
func (d DefaultHeaders) Clone() DefaultHeaders {
	c := DefaultHeaders{Common: d.Common.Clone()}
	if d.PerMethod != nil {
		c.PerMethod = make(map[Method]http.Header, len(d.PerMethod))
		for m, h := range d.PerMethod {
			c.PerMethod[m] = h.Clone()
		}
	}
	return c
}

// A HeaderSet is a request's header bag before dispatch: the literal
// headers set for this call, and the default layers beneath them.
//
// Keeping the layers in their own structure means a header literally
// named "common" or "post" is just a header.
type HeaderSet struct {
	Header   http.Header
	Defaults DefaultHeaders
}

// Clone returns a deep copy of s.
func (s HeaderSet) Clone() HeaderSet {
	return HeaderSet{
		Header:   s.Header.Clone(),
		Defaults: s.Defaults.Clone(),
	}
}

// Set sets a literal header, allocating the map if needed.
func (s *HeaderSet) Set(key, value string) {
	if s.Header == nil {
		s.Header = make(http.Header)
	}
	s.Header.Set(key, value)
}

// A ResponseHeader maps lower-case response header names to values.
type ResponseHeader map[string]string

// Get returns the value of the named header. The lookup is case
// insensitive.
func (h ResponseHeader) Get(name string) string {
	return h[strings.ToLower(name)]
}
