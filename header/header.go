// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package header

import (
	"net/http"
	"strings"

	"github.com/gogama/axios/request"
)

// ContentTypeJSON is the Content-Type set for bodies the default
// request transform encodes as JSON.
const ContentTypeJSON = "application/json;charset=utf-8"

// Flatten folds the default layers of s into a single header for a
// request with method m.
//
// The result starts from the literal headers in s.Header. The Common
// layer is overlaid on top, and then the layer for m (matched case
// insensitively). A key present in a later layer replaces the value
// from an earlier one, so the method layer wins over Common, which
// wins over the literal headers.
//
// Neither s nor its layers are modified. The result is never nil.
func Flatten(s request.HeaderSet, m request.Method) http.Header {
	h := make(http.Header, len(s.Header))
	overlay(h, s.Header)
	overlay(h, s.Defaults.Common)
	overlay(h, s.Defaults.Method(m))
	return h
}

func overlay(dst, src http.Header) {
	for k, vs := range src {
		dst[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
}

// Normalize prepares the header set of a request whose body is data,
// before data is serialized.
//
// Header keys in s.Header are canonicalized, merging keys which differ
// only in case. If data is a plain record, it will be encoded as JSON:
// unless s.Header already names a Content-Type, ContentTypeJSON is set,
// and Content-Type entries are removed from every default layer so the
// body's own type is the one sent.
func Normalize(s *request.HeaderSet, data interface{}) {
	if s.Header != nil {
		canonical := make(http.Header, len(s.Header))
		for k, vs := range s.Header {
			ck := http.CanonicalHeaderKey(k)
			canonical[ck] = append(canonical[ck], vs...)
		}
		s.Header = canonical
	}

	if !request.IsPlainRecord(data) {
		return
	}
	if s.Header.Get("Content-Type") == "" {
		s.Set("Content-Type", ContentTypeJSON)
	}
	deleteKey(s.Defaults.Common, "Content-Type")
	for _, h := range s.Defaults.PerMethod {
		deleteKey(h, "Content-Type")
	}
}

func deleteKey(h http.Header, key string) {
	for k := range h {
		if strings.EqualFold(k, key) {
			delete(h, k)
		}
	}
}

// Parse parses a raw header block, one "Name: value" field per line,
// into a record keyed by lower-case name.
//
// Each line is split at its first colon. Names and values are trimmed
// of surrounding white space and lines without a name are ignored. If a
// name appears on several lines, the last value wins.
func Parse(raw string) request.ResponseHeader {
	parsed := make(request.ResponseHeader)
	for _, line := range strings.Split(raw, "\n") {
		i := strings.IndexByte(line, ':')
		if i == -1 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:i]))
		if key == "" {
			continue
		}
		parsed[key] = strings.TrimSpace(line[i+1:])
	}
	return parsed
}

// FromHTTP renders h as a raw header block and parses it with Parse.
func FromHTTP(h http.Header) request.ResponseHeader {
	var b strings.Builder
	_ = h.Write(&b)
	return Parse(b.String())
}
