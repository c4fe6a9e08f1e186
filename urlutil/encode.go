// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package urlutil

import (
	"strings"
	"time"
)

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes s for use as a query key or value.
//
// Every byte is escaped except ASCII letters and digits, the marks
// - _ . ! ~ * ' ( ), and the characters @ : $ , [ ] which are left
// readable. The space is encoded as "+".
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case shouldKeep(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	case '@', ':', '$', ',', '[', ']':
		return true
	}
	return false
}

// ISOString formats a time.Time or *time.Time in UTC with millisecond
// precision, for example "2019-04-01T09:30:00.000Z". Any other value
// yields the empty string.
func ISOString(v interface{}) string {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return ""
		}
		t = *x
	default:
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
