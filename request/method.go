// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// A Method is an HTTP request method held in lower case. The empty
// Method means Get.
type Method string

// Methods understood by the default header layers.
const (
	Get     Method = "get"
	Post    Method = "post"
	Put     Method = "put"
	Patch   Method = "patch"
	Delete  Method = "delete"
	Head    Method = "head"
	Options Method = "options"
)

// Methods returns every method with a default header layer, no-body
// methods first.
func Methods() []Method {
	return []Method{Delete, Get, Head, Options, Post, Put, Patch}
}

// Normalize returns m in lower case, with the empty method replaced by
// Get.
func (m Method) Normalize() Method {
	if m == "" {
		return Get
	}
	return Method(strings.ToLower(string(m)))
}

// Upper returns the normalized method in the upper case form sent on
// the wire.
func (m Method) Upper() string {
	return strings.ToUpper(string(m.Normalize()))
}

// Valid reports whether m is a syntactically valid HTTP method token.
// The empty method is valid because it means Get.
func (m Method) Valid() bool {
	/*
	     Method         = "OPTIONS"                ; Section 9.2
	                    | "GET"                    ; Section 9.3
	                    | ...
	                    | extension-method
	   extension-method = token
	     token          = 1*<any CHAR except CTLs or separators>
	*/
	return strings.IndexFunc(string(m), isNotToken) == -1
}

// HasBody reports whether the method conventionally carries a request
// body, which decides the default Content-Type layer it receives.
func (m Method) HasBody() bool {
	switch m.Normalize() {
	case Post, Put, Patch:
		return true
	default:
		return false
	}
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
