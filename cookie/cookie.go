// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cookie provides the cookie stores the transport reads the
// XSRF token from.
package cookie

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// A Store reads cookie values by name.
//
// Implementations of Store must be safe for concurrent use by multiple
// goroutines.
type Store interface {
	// Read returns the value of the named cookie and true, or the
	// empty string and false if there is no such cookie.
	Read(name string) (string, bool)
}

// Header is a Store over a Cookie header value of the form
// "name1=value1; name2=value2". Values are URI-decoded when read.
type Header string

// Read returns the first cookie in h with the given name.
func (h Header) Read(name string) (string, bool) {
	r := http.Request{Header: http.Header{"Cookie": {string(h)}}}
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	return unescape(c.Value), true
}

// A Jar is a Store reading the cookies an http.CookieJar would send to
// URL. Sharing the jar with the HTTP client used as the transport lets
// cookies set by responses, such as an XSRF token, be read back.
type Jar struct {
	Jar http.CookieJar
	URL *url.URL
}

// NewJar returns a Jar reading cookies for location from a new
// in-memory cookie jar which uses the public suffix list to limit
// cookie scope.
func NewJar(location string) (*Jar, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, errors.Wrap(err, "parsing cookie location")
	}
	j, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "creating cookie jar")
	}
	return &Jar{Jar: j, URL: u}, nil
}

// Read returns the value of the named cookie the jar holds for j.URL.
func (j *Jar) Read(name string) (string, bool) {
	if j.Jar == nil || j.URL == nil {
		return "", false
	}
	for _, c := range j.Jar.Cookies(j.URL) {
		if c.Name == name {
			return unescape(c.Value), true
		}
	}
	return "", false
}

// Set stores cookies in the jar as if j.URL had set them.
func (j *Jar) Set(cookies ...*http.Cookie) {
	j.Jar.SetCookies(j.URL, cookies)
}

func unescape(v string) string {
	u, err := url.PathUnescape(v)
	if err != nil {
		return v
	}
	return u
}
