// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package urlutil

import (
	"net"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// An OriginResolver reports the location of the document on whose
// behalf requests are made. Same-origin decisions compare request URLs
// against it.
type OriginResolver interface {
	Location() *url.URL
}

// StaticOrigin is an OriginResolver with a fixed location.
type StaticOrigin struct {
	URL *url.URL
}

// Location returns o.URL.
func (o StaticOrigin) Location() *url.URL {
	return o.URL
}

// ParseOrigin parses rawURL into a StaticOrigin. The URL must be
// absolute.
func ParseOrigin(rawURL string) (StaticOrigin, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return StaticOrigin{}, errors.Wrap(err, "parsing origin")
	}
	if !u.IsAbs() || u.Host == "" {
		return StaticOrigin{}, errors.Errorf("axios/urlutil: origin %q is not absolute", rawURL)
	}
	return StaticOrigin{URL: u}, nil
}

// IsSameOrigin reports whether requestURL, resolved against the
// resolver's location, has the same scheme and host as that location.
// A relative requestURL is therefore same-origin. If r is nil or has no
// location, no URL is same-origin.
func IsSameOrigin(requestURL string, r OriginResolver) bool {
	if r == nil {
		return false
	}
	loc := r.Location()
	if loc == nil {
		return false
	}
	u, err := loc.Parse(requestURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, loc.Scheme) &&
		strings.EqualFold(originHost(u), originHost(loc))
}

// originHost returns the host with the scheme's default port removed.
func originHost(u *url.URL) string {
	host, port, err := net.SplitHostPort(u.Host)
	if err != nil {
		return u.Host
	}
	switch {
	case port == "", port == "80" && strings.EqualFold(u.Scheme, "http"), port == "443" && strings.EqualFold(u.Scheme, "https"):
		if strings.Contains(host, ":") {
			return "[" + host + "]"
		}
		return host
	}
	return u.Host
}
