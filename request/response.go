// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "net/http"

// A Response is the normalized result of a completed exchange.
//
// A Response is constructed once, when the transport reports
// completion. Afterward only Data changes, when the response
// transforms run.
type Response struct {
	// Data is the response body, presented according to the config's
	// ResponseType and then transformed.
	Data interface{}

	// Status is the HTTP status code.
	Status int

	// StatusText is the reason phrase, for example "Not Found".
	StatusText string

	// Headers holds the response headers keyed by lower-case name.
	Headers ResponseHeader

	// Config is the resolved config which produced the response.
	Config *Config

	// Request is the request sent to the transport.
	Request *http.Request
}
