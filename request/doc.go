// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Config (describes a declarative
HTTP request), Response (describes its normalized result), and Error
(describes a failed request). These types flow through every stage of
the dispatch pipeline.

The first core type is Config. A Config describes one logical HTTP
request: the URL and optional base URL, the method, headers and layered
header defaults, query parameters, the body, and the policies which
govern the exchange (timeout, status validation, cancellation, body
transforms, progress callbacks).

	cfg := &request.Config{
		URL:    "/users",
		Method: request.Post,
		Params: request.NewParams("page", 2),
		Data:   map[string]interface{}{"name": "ham"},
	}
	res, err := client.Dispatch(ctx, cfg)
	...

Configs are usually incomplete on their own. The dispatch pipeline
merges them over a set of defaults using Merge, and never modifies the
caller's value: each stage works on a copy.

The second core type is Response, which is constructed exactly once,
when the underlying transport reports completion.

The third core type is Error. Every failure reported by the transport,
other than cancellation, is an *Error carrying the resolved Config, the
underlying *http.Request, an optional machine-readable Code, and, for
status validation failures only, the Response.

Finally Execution carries the state of a single dispatch to event
handlers installed on the client.
*/
package request
