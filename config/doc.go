// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package config loads client defaults from YAML.

A defaults file holds the settings of a request.Config which can be
written down as data. For example:

	baseURL: https://api.example.com/v2
	timeout: 10s
	responseType: json
	xsrfCookieName: csrftoken
	xsrfHeaderName: X-CSRFToken
	auth:
	  username: svc
	  password: hunter2
	headers:
	  X-Client: billing
	headerDefaults:
	  common:
	    Accept: application/json
	  post:
	    Content-Type: application/json

Header values may be a single string or a list of strings. Unknown keys
are an error, as are unknown response types, invalid method names and
invalid durations.

The loaded config is meant for Client.Defaults, where it is merged over
the built-in defaults.
*/
package config
