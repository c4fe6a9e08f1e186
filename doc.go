// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package axios provides a declarative HTTP client: describe a request as
a request.Config and the client builds, sends and settles it.

Create a Client to begin making requests.

	client := &axios.Client{}
	res, err := client.Get(ctx, "https://www.example.com/users", &request.Config{
		Params: request.NewParams("id", 12345),
	})
	...
	res, err := client.Post(ctx, "https://www.example.com/users",
		map[string]interface{}{"name": "fred"}, nil)

A plain record body, such as a map or a struct, is encoded as JSON and
sent as application/json. A JSON response is decoded into Response.Data.
A response whose status is not accepted by ValidateStatus (2xx by
default) fails with a *request.Error carrying the response.

Settings shared by many requests belong in Client.Defaults, which may
be loaded from YAML with package config:

	defaults, err := config.Load("client.yaml")
	...
	client := &axios.Client{
		Defaults: defaults,
	}

For control over how the client sends HTTP requests and receives HTTP
responses, use a custom HTTPDoer. For example, use a GoLang standard
HTTP client sharing a cookie jar with the client's XSRF cookie store:

	jar, err := cookie.NewJar("https://app.example.com")
	...
	client := &axios.Client{
		HTTPDoer: &http.Client{Jar: jar.Jar},
		Cookies:  jar,
		Origin:   urlutil.StaticOrigin{URL: jar.URL},
	}

To cancel requests, share a token from package cancel between them:

	token, cancelFunc := cancel.NewSource()
	go client.Get(ctx, "/slow", &request.Config{CancelToken: token})
	...
	cancelFunc("user navigated away")

To hook into the details of the client's dispatch logic, install a
handler into the appropriate handler chain:

	handlers := &axios.HandlerGroup{}
	handlers.PushBack(axios.AfterDispatch, axios.HandlerFunc(
		func(_ axios.Event, e *request.Execution) {
			log.Printf("%s took %s (%s)", e.Config.URL, e.Duration(), e.Kind())
		}),
	)
	client := &axios.Client{
		Handlers: handlers,
	}

Package axios provides a basic interface for the client's dispatch
method (Dispatcher); a combined interface that adds one convenience
method per HTTP method (Executor); and utility functions for working
with a Dispatcher (Inflate, Get, Delete, Head, Options, Post, Put and
Patch).
*/
package axios
