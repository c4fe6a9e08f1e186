// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axios

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/gogama/axios/cookie"
	"github.com/gogama/axios/header"
	"github.com/gogama/axios/request"
	"github.com/gogama/axios/transform"
	"github.com/gogama/axios/transport"
	"github.com/gogama/axios/urlutil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Default header values and XSRF names used by DefaultConfig.
const (
	DefaultAccept          = "application/json, text/plain, */*"
	DefaultFormContentType = "application/x-www-form-urlencoded"
	DefaultXSRFCookieName  = "XSRF-TOKEN"
	DefaultXSRFHeaderName  = "X-XSRF-TOKEN"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// A Client dispatches declarative request configs over HTTP. Its zero
// value is a valid configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer, DefaultConfig as its only defaults, the real clock for
// timeouts, no cookie store, no document origin, no logging, and an
// empty handler group (no event handlers/plug-ins).
//
// Client's HTTPDoer typically has an internal state (cached TCP
// connections) so Client instances should be reused instead of created
// as needed. Client is safe for concurrent use by multiple goroutines
// provided its fields are not changed while requests are in flight.
//
// For every dispatch, Client:
//
// • merges the request config over Defaults, which are themselves
// merged over DefaultConfig;
//
// • fails immediately, without touching the network, if the config's
// cancel token has already been cancelled;
//
// • builds the final URL from BaseURL, URL and Params;
//
// • runs the request transforms, which may rewrite both the body and
// the headers;
//
// • flattens the default header layers into the request's own
// headers;
//
// • sends the request with a fresh transport.Adapter; and
//
// • runs the response transforms over a successful response.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer transport.HTTPDoer
	// Defaults is merged over DefaultConfig and under each dispatched
	// config. It may be nil. It is never modified.
	Defaults *request.Config
	// Cookies is read for the XSRF token. If nil, no XSRF header is
	// sent.
	Cookies cookie.Store
	// Origin locates the document requests are made for. If nil, no
	// request is same-origin and relative URLs are sent as is.
	Origin urlutil.OriginResolver
	// Clock drives request timeouts and execution timestamps. If nil,
	// the real clock is used.
	Clock clock.Clock
	// Logger receives dispatch logs. If nil, nothing is logged.
	Logger *slog.Logger
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a dispatch.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// RequestIDHeader, if not empty, names a header set to a random
	// UUID on every request which does not already carry it.
	RequestIDHeader string
}

// DefaultConfig returns a new copy of the built-in defaults every
// dispatch starts from:
//
// • Accept is DefaultAccept for every method;
//
// • post, put and patch requests have the Content-Type
// DefaultFormContentType, which the default request transform drops
// in favor of JSON when the body is a plain record;
//
// • the XSRF cookie and header names are DefaultXSRFCookieName and
// DefaultXSRFHeaderName;
//
// • the request and response transforms are transform.DefaultRequest
// and transform.DefaultResponse; and
//
// • status codes from 200 to 299 are accepted.
func DefaultConfig() *request.Config {
	perMethod := make(map[request.Method]http.Header)
	for _, m := range request.Methods() {
		h := make(http.Header)
		if m.HasBody() {
			h.Set("Content-Type", DefaultFormContentType)
		}
		perMethod[m] = h
	}
	return &request.Config{
		Method: request.Get,
		Headers: request.HeaderSet{
			Defaults: request.DefaultHeaders{
				Common:    http.Header{"Accept": {DefaultAccept}},
				PerMethod: perMethod,
			},
		},
		XSRFCookieName:    DefaultXSRFCookieName,
		XSRFHeaderName:    DefaultXSRFHeaderName,
		TransformRequest:  []request.RequestTransformer{transform.DefaultRequest},
		TransformResponse: []request.ResponseTransformer{transform.DefaultResponse},
		ValidateStatus:    request.DefaultValidateStatus,
	}
}

// Dispatch sends the request described by cfg and returns its response.
// The config cfg is never modified; the config actually sent, with its
// final URL, body and flattened headers, is available as the Config
// field of the returned response or *request.Error.
//
// The error returned is one of:
//
// • a *request.Error if the exchange failed on the network, timed out,
// or produced a status rejected by ValidateStatus;
//
// • the cancel token's reason, verbatim, if cfg.CancelToken was
// cancelled before or during the exchange;
//
// • context.Cause(ctx) if ctx was done before or during the exchange;
// or
//
// • some other error if the request could not be built, for example
// because a transform failed or a header was invalid.
//
// On success the response is never nil.
func (c *Client) Dispatch(ctx context.Context, cfg *request.Config) (*request.Response, error) {
	handlers := c.Handlers
	clk := c.clock()

	e := request.Execution{
		Config: request.Merge(request.Merge(DefaultConfig(), c.Defaults), cfg),
		Start:  clk.Now(),
		Clock:  clk,
	}
	if c.RequestIDHeader != "" {
		e.RequestID = uuid.NewString()
	}
	handlers.run(BeforeDispatch, &e)

	logger := c.logger()
	logger.Debug("dispatching request",
		"method", e.Config.Method.Upper(),
		"url", e.Config.URL,
		"requestID", e.RequestID)

	c.dispatch(ctx, &e, handlers, clk, logger)

	e.End = clk.Now()
	if e.Err != nil {
		e.Response = nil
	}
	handlers.run(AfterDispatch, &e)
	return e.Response, e.Err
}

func (c *Client) dispatch(ctx context.Context, e *request.Execution, handlers *HandlerGroup, clk clock.Clock, logger *slog.Logger) {
	if t := e.Config.CancelToken; t != nil {
		if e.Err = t.Err(); e.Err != nil {
			logger.Debug("request cancelled before send", "error", e.Err)
			return
		}
	}
	if ctx.Err() != nil {
		e.Err = context.Cause(ctx)
		logger.Debug("request cancelled before send", "error", e.Err)
		return
	}

	resolved, err := c.resolve(e.Config, e.RequestID)
	if err != nil {
		e.Err = err
		logger.Warn("request could not be prepared", "url", e.Config.URL, "error", err)
		return
	}
	e.Config = resolved
	if c.RequestIDHeader != "" {
		e.RequestID = resolved.Headers.Header.Get(c.RequestIDHeader)
	}
	handlers.run(BeforeTransport, e)

	a := &transport.Adapter{
		HTTPDoer: c.HTTPDoer,
		Cookies:  c.Cookies,
		Origin:   c.Origin,
		Clock:    clk,
		Logger:   c.Logger,
	}
	e.Response, e.Err = a.Send(ctx, resolved)
	handlers.run(AfterTransport, e)
	if e.Err != nil {
		if request.IsAxiosError(e.Err) || ctx.Err() != nil || isTokenReason(resolved, e.Err) {
			logger.Debug("request failed", "url", resolved.URL, "kind", request.KindOf(e.Err), "error", e.Err)
		} else {
			logger.Warn("request could not be sent", "url", resolved.URL, "error", e.Err)
		}
		return
	}
	logger.Debug("request settled", "url", resolved.URL, "status", e.Response.Status)

	res := e.Response
	data, err := transform.Apply(res.Data, res.Headers, res.Config.TransformResponse)
	if err != nil {
		e.Err = errors.Wrap(err, "transforming response data")
		logger.Warn("response transform failed", "url", resolved.URL, "error", err)
		return
	}
	res.Data = data
}

// resolve returns a copy of merged with its method normalized, its URL
// built, its body transformed, and its headers flattened. The request id, if not empty,
// is set unless the headers already carry one.
func (c *Client) resolve(merged *request.Config, requestID string) (*request.Config, error) {
	r := merged.Clone()
	r.Method = r.Method.Normalize()

	u, err := urlutil.TransformURL(r)
	if err != nil {
		return nil, errors.Wrap(err, "building request URL")
	}
	r.URL = u

	data, err := transform.Apply(r.Data, &r.Headers, r.TransformRequest)
	if err != nil {
		return nil, errors.Wrap(err, "transforming request data")
	}
	r.Data = data

	r.Headers = request.HeaderSet{Header: header.Flatten(r.Headers, r.Method)}
	if requestID != "" && r.Headers.Header.Get(c.RequestIDHeader) == "" {
		r.Headers.Header.Set(c.RequestIDHeader, requestID)
	}
	return r, nil
}

func isTokenReason(c *request.Config, err error) bool {
	return c.CancelToken != nil && c.CancelToken.Err() == err
}

// Get issues a GET to the specified URL, using cfg for every other
// setting. The cfg parameter may be nil.
func (c *Client) Get(ctx context.Context, url string, cfg *request.Config) (*request.Response, error) {
	return Get(ctx, c, url, cfg)
}

// Delete issues a DELETE to the specified URL.
func (c *Client) Delete(ctx context.Context, url string, cfg *request.Config) (*request.Response, error) {
	return Delete(ctx, c, url, cfg)
}

// Head issues a HEAD to the specified URL.
func (c *Client) Head(ctx context.Context, url string, cfg *request.Config) (*request.Response, error) {
	return Head(ctx, c, url, cfg)
}

// Options issues an OPTIONS to the specified URL.
func (c *Client) Options(ctx context.Context, url string, cfg *request.Config) (*request.Response, error) {
	return Options(ctx, c, url, cfg)
}

// Post issues a POST to the specified URL with data as the body. The
// data parameter accepts the same values as request.Config.Data.
func (c *Client) Post(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	return Post(ctx, c, url, data, cfg)
}

// Put issues a PUT to the specified URL with data as the body.
func (c *Client) Put(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	return Put(ctx, c, url, data, cfg)
}

// Patch issues a PATCH to the specified URL with data as the body.
func (c *Client) Patch(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	return Patch(ctx, c, url, data, cfg)
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
func (c *Client) CloseIdleConnections() {
	var doer transport.HTTPDoer = http.DefaultClient
	if c.HTTPDoer != nil {
		doer = c.HTTPDoer
	}
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) clock() clock.Clock {
	if c.Clock == nil {
		return clock.New()
	}
	return c.Clock
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}
