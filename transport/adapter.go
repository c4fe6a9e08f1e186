// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gogama/axios/cookie"
	"github.com/gogama/axios/header"
	"github.com/gogama/axios/request"
	"github.com/gogama/axios/urlutil"
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package. In
	// particular it must return promptly once the request context is
	// cancelled.
	Do(r *http.Request) (*http.Response, error)
}

// An Adapter sends resolved request configs over an HTTPDoer. Its zero
// value is a valid configuration which uses http.DefaultClient, the
// real clock, no cookie store, no document origin, and no logging.
//
// An Adapter holds no per-request state, so one value may serve any
// number of concurrent Send calls.
type Adapter struct {
	// HTTPDoer performs the HTTP exchange. If nil, http.DefaultClient
	// is used.
	HTTPDoer HTTPDoer

	// Cookies is read for the XSRF token. If nil, no XSRF header is
	// ever sent.
	Cookies cookie.Store

	// Origin locates the document requests are made for. Relative
	// request URLs are resolved against it, and requests to it are
	// same-origin for the purposes of the XSRF header.
	Origin urlutil.OriginResolver

	// Clock drives request timeouts. If nil, the real clock is used.
	Clock clock.Clock

	// Logger receives debug logs for each exchange. If nil, nothing is
	// logged.
	Logger *slog.Logger
}

type result struct {
	resp *http.Response
	body []byte
	err  error
}

// Send performs the exchange described by c, which must already be
// resolved: its URL final, its data transformed, and its headers
// flattened into c.Headers.Header. The default header layers of c are
// ignored. Send does not modify c.
//
// On success Send returns a response whose Data is the raw body
// presented according to c.ResponseType. The returned error is a
// *request.Error for network failures, timeouts and statuses rejected
// by c.Validate; it is the token's reason if c.CancelToken is cancelled
// first, and context.Cause(ctx) if ctx is done first. Any other error
// means the request could not be built and nothing was sent.
func (a *Adapter) Send(ctx context.Context, c *request.Config) (*request.Response, error) {
	b, err := encodeBody(c.Data)
	if err != nil {
		return nil, err
	}
	h, err := a.prepareHeader(c, b)
	if err != nil {
		return nil, err
	}

	reqCtx, abort := context.WithCancel(ctx)
	defer abort()
	gate := &progressGate{}
	defer gate.close()
	req, err := a.newRequest(reqCtx, c, b, gate.wrap(c.OnUploadProgress))
	if err != nil {
		return nil, err
	}
	req.Header = h

	logger := a.logger()
	logger.Debug("sending request", "method", req.Method, "url", req.URL.String())

	var timeoutC <-chan time.Time
	if c.Timeout > 0 {
		timer := a.clock().Timer(c.Timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}
	var cancelC <-chan struct{}
	if c.CancelToken != nil {
		cancelC = c.CancelToken.Done()
	}

	results := make(chan result, 1)
	go a.exchange(req, gate.wrap(c.OnDownloadProgress), results)

	select {
	case r := <-results:
		if r.err != nil {
			if ctx.Err() != nil {
				logger.Debug("request cancelled by context", "url", req.URL.String())
				return nil, context.Cause(ctx)
			}
			logger.Debug("request failed", "url", req.URL.String(), "error", r.err)
			return nil, &request.Error{
				Message: "Network Error",
				Config:  c,
				Request: req,
				Err:     r.err,
			}
		}
		return a.settle(c, req, r)
	case <-timeoutC:
		abort()
		logger.Debug("request timed out", "url", req.URL.String(), "timeout", c.Timeout)
		return nil, &request.Error{
			Message: fmt.Sprintf("timeout of %s exceeded", c.Timeout),
			Config:  c,
			Code:    request.CodeAborted,
			Request: req,
		}
	case <-cancelC:
		abort()
		logger.Debug("request cancelled", "url", req.URL.String())
		return nil, c.CancelToken.Reason()
	case <-ctx.Done():
		abort()
		logger.Debug("request cancelled by context", "url", req.URL.String())
		return nil, context.Cause(ctx)
	}
}

func (a *Adapter) exchange(req *http.Request, onDownload request.ProgressFunc, results chan<- result) {
	resp, err := a.doer().Do(req)
	if err != nil {
		results <- result{err: err}
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	b, err := io.ReadAll(newProgressReader(resp.Body, resp.ContentLength, onDownload))
	if err != nil {
		results <- result{err: errors.Wrap(err, "reading response body")}
		return
	}
	results <- result{resp: resp, body: b}
}

func (a *Adapter) settle(c *request.Config, req *http.Request, r result) (*request.Response, error) {
	res := &request.Response{
		Data:       present(c.ResponseType, r.resp.Header.Get("Content-Type"), r.body),
		Status:     r.resp.StatusCode,
		StatusText: statusText(r.resp),
		Headers:    header.FromHTTP(r.resp.Header),
		Config:     c,
		Request:    req,
	}
	a.logger().Debug("request completed", "url", req.URL.String(), "status", res.Status)
	if c.Validate(res.Status) {
		return res, nil
	}
	return nil, &request.Error{
		Message:  fmt.Sprintf("Request failed with status code %d", res.Status),
		Config:   c,
		Request:  req,
		Response: res,
	}
}

func (a *Adapter) newRequest(ctx context.Context, c *request.Config, b body, onUpload request.ProgressFunc) (*http.Request, error) {
	target := c.URL
	if a.Origin != nil && !urlutil.IsAbsoluteURL(target) {
		if loc := a.Origin.Location(); loc != nil {
			u, err := loc.Parse(target)
			if err != nil {
				return nil, errors.Wrap(err, "resolving request URL")
			}
			target = u.String()
		}
	}
	if !c.Method.Valid() {
		return nil, errors.Errorf("axios/transport: invalid method %q", string(c.Method))
	}

	var r io.Reader
	if b.r != nil {
		r = newProgressReader(b.r, b.length, onUpload)
	}
	req, err := http.NewRequestWithContext(ctx, c.Method.Upper(), target, r)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	switch {
	case b.r == nil:
	case b.length == 0:
		req.Body = http.NoBody
		req.ContentLength = 0
	case b.length > 0:
		req.ContentLength = b.length
	default:
		req.ContentLength = -1
	}
	return req, nil
}

// prepareHeader computes the header sent with c. The steps, in order,
// are:
//
// • a multipart body drops any explicit Content-Type;
//
// • if credentials are requested or the URL is same-origin, the XSRF
// cookie value, if present, is set under the XSRF header name;
//
// • Auth replaces any Authorization header with Basic credentials;
//
// • headers with no values are dropped, and so is Content-Type when
// there is no body; and finally
//
// • the body's own Content-Type is applied: a multipart boundary type
// always, a form type only if no Content-Type is left.
func (a *Adapter) prepareHeader(c *request.Config, b body) (http.Header, error) {
	h := c.Headers.Header.Clone()
	if h == nil {
		h = make(http.Header)
	}

	if b.multipart {
		deleteFold(h, "Content-Type")
	}

	if (c.WithCredentials || urlutil.IsSameOrigin(c.URL, a.Origin)) && c.XSRFCookieName != "" && a.Cookies != nil {
		if v, ok := a.Cookies.Read(c.XSRFCookieName); ok && v != "" && c.XSRFHeaderName != "" {
			h.Set(c.XSRFHeaderName, v)
		}
	}

	if c.Auth != nil {
		h.Set("Authorization", "Basic "+basicAuth(c.Auth.Username, c.Auth.Password))
	}

	out := make(http.Header, len(h))
	for k, vs := range h {
		if len(vs) == 0 {
			continue
		}
		if b.r == nil && strings.EqualFold(k, "Content-Type") {
			continue
		}
		if !httpguts.ValidHeaderFieldName(k) {
			return nil, errors.Errorf("axios/transport: invalid header field name %q", k)
		}
		for _, v := range vs {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, errors.Errorf("axios/transport: invalid header field value for %q", k)
			}
			out.Add(k, v)
		}
	}

	if b.contentType != "" && (b.multipart || out.Get("Content-Type") == "") {
		out.Set("Content-Type", b.contentType)
	}
	return out, nil
}

func deleteFold(h http.Header, key string) {
	for k := range h {
		if strings.EqualFold(k, key) {
			delete(h, k)
		}
	}
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

func (a *Adapter) doer() HTTPDoer {
	if a.HTTPDoer == nil {
		return http.DefaultClient
	}
	return a.HTTPDoer
}

func (a *Adapter) clock() clock.Clock {
	if a.Clock == nil {
		return clock.New()
	}
	return a.Clock
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (a *Adapter) logger() *slog.Logger {
	if a.Logger == nil {
		return discard
	}
	return a.Logger
}
