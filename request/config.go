// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/url"
	"time"

	"github.com/gogama/axios/cancel"
)

// A ResponseType selects how the raw response body is presented as
// Response.Data before the response transforms run.
type ResponseType string

const (
	// ResponseText, and the empty ResponseType, present the body as a
	// string decoded to UTF-8 according to the response charset.
	ResponseText ResponseType = "text"
	// ResponseJSON decodes the body as JSON. A body which is not valid
	// JSON is presented as nil.
	ResponseJSON ResponseType = "json"
	// ResponseBlob presents the body as a []byte.
	ResponseBlob ResponseType = "blob"
	// ResponseArrayBuffer presents the body as a []byte.
	ResponseArrayBuffer ResponseType = "arraybuffer"
	// ResponseDocument parses the body as HTML and presents the
	// document root, an *html.Node from golang.org/x/net/html.
	ResponseDocument ResponseType = "document"
)

// Auth holds HTTP Basic Authentication credentials.
type Auth struct {
	Username string
	Password string
}

// A ProgressEvent reports body transfer progress. Total is only
// meaningful when LengthComputable is true.
type ProgressEvent struct {
	Loaded           int64
	Total            int64
	LengthComputable bool
}

// A ProgressFunc receives progress events as a body is transferred.
type ProgressFunc func(ProgressEvent)

// A RequestTransformer transforms a request body before it is sent. It
// may modify the header set, for example to choose a Content-Type for
// the body it produces.
type RequestTransformer func(data interface{}, h *HeaderSet) (interface{}, error)

// A ResponseTransformer transforms a response body after it is
// received.
type ResponseTransformer func(data interface{}, h ResponseHeader) (interface{}, error)

// DefaultValidateStatus accepts status codes from 200 to 299.
func DefaultValidateStatus(status int) bool {
	return status >= 200 && status < 300
}

// A Config describes a single declarative HTTP request.
//
// Fields left at their zero value take the value from the defaults the
// config is merged over (see Merge). A Config is not modified by
// dispatching it.
type Config struct {
	// URL is the request URL, absolute or relative to BaseURL.
	URL string

	// Method is the HTTP method. It is normalized to lower case
	// internally; the empty method means Get.
	Method Method

	// BaseURL is prefixed to URL unless URL is absolute.
	BaseURL string

	// Headers holds the call's literal headers and the default header
	// layers Flatten folds into them.
	Headers HeaderSet

	// Params is serialized into the query string. It may be a *Params
	// (ordered record), a url.Values (query-string container), a
	// map[string]interface{} (serialized in sorted key order), or a
	// struct with `url` tags (see github.com/google/go-querystring).
	Params interface{}

	// ParamsSerializer, if set, replaces the built-in serialization of
	// Params.
	ParamsSerializer func(params interface{}) string

	// Data is the request body before the request transforms run.
	// After transformation it must be nil, a string, a []byte, an
	// io.Reader, a url.Values, or a *FormData.
	Data interface{}

	// Timeout bounds the exchange. Zero means no timeout.
	Timeout time.Duration

	// ResponseType selects how the response body is presented.
	ResponseType ResponseType

	// WithCredentials requests that the XSRF header be sent even to
	// cross-origin URLs.
	WithCredentials bool

	// XSRFCookieName names the cookie whose value is echoed in the
	// XSRFHeaderName header.
	XSRFCookieName string
	XSRFHeaderName string

	OnDownloadProgress ProgressFunc
	OnUploadProgress   ProgressFunc

	// Auth, if set, overwrites any Authorization header with HTTP
	// Basic credentials.
	Auth *Auth

	// ValidateStatus decides which response status codes succeed. If
	// nil, DefaultValidateStatus is used.
	ValidateStatus func(status int) bool

	TransformRequest  []RequestTransformer
	TransformResponse []ResponseTransformer

	// CancelToken, if set, cancels the request when cancellation is
	// requested on it.
	CancelToken *cancel.Token
}

// Clone returns a copy of c that shares no header maps, transform
// slices or parameter containers with c. Data is copied by reference.
func (c *Config) Clone() *Config {
	c2 := new(Config)
	*c2 = *c
	c2.Headers = c.Headers.Clone()
	switch p := c.Params.(type) {
	case *Params:
		c2.Params = p.Clone()
	case url.Values:
		c2.Params = cloneValues(p)
	}
	if c.Auth != nil {
		a := *c.Auth
		c2.Auth = &a
	}
	if c.TransformRequest != nil {
		c2.TransformRequest = append([]RequestTransformer(nil), c.TransformRequest...)
	}
	if c.TransformResponse != nil {
		c2.TransformResponse = append([]ResponseTransformer(nil), c.TransformResponse...)
	}
	return c2
}

// Validate reports whether status is accepted by c.ValidateStatus, or
// by DefaultValidateStatus if none is set.
func (c *Config) Validate(status int) bool {
	if c.ValidateStatus == nil {
		return DefaultValidateStatus(status)
	}
	return c.ValidateStatus(status)
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}
	c := make(url.Values, len(v))
	for k, vs := range v {
		c[k] = append([]string(nil), vs...)
	}
	return c
}
