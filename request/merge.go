// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "net/http"

// Merge returns a new Config combining defaults with c, where c takes
// precedence. Neither argument is modified, and either may be nil.
//
// The merge follows these rules:
//
// • URL, Params and Data are taken from c only. Defaults never supply
// them.
//
// • Header maps are merged key by key, with c's values replacing the
// defaults' values for the same key. This applies to the literal
// headers, to the Common layer, and to each PerMethod layer.
//
// • Auth is merged field by field, with c's non-empty fields winning.
//
// • WithCredentials is true if either config has it set.
//
// • A non-empty Method is normalized to lower case.
//
// • Every other field is taken from c if it is not the zero value, and
// from defaults otherwise. In consequence a zero Timeout in c cannot
// override a non-zero default.
func Merge(defaults, c *Config) *Config {
	if defaults == nil {
		defaults = &Config{}
	}
	if c == nil {
		c = &Config{}
	}
	m := defaults.Clone()
	m.URL = c.URL
	m.Params = c.Clone().Params
	m.Data = c.Data
	if c.Method != "" {
		m.Method = c.Method
	}
	if m.Method != "" {
		m.Method = m.Method.Normalize()
	}
	if c.BaseURL != "" {
		m.BaseURL = c.BaseURL
	}
	m.Headers.Header = mergeHeader(m.Headers.Header, c.Headers.Header)
	m.Headers.Defaults.Common = mergeHeader(m.Headers.Defaults.Common, c.Headers.Defaults.Common)
	for method, h := range c.Headers.Defaults.PerMethod {
		if m.Headers.Defaults.PerMethod == nil {
			m.Headers.Defaults.PerMethod = make(map[Method]http.Header)
		}
		method = method.Normalize()
		m.Headers.Defaults.PerMethod[method] = mergeHeader(m.Headers.Defaults.PerMethod[method], h)
	}
	if c.ParamsSerializer != nil {
		m.ParamsSerializer = c.ParamsSerializer
	}
	if c.Timeout != 0 {
		m.Timeout = c.Timeout
	}
	if c.ResponseType != "" {
		m.ResponseType = c.ResponseType
	}
	m.WithCredentials = m.WithCredentials || c.WithCredentials
	if c.XSRFCookieName != "" {
		m.XSRFCookieName = c.XSRFCookieName
	}
	if c.XSRFHeaderName != "" {
		m.XSRFHeaderName = c.XSRFHeaderName
	}
	if c.OnDownloadProgress != nil {
		m.OnDownloadProgress = c.OnDownloadProgress
	}
	if c.OnUploadProgress != nil {
		m.OnUploadProgress = c.OnUploadProgress
	}
	m.Auth = mergeAuth(m.Auth, c.Auth)
	if c.ValidateStatus != nil {
		m.ValidateStatus = c.ValidateStatus
	}
	if c.TransformRequest != nil {
		m.TransformRequest = append([]RequestTransformer(nil), c.TransformRequest...)
	}
	if c.TransformResponse != nil {
		m.TransformResponse = append([]ResponseTransformer(nil), c.TransformResponse...)
	}
	if c.CancelToken != nil {
		m.CancelToken = c.CancelToken
	}
	return m
}

func mergeHeader(dst, src http.Header) http.Header {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(http.Header, len(src))
	}
	for k, vs := range src {
		dst[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	return dst
}

func mergeAuth(dst, src *Auth) *Auth {
	if src == nil {
		return dst
	}
	if dst == nil {
		a := *src
		return &a
	}
	if src.Username != "" {
		dst.Username = src.Username
	}
	if src.Password != "" {
		dst.Password = src.Password
	}
	return dst
}
