// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axios

import (
	"context"

	"github.com/gogama/axios/request"
)

// Dispatcher is the interface that wraps the basic Dispatch method.
//
// Dispatch sends the request described by a config and returns the
// response (and error, if any). Client implements the Dispatcher
// interface, and any other Dispatcher implementation must behave
// substantially the same as Client.Dispatch.
//
// Any Dispatcher can be converted into an Executor via the Inflate
// function.
type Dispatcher interface {
	Dispatch(ctx context.Context, cfg *request.Config) (*request.Response, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any idle which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the basic Dispatch method with
// one convenience method per HTTP method, and CloseIdleConnections.
//
// In every convenience method the cfg parameter may be nil. It is
// never modified.
//
// Any Dispatcher can be converted into an Executor via the Inflate
// function.
type Executor interface {
	Dispatcher
	IdleCloser
	Get(ctx context.Context, url string, cfg *request.Config) (*request.Response, error)
	Delete(ctx context.Context, url string, cfg *request.Config) (*request.Response, error)
	Head(ctx context.Context, url string, cfg *request.Config) (*request.Response, error)
	Options(ctx context.Context, url string, cfg *request.Config) (*request.Response, error)
	Post(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error)
	Put(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error)
	Patch(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error)
}

// Get uses the specified Dispatcher to issue a GET to the specified
// URL. Apart from its URL and method, the request is described by cfg,
// which may be nil.
func Get(ctx context.Context, d Dispatcher, url string, cfg *request.Config) (*request.Response, error) {
	return d.Dispatch(ctx, with(cfg, request.Get, url))
}

// Delete uses the specified Dispatcher to issue a DELETE to the
// specified URL.
func Delete(ctx context.Context, d Dispatcher, url string, cfg *request.Config) (*request.Response, error) {
	return d.Dispatch(ctx, with(cfg, request.Delete, url))
}

// Head uses the specified Dispatcher to issue a HEAD to the specified
// URL.
func Head(ctx context.Context, d Dispatcher, url string, cfg *request.Config) (*request.Response, error) {
	return d.Dispatch(ctx, with(cfg, request.Head, url))
}

// Options uses the specified Dispatcher to issue an OPTIONS to the
// specified URL.
func Options(ctx context.Context, d Dispatcher, url string, cfg *request.Config) (*request.Response, error) {
	return d.Dispatch(ctx, with(cfg, request.Options, url))
}

// Post uses the specified Dispatcher to issue a POST to the specified
// URL with data as the body. The data replaces any set in cfg.
func Post(ctx context.Context, d Dispatcher, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	c := with(cfg, request.Post, url)
	c.Data = data
	return d.Dispatch(ctx, c)
}

// Put uses the specified Dispatcher to issue a PUT to the specified URL
// with data as the body.
func Put(ctx context.Context, d Dispatcher, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	c := with(cfg, request.Put, url)
	c.Data = data
	return d.Dispatch(ctx, c)
}

// Patch uses the specified Dispatcher to issue a PATCH to the specified
// URL with data as the body.
func Patch(ctx context.Context, d Dispatcher, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	c := with(cfg, request.Patch, url)
	c.Data = data
	return d.Dispatch(ctx, c)
}

// with returns a shallow copy of cfg with its method and URL replaced.
func with(cfg *request.Config, m request.Method, url string) *request.Config {
	var c request.Config
	if cfg != nil {
		c = *cfg
	}
	c.Method = m
	c.URL = url
	return &c
}

// Inflate converts any non-nil Dispatcher into an Executor. This may be
// helpful for interop across library boundaries, i.e. if code that only
// has access to a Dispatcher needs to call a function that requires an
// Executor.
func Inflate(d Dispatcher) Executor {
	if d == nil {
		panic("axios: nil dispatcher")
	}

	if e, ok := d.(Executor); ok {
		return e
	}

	return inflated{d}
}

type inflated struct {
	d Dispatcher
}

func (i inflated) Dispatch(ctx context.Context, cfg *request.Config) (*request.Response, error) {
	return i.d.Dispatch(ctx, cfg)
}

func (i inflated) Get(ctx context.Context, url string, cfg *request.Config) (*request.Response, error) {
	return Get(ctx, i.d, url, cfg)
}

func (i inflated) Delete(ctx context.Context, url string, cfg *request.Config) (*request.Response, error) {
	return Delete(ctx, i.d, url, cfg)
}

func (i inflated) Head(ctx context.Context, url string, cfg *request.Config) (*request.Response, error) {
	return Head(ctx, i.d, url, cfg)
}

func (i inflated) Options(ctx context.Context, url string, cfg *request.Config) (*request.Response, error) {
	return Options(ctx, i.d, url, cfg)
}

func (i inflated) Post(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	return Post(ctx, i.d, url, data, cfg)
}

func (i inflated) Put(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	return Put(ctx, i.d, url, data, cfg)
}

func (i inflated) Patch(ctx context.Context, url string, data interface{}, cfg *request.Config) (*request.Response, error) {
	return Patch(ctx, i.d, url, data, cfg)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.d.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
