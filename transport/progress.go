// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"io"
	"sync"

	"github.com/gogama/axios/request"
)

// progressReader reports every successful read to fn.
type progressReader struct {
	r      io.Reader
	fn     request.ProgressFunc
	loaded int64
	total  int64
}

func newProgressReader(r io.Reader, total int64, fn request.ProgressFunc) io.Reader {
	if fn == nil || r == nil {
		return r
	}
	return &progressReader{r: r, fn: fn, total: total}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		p.fn(request.ProgressEvent{
			Loaded:           p.loaded,
			Total:            p.total,
			LengthComputable: p.total >= 0,
		})
	}
	return n, err
}

// progressGate stops progress callbacks once the exchange has settled,
// so none run after Send returns.
type progressGate struct {
	mu     sync.Mutex
	closed bool
}

func (g *progressGate) wrap(fn request.ProgressFunc) request.ProgressFunc {
	if fn == nil {
		return nil
	}
	return func(e request.ProgressEvent) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if !g.closed {
			fn(e)
		}
	}
}

func (g *progressGate) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}
