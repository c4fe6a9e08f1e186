// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"encoding/json"

	"github.com/gogama/axios/header"
	"github.com/gogama/axios/request"
	"github.com/pkg/errors"
)

// Apply threads data through fns in order, handing each function the
// output of the previous one together with h. With no functions, data
// is returned unchanged. The first error stops the chain.
func Apply[H any, F ~func(interface{}, H) (interface{}, error)](data interface{}, h H, fns []F) (interface{}, error) {
	for i, fn := range fns {
		if fn == nil {
			continue
		}
		var err error
		data, err = fn(data, h)
		if err != nil {
			return nil, errors.Wrapf(err, "transform %d", i)
		}
	}
	return data, nil
}

// DefaultRequest is the default request transform. It normalizes the
// header set for data (see header.Normalize) and encodes a plain record
// as a JSON string. Any other body is returned unchanged.
func DefaultRequest(data interface{}, h *request.HeaderSet) (interface{}, error) {
	header.Normalize(h, data)
	if !request.IsPlainRecord(data) {
		return data, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "encoding JSON body")
	}
	return string(b), nil
}

// DefaultResponse is the default response transform. A string body
// which is valid JSON is replaced by its decoded value. A string which
// is not valid JSON, and any body which is not a string, is returned
// unchanged, so applying DefaultResponse to its own output has no
// effect unless the decoded value is itself a string.
func DefaultResponse(data interface{}, _ request.ResponseHeader) (interface{}, error) {
	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s, nil
	}
	return v, nil
}
