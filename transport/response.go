// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gogama/axios/request"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// present converts a raw response body into the form requested by t.
func present(t request.ResponseType, contentType string, b []byte) interface{} {
	switch t {
	case request.ResponseJSON:
		var v interface{}
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
		return v
	case request.ResponseBlob, request.ResponseArrayBuffer:
		return b
	case request.ResponseDocument:
		doc, err := html.Parse(bytes.NewReader(b))
		if err != nil {
			return nil
		}
		return doc
	default:
		return decodeText(contentType, b)
	}
}

// decodeText decodes b to UTF-8 according to the charset named in
// contentType, or sniffed from b if none is named. If decoding fails
// the bytes are used as is.
func decodeText(contentType string, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	r, err := charset.NewReader(bytes.NewReader(b), contentType)
	if err != nil {
		return string(b)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return string(b)
	}
	return string(d)
}

func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if s := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); s != "" {
		return s
	}
	return http.StatusText(resp.StatusCode)
}
