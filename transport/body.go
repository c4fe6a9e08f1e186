// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"github.com/gogama/axios/request"
	"github.com/pkg/errors"
)

const formContentType = "application/x-www-form-urlencoded"

type body struct {
	r           io.Reader
	length      int64
	contentType string
	multipart   bool
}

// encodeBody converts a transformed request body into a reader. The
// conversion logic is:
//
// • nil produces no body;
//
// • a string or []byte is sent as is;
//
// • a url.Values is form-encoded, with the form Content-Type used if
// the request names none;
//
// • a *request.FormData is multipart-encoded, and its Content-Type,
// naming the boundary, replaces any the request names;
//
// • an io.Reader is streamed with an unknown length, unless it is a
// *bytes.Reader, *bytes.Buffer or *strings.Reader; and
//
// • any other type is an error.
func encodeBody(data interface{}) (body, error) {
	if request.IsNil(data) {
		return body{}, nil
	}
	switch x := data.(type) {
	case string:
		return body{r: strings.NewReader(x), length: int64(len(x))}, nil
	case []byte:
		return body{r: bytes.NewReader(x), length: int64(len(x))}, nil
	case url.Values:
		s := x.Encode()
		return body{r: strings.NewReader(s), length: int64(len(s)), contentType: formContentType}, nil
	case *request.FormData:
		b, ct, err := x.Encode()
		if err != nil {
			return body{}, errors.Wrap(err, "encoding form data")
		}
		return body{r: bytes.NewReader(b), length: int64(len(b)), contentType: ct, multipart: true}, nil
	case *bytes.Reader:
		return body{r: x, length: int64(x.Len())}, nil
	case *bytes.Buffer:
		return body{r: x, length: int64(x.Len())}, nil
	case *strings.Reader:
		return body{r: x, length: int64(x.Len())}, nil
	case io.Reader:
		return body{r: x, length: -1}, nil
	}
	return body{}, errors.Errorf("axios/transport: invalid body type %T (use nil, "+
		"string, []byte, io.Reader, url.Values or *request.FormData)", data)
}
