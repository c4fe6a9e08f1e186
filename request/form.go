// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/pkg/errors"
)

// FormData is a multipart/form-data body. Its Content-Type, including
// the boundary, is chosen when it is encoded, so any Content-Type set
// on a request carrying FormData is discarded.
type FormData struct {
	parts []formPart
}

type formPart struct {
	name     string
	value    string
	filename string
	content  io.Reader
}

// Append adds a plain field.
func (f *FormData) Append(name, value string) {
	f.parts = append(f.parts, formPart{name: name, value: value})
}

// AppendFile adds a file field whose content is read from r when the
// form is encoded.
func (f *FormData) AppendFile(name, filename string, r io.Reader) {
	f.parts = append(f.parts, formPart{name: name, filename: filename, content: r})
}

// Len returns the number of fields.
func (f *FormData) Len() int {
	return len(f.parts)
}

// Encode writes the form as a multipart body and returns it together
// with the Content-Type naming its boundary.
func (f *FormData) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range f.parts {
		if p.content == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", errors.Wrapf(err, "writing form field %q", p.name)
			}
			continue
		}
		fw, err := w.CreateFormFile(p.name, p.filename)
		if err != nil {
			return nil, "", errors.Wrapf(err, "creating form file %q", p.name)
		}
		if _, err = io.Copy(fw, p.content); err != nil {
			return nil, "", errors.Wrapf(err, "copying form file %q", p.name)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "closing multipart writer")
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
