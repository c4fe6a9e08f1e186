// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormData_Encode(t *testing.T) {
	f := &FormData{}
	f.Append("name", "ham")
	f.AppendFile("upload", "eggs.txt", strings.NewReader("spam"))
	assert.Equal(t, 2, f.Len())

	b, contentType, err := f.Encode()
	require.NoError(t, err)
	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	require.NotEmpty(t, params["boundary"])

	r := multipart.NewReader(bytes.NewReader(b), params["boundary"])
	p, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "name", p.FormName())
	v, _ := io.ReadAll(p)
	assert.Equal(t, "ham", string(v))
	p, err = r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "upload", p.FormName())
	assert.Equal(t, "eggs.txt", p.FileName())
	v, _ = io.ReadAll(p)
	assert.Equal(t, "spam", string(v))
	_, err = r.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestFormData_EncodeError(t *testing.T) {
	f := &FormData{}
	f.AppendFile("upload", "bad.txt", failingReader{})
	_, _, err := f.Encode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `copying form file "upload"`)
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("disk gone")
}
