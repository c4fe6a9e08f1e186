// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axios

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/gogama/axios/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const yamlDefaults = `
baseURL: http://api.test/v1
auth:
  username: svc
  password: pw
headers:
  x-client: billing
headerDefaults:
  put:
    content-type: text/plain
`

func TestClientYAMLDefaults(t *testing.T) {
	defaults, err := config.Parse([]byte(yamlDefaults))
	require.NoError(t, err)
	doer := newMockHTTPDoer(t)
	var sent *http.Request
	var body []byte
	doer.On("Do", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(0).(*http.Request)
			body, _ = io.ReadAll(sent.Body)
		}).
		Return(jsonResponse(200, `{"ok":true}`), nil).
		Once()
	cl := &Client{HTTPDoer: doer, Defaults: defaults}

	res, err := cl.Put(context.Background(), "items", "raw", nil)

	require.NoError(t, err)
	doer.AssertExpectations(t)
	assert.Equal(t, map[string]interface{}{"ok": true}, res.Data)
	assert.Equal(t, "PUT", sent.Method)
	assert.Equal(t, "http://api.test/v1/items", sent.URL.String())
	assert.Equal(t, "raw", string(body))
	assert.Equal(t, "billing", sent.Header.Get("X-Client"))
	assert.Equal(t, "text/plain", sent.Header.Get("Content-Type"))
	assert.Equal(t, "Basic c3ZjOnB3", sent.Header.Get("Authorization"))
	assert.Equal(t, DefaultAccept, sent.Header.Get("Accept"))
}
