// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogama/axios/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullYAML = `
baseURL: https://api.example.com/v2
timeout: 1m30s
method: PUT
responseType: JSON
withCredentials: true
xsrfCookieName: csrftoken
xsrfHeaderName: X-CSRFToken
auth:
  username: svc
  password: hunter2
headers:
  x-client: billing
  Accept-Language: [en, fr]
headerDefaults:
  common:
    Accept: application/json
  POST:
    content-type: application/json
  delete: {}
`

func TestParse(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		c, err := Parse([]byte(fullYAML))

		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v2", c.BaseURL)
		assert.Equal(t, 90*time.Second, c.Timeout)
		assert.Equal(t, request.Put, c.Method)
		assert.Equal(t, request.ResponseJSON, c.ResponseType)
		assert.True(t, c.WithCredentials)
		assert.Equal(t, "csrftoken", c.XSRFCookieName)
		assert.Equal(t, "X-CSRFToken", c.XSRFHeaderName)
		assert.Equal(t, &request.Auth{Username: "svc", Password: "hunter2"}, c.Auth)
		assert.Equal(t, http.Header{
			"X-Client":        {"billing"},
			"Accept-Language": {"en", "fr"},
		}, c.Headers.Header)
		assert.Equal(t, http.Header{"Accept": {"application/json"}}, c.Headers.Defaults.Common)
		assert.Equal(t, map[request.Method]http.Header{
			request.Post:   {"Content-Type": {"application/json"}},
			request.Delete: {},
		}, c.Headers.Defaults.PerMethod)
		assert.Empty(t, c.URL)
		assert.Nil(t, c.TransformRequest)
		assert.Nil(t, c.ValidateStatus)
	})
	t.Run("empty", func(t *testing.T) {
		for _, doc := range []string{"", "\n", "{}"} {
			c, err := Parse([]byte(doc))
			require.NoError(t, err, doc)
			assert.Equal(t, &request.Config{}, c, doc)
		}
	})
	t.Run("errors", func(t *testing.T) {
		testCases := []struct {
			name string
			yaml string
			msg  string
		}{
			{name: "unknown key", yaml: "baseUrl: x", msg: "axios/config: parsing YAML"},
			{name: "not a mapping", yaml: "- a", msg: "axios/config: parsing YAML"},
			{name: "bad duration", yaml: "timeout: soon", msg: `duration "soon"`},
			{name: "negative duration", yaml: "timeout: -1s", msg: `duration "-1s" is negative`},
			{name: "response type", yaml: "responseType: stream", msg: `unknown responseType "stream"`},
			{name: "method", yaml: "method: GE T", msg: `invalid method "GE T"`},
			{name: "layer", yaml: "headerDefaults:\n  \"a b\": {}", msg: `invalid headerDefaults layer "a b"`},
			{name: "header list", yaml: "headers:\n  A: {b: c}", msg: "axios/config: parsing YAML"},
		}
		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				c, err := Parse([]byte(testCase.yaml))
				assert.Nil(t, c)
				assert.ErrorContains(t, err, testCase.msg)
			})
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "defaults.yaml")
		require.NoError(t, os.WriteFile(path, []byte("baseURL: http://localhost:8080\ntimeout: 250ms\n"), 0o600))

		c, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", c.BaseURL)
		assert.Equal(t, 250*time.Millisecond, c.Timeout)
	})
	t.Run("missing", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Nil(t, c)
		assert.ErrorContains(t, err, "axios/config: reading defaults file")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValues(t *testing.T) {
	c, err := Parse([]byte("headers:\n  A: 1\n  B: [x, 'y z']\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, c.Headers.Header.Values("A"))
	assert.Equal(t, []string{"x", "y z"}, c.Headers.Header.Values("B"))
}
