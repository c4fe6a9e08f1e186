// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gogama/axios/request"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the YAML form of a defaults file.
type File struct {
	BaseURL         string            `yaml:"baseURL"`
	Timeout         Duration          `yaml:"timeout"`
	Method          string            `yaml:"method"`
	ResponseType    string            `yaml:"responseType"`
	WithCredentials bool              `yaml:"withCredentials"`
	XSRFCookieName  string            `yaml:"xsrfCookieName"`
	XSRFHeaderName  string            `yaml:"xsrfHeaderName"`
	Auth            *Auth             `yaml:"auth"`
	Headers         Header            `yaml:"headers"`
	HeaderDefaults  map[string]Header `yaml:"headerDefaults"`
}

// Auth is the YAML form of request.Auth.
type Auth struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Header maps header names to one or more values.
type Header map[string]Values

// Values is a header value list that unmarshals from either a YAML
// string or a YAML sequence of strings.
type Values []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Values) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*v = Values{s}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*v = list
	return nil
}

// Duration is a time.Duration that unmarshals from YAML strings (e.g. "60s", "5m").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "duration %q", s)
	}
	if parsed < 0 {
		return errors.Errorf("duration %q is negative", s)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the standard time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

var responseTypes = map[string]request.ResponseType{
	"":            "",
	"text":        request.ResponseText,
	"json":        request.ResponseJSON,
	"blob":        request.ResponseBlob,
	"arraybuffer": request.ResponseArrayBuffer,
	"document":    request.ResponseDocument,
}

// Parse reads a defaults file from YAML bytes. An empty document
// yields an empty config.
func Parse(data []byte) (*request.Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "axios/config: parsing YAML")
	}
	return f.Config()
}

// Load reads a defaults file from path.
func Load(path string) (*request.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "axios/config: reading defaults file")
	}
	return Parse(data)
}

// Config converts f to a request.Config, validating it.
func (f *File) Config() (*request.Config, error) {
	rt, ok := responseTypes[strings.ToLower(f.ResponseType)]
	if !ok {
		return nil, errors.Errorf("axios/config: unknown responseType %q", f.ResponseType)
	}
	m := request.Method(f.Method)
	if !m.Valid() {
		return nil, errors.Errorf("axios/config: invalid method %q", f.Method)
	}
	c := &request.Config{
		BaseURL:         f.BaseURL,
		Timeout:         f.Timeout.Duration(),
		ResponseType:    rt,
		WithCredentials: f.WithCredentials,
		XSRFCookieName:  f.XSRFCookieName,
		XSRFHeaderName:  f.XSRFHeaderName,
		Headers: request.HeaderSet{
			Header: f.Headers.toHTTP(),
		},
	}
	if m != "" {
		c.Method = m.Normalize()
	}
	if f.Auth != nil {
		c.Auth = &request.Auth{Username: f.Auth.Username, Password: f.Auth.Password}
	}
	for layer, h := range f.HeaderDefaults {
		if strings.EqualFold(layer, "common") {
			c.Headers.Defaults.Common = h.toHTTP()
			continue
		}
		lm := request.Method(layer)
		if layer == "" || !lm.Valid() {
			return nil, errors.Errorf("axios/config: invalid headerDefaults layer %q", layer)
		}
		if c.Headers.Defaults.PerMethod == nil {
			c.Headers.Defaults.PerMethod = make(map[request.Method]http.Header)
		}
		c.Headers.Defaults.PerMethod[lm.Normalize()] = h.toHTTP()
	}
	return c, nil
}

func (h Header) toHTTP() http.Header {
	if h == nil {
		return nil
	}
	out := make(http.Header, len(h))
	for k, vs := range h {
		ck := http.CanonicalHeaderKey(k)
		out[ck] = append(out[ck], vs...)
	}
	return out
}
