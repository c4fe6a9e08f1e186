// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package urlutil

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/gogama/axios/request"
	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
)

var absoluteURL = regexp.MustCompile(`(?i)^([a-z][a-z\d+\-.]*:)?//`)

// IsAbsoluteURL reports whether u starts with a scheme followed by
// "//", or with "//" alone.
func IsAbsoluteURL(u string) bool {
	return absoluteURL.MatchString(u)
}

// CombineURL joins base and relative with exactly one slash between
// them. If relative is empty, base is returned unchanged.
func CombineURL(base, relative string) string {
	if relative == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(relative, "/")
}

// TransformURL returns the URL c will be sent to: c.URL prefixed with
// c.BaseURL unless c.URL is absolute, with c.Params serialized into the
// query string.
func TransformURL(c *request.Config) (string, error) {
	u := c.URL
	if c.BaseURL != "" && !IsAbsoluteURL(u) {
		u = CombineURL(c.BaseURL, u)
	}
	return BuildURL(u, c.Params, c.ParamsSerializer)
}

// BuildURL appends params to u as a query string.
//
// If serializer is not nil, it produces the query string. Otherwise a
// url.Values is used in its encoded form, a struct is converted to a
// url.Values with github.com/google/go-querystring, and a *Params or a
// map with string keys is serialized key by key (a map in sorted key
// order). Any other params type is an error.
//
// Serializing a record key by key skips nil values, repeats a slice
// value's key with a "[]" suffix once per element, renders dates as
// ISO-8601 in UTC, renders plain records as JSON, and renders every
// other value with fmt.Sprint. Keys and values are encoded with Encode.
//
// If the serialized query is empty, u is returned unchanged. Otherwise
// any fragment is cut from u before the query is appended, using "&"
// if u already has a query and "?" if not.
func BuildURL(u string, params interface{}, serializer func(interface{}) string) (string, error) {
	if request.IsNil(params) {
		return u, nil
	}

	var serialized string
	if serializer != nil {
		serialized = serializer(params)
	} else {
		var err error
		serialized, err = serialize(params)
		if err != nil {
			return "", err
		}
	}

	if serialized == "" {
		return u, nil
	}
	if i := strings.IndexByte(u, '#'); i != -1 {
		u = u[:i]
	}
	if strings.IndexByte(u, '?') == -1 {
		return u + "?" + serialized, nil
	}
	return u + "&" + serialized, nil
}

func serialize(params interface{}) (string, error) {
	switch p := params.(type) {
	case url.Values:
		return p.Encode(), nil
	case *request.Params:
		return serializeParams(p), nil
	case request.Params:
		return serializeParams(&p), nil
	}

	rv := reflect.Indirect(reflect.ValueOf(params))
	switch rv.Kind() {
	case reflect.Struct:
		v, err := query.Values(params)
		if err != nil {
			return "", errors.Wrap(err, "encoding struct params")
		}
		return v.Encode(), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		p := &request.Params{}
		for _, k := range keys {
			p.Set(k, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
		}
		return serializeParams(p), nil
	}

	return "", errors.Errorf("axios/urlutil: unsupported params type %T", params)
}

func serializeParams(p *request.Params) string {
	var parts []string
	for _, key := range p.Keys() {
		val, _ := p.Get(key)
		if request.IsNil(val) {
			continue
		}
		var values []interface{}
		rv := reflect.ValueOf(val)
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			key += "[]"
			for i := 0; i < rv.Len(); i++ {
				values = append(values, rv.Index(i).Interface())
			}
		} else {
			values = []interface{}{val}
		}
		for _, v := range values {
			if request.IsNil(v) {
				continue
			}
			parts = append(parts, Encode(key)+"="+Encode(stringify(v)))
		}
	}
	return strings.Join(parts, "&")
}

func stringify(v interface{}) string {
	switch {
	case request.IsDate(v):
		return ISOString(v)
	case request.IsPlainRecord(v):
		b, err := json.Marshal(v)
		if err == nil {
			return string(b)
		}
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if b, ok := rv.Interface().([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(rv.Interface())
}
