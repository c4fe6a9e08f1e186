// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"io"
	"net/http"
	"net/url"
	"reflect"
	"time"
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	valuesType = reflect.TypeOf(url.Values(nil))
	headerType = reflect.TypeOf(http.Header(nil))
)

// IsPlainRecord reports whether v is a plain record: a map with string
// keys or a struct, or a non-nil pointer to one. Dates, Params,
// FormData, url.Values, http.Header and any io.Reader are not plain
// records.
//
// Plain records are JSON-encoded by the default request transform and
// when they appear as query parameter values.
func IsPlainRecord(v interface{}) bool {
	switch v.(type) {
	case nil, *Params, Params, *FormData, FormData:
		return false
	case io.Reader:
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		t := rv.Type()
		return t.Key().Kind() == reflect.String && t != valuesType && t != headerType
	case reflect.Struct:
		return rv.Type() != timeType
	default:
		return false
	}
}

// IsDate reports whether v is a time.Time or a non-nil *time.Time.
func IsDate(v interface{}) bool {
	switch x := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return x != nil
	default:
		return false
	}
}

// IsNil reports whether v is nil or a nil pointer, map, slice,
// interface, channel or func.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
