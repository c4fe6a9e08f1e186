// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "fmt"

// Params is an insertion-ordered record of query parameters. Values
// may be of any type: nil values are skipped when serializing, slices
// repeat their key, time.Time values render as ISO-8601, and maps and
// structs render as JSON.
//
// The zero value is an empty record ready to use.
type Params struct {
	keys   []string
	values map[string]interface{}
}

// NewParams builds a record from alternating keys and values, for
// example NewParams("page", 2, "q", "ham").
func NewParams(kv ...interface{}) *Params {
	if len(kv)%2 != 0 {
		panic("axios/request: odd number of params arguments")
	}
	p := &Params{}
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("axios/request: params key %v is not a string", kv[i]))
		}
		p.Set(k, kv[i+1])
	}
	return p
}

// Set sets key to value. A new key is appended after existing keys; an
// existing key keeps its position.
func (p *Params) Set(key string, value interface{}) *Params {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value for key and whether it is present.
func (p *Params) Get(key string) (interface{}, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Del removes key.
func (p *Params) Del(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Clone returns a copy of p. Values are copied by reference.
func (p *Params) Clone() *Params {
	if p == nil {
		return nil
	}
	c := &Params{keys: p.Keys()}
	if p.values != nil {
		c.values = make(map[string]interface{}, len(p.values))
		for k, v := range p.values {
			c.values[k] = v
		}
	}
	return c
}
