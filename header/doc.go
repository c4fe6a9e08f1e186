// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package header folds layered header defaults into a flat request
// header, picks the Content-Type of serialized bodies, and parses
// response headers into lower-case records.
package header
