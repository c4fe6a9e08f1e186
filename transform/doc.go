// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transform runs chains of request and response body
// transforms and provides the default transforms, which encode plain
// records as JSON on the way out and decode JSON text on the way in.
package transform
