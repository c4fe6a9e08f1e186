// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package urlutil builds request URLs: it joins base and relative
// URLs, serializes query parameters using the same encoding rules as
// browser form libraries, and decides whether a URL is same-origin with
// respect to an injected document location.
package urlutil
