// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	cause := errors.New("connection refused")
	e := &Error{Message: "Network Error", Err: cause}
	assert.EqualError(t, e, "Network Error")
	assert.True(t, e.IsAxiosError())
	assert.False(t, e.Timeout())
	assert.Same(t, cause, errors.Unwrap(e))
	assert.True(t, errors.Is(e, cause))

	assert.True(t, (&Error{Code: CodeAborted}).Timeout())
}

func TestIsAxiosError(t *testing.T) {
	assert.False(t, IsAxiosError(nil))
	assert.False(t, IsAxiosError(errors.New("plain")))
	assert.True(t, IsAxiosError(&Error{}))
	assert.True(t, IsAxiosError(fmt.Errorf("outer: %w", &Error{})))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Cancelled, KindOf(context.Canceled))
	assert.Equal(t, Cancelled, KindOf(context.DeadlineExceeded))
	assert.Equal(t, "Timeout", KindOf(&Error{Code: CodeAborted}).String())
	assert.Equal(t, "Other", Other.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "Kind(-1)", Kind(-1).String())
}
