// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package cancel provides Token, a cooperative cancellation primitive for
in-flight request dispatches.

A Token starts out pending. Once cancellation is requested it holds a
reason, which never changes afterward, and its Done channel is closed.
Create a token together with the function that cancels it:

	token, cancelFunc := cancel.NewSource()
	cfg := &request.Config{URL: "/slow", CancelToken: token}
	go func() {
		_, err := client.Dispatch(ctx, cfg)
		if cancel.IsCancel(err) {
			...
		}
	}()
	cancelFunc("user navigated away")

A single Token may be shared by any number of concurrent dispatches.
Cancelling it cancels all of them.
*/
package cancel
