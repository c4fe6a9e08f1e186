// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transport sends one resolved request.Config over an HTTPDoer
and converts the outcome into a *request.Response or an error.

An Adapter makes exactly one HTTP exchange per Send call. It races four
outcome sources and settles on the first to finish:

• completion, when the HTTPDoer returns a response and its body has
been read, or network failure, when it returns an error;

• the config's timeout, which fails the call with a *request.Error
whose Code is request.CodeAborted;

• the config's cancel token, which fails the call with the token's
reason; and

• the context passed to Send, which fails the call with the context's
cause.

Whichever source loses is discarded: the in-flight HTTP request is
aborted by cancelling its context, and the goroutine performing the
exchange finishes on its own without blocking.
*/
package transport
