// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "errors"

var (
	// ErrInvalidTransform is returned for a transform with non-finite
	// components or a non-unit rotation.
	ErrInvalidTransform = errors.New("frame: invalid transform")

	// ErrBusClosed is returned when subscribing to or publishing on a closed [Bus].
	ErrBusClosed = errors.New("frame: bus closed")

	// ErrUnknownHandle is returned when unsubscribing a handle that is not subscribed.
	ErrUnknownHandle = errors.New("frame: unknown subscription handle")

	// ErrEmptyFrame is returned when subscribing or publishing with an empty frame name.
	ErrEmptyFrame = errors.New("frame: empty frame name")

	// ErrNilCallback is returned when subscribing with a nil callback.
	ErrNilCallback = errors.New("frame: nil callback")
)
