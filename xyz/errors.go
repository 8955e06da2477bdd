// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "errors"

var (
	// ErrAlreadyBound is returned when binding a [Synchronizer] that is
	// already bound, without an intervening Unbind.
	ErrAlreadyBound = errors.New("xyz: synchronizer already bound")

	// ErrIndexOutOfRange is returned for a camera index outside of the
	// current cameras of a [Scene].
	ErrIndexOutOfRange = errors.New("xyz: camera index out of range")

	// ErrDisposedCallback marks a transform delivered to a synchronizer
	// after it was unbound. It is logged and the transform is dropped;
	// it is never returned to the caller.
	ErrDisposedCallback = errors.New("xyz: transform callback after unbind")

	// ErrNilPort is returned when a frame binding has no subscription port.
	ErrNilPort = errors.New("xyz: nil frame subscription port")

	// ErrActiveCamera is returned when removing the active camera.
	ErrActiveCamera = errors.New("xyz: cannot remove the active camera")

	// ErrFrameBound is returned for an operation that would write
	// the pose of a frame-bound camera.
	ErrFrameBound = errors.New("xyz: camera is frame bound")

	// ErrNoView is returned when restoring a saved view that does not exist.
	ErrNoView = errors.New("xyz: saved view not found")

	// ErrNoCamera is returned when rendering a scene that has no cameras,
	// which only happens after [Scene.Destroy].
	ErrNoCamera = errors.New("xyz: scene has no camera")

	// ErrInvalidOption is returned by [Options.Validate] for a bad
	// construction option.
	ErrInvalidOption = errors.New("xyz: invalid option")
)
