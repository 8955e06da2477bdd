// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "log/slog"

// ControlStates are the states of user control over the active camera.
type ControlStates int32

const (
	// Interactive means user input moves the camera.
	Interactive ControlStates = iota

	// Bound means the camera is driven by a frame, and user input
	// is suppressed so that it cannot fight the frame updates.
	Bound
)

func (cs ControlStates) String() string {
	switch cs {
	case Interactive:
		return "Interactive"
	case Bound:
		return "Bound"
	}
	return "ControlStates(?)"
}

// Arbiter decides, once per render tick, whether user navigation input
// is applied to the active camera. Input is suppressed exactly while the
// active camera is frame bound, and applied otherwise.
type Arbiter struct {

	// Suppressed is the number of ticks with input that was discarded.
	Suppressed uint64

	// Applied is the number of ticks with input that was applied.
	Applied uint64

	state ControlStates
}

// State returns the control state as of the last Update.
func (ar *Arbiter) State() ControlStates {
	return ar.state
}

// Update applies or discards the pending input of ct for the given
// camera, returning true if the camera was moved. Either argument may
// be nil, in which case nothing is moved.
func (ar *Arbiter) Update(cu *CameraUnit, ct *Controls) bool {
	st := Interactive
	if cu != nil && cu.IsFrameBound() {
		st = Bound
	}
	if st != ar.state {
		slog.Debug("xyz.Arbiter: control state", "from", ar.state, "to", st)
		ar.state = st
	}
	if cu == nil || ct == nil || !ct.Pending() {
		return false
	}
	if st == Bound {
		ct.Discard()
		ar.Suppressed++
		return false
	}
	ct.Apply(&cu.Camera)
	ar.Applied++
	return true
}
