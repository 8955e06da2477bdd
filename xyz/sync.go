// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/tfview/frame"
	"cogentcore.org/tfview/math32"
)

// Synchronizer keeps the pose of one [Camera] equal to the inverse of the
// latest [frame.Transform] published for its bound frame.
//
// Every transform is applied as soon as it is delivered, verbatim: there
// is no smoothing, reordering or coalescing, so the port determines the
// order. Transforms that fail [frame.Transform.Validate] are logged and
// dropped, leaving the camera at its last good pose. Transforms that
// arrive after Unbind are dropped too.
//
// A Synchronizer is meant to be used from a single goroutine, the same
// one that renders; see [Loop.Post] for delivering from other goroutines.
type Synchronizer struct {

	// Port is the frame subscription port used by Bind.
	Port frame.Port

	// OnApply, if set, is called after each applied pose update.
	OnApply func()

	frameName string
	camera    *Camera
	handle    frame.Handle
	bound     bool

	// gen is incremented on every Bind, so that callbacks from an
	// earlier binding are recognized as late.
	gen uint64

	applied uint64
	dropped uint64
}

// NewSynchronizer returns a new unbound Synchronizer using the given port.
func NewSynchronizer(port frame.Port) *Synchronizer {
	return &Synchronizer{Port: port}
}

// Bind subscribes to the named frame, driving the pose of the given camera.
// It returns [ErrAlreadyBound] if already bound.
func (sy *Synchronizer) Bind(name string, cam *Camera) error {
	if sy.bound {
		return fmt.Errorf("%w to frame %q", ErrAlreadyBound, sy.frameName)
	}
	if sy.Port == nil {
		return ErrNilPort
	}
	if cam == nil {
		return errors.New("xyz.Synchronizer.Bind: nil camera")
	}
	sy.gen++
	gen := sy.gen
	sy.frameName, sy.camera, sy.bound = name, cam, true
	h, err := sy.Port.Subscribe(name, func(tf frame.Transform) {
		sy.receive(gen, tf)
	})
	if err != nil {
		sy.frameName, sy.camera, sy.bound = "", nil, false
		return fmt.Errorf("xyz.Synchronizer: subscribing to frame %q: %w", name, err)
	}
	sy.handle = h
	return nil
}

// Unbind unsubscribes from the frame. It is a no-op if not bound.
// The camera keeps the last pose that was applied.
func (sy *Synchronizer) Unbind() {
	if !sy.bound {
		return
	}
	h, name := sy.handle, sy.frameName
	sy.bound = false
	sy.camera = nil
	sy.handle = frame.Handle{}
	if !h.IsValid() {
		return
	}
	if err := sy.Port.Unsubscribe(h); err != nil && !errors.Is(err, frame.ErrUnknownHandle) {
		slog.Warn("xyz.Synchronizer: unsubscribe", "frame", name, "err", err)
	}
}

// IsBound returns true if currently bound to a frame.
func (sy *Synchronizer) IsBound() bool {
	return sy.bound
}

// Frame returns the name of the bound frame, or "" if unbound.
func (sy *Synchronizer) Frame() string {
	if !sy.bound {
		return ""
	}
	return sy.frameName
}

// Applied returns the number of transforms applied to the camera.
func (sy *Synchronizer) Applied() uint64 {
	return sy.applied
}

// Dropped returns the number of transforms dropped, either because
// they were invalid or because they arrived after Unbind.
func (sy *Synchronizer) Dropped() uint64 {
	return sy.dropped
}

// OnTransformUpdate applies the given transform for the current binding.
// It is what the port calls on every publish; a call made after Unbind
// is dropped.
func (sy *Synchronizer) OnTransformUpdate(tf frame.Transform) {
	sy.receive(sy.gen, tf)
}

func (sy *Synchronizer) receive(gen uint64, tf frame.Transform) {
	if !sy.bound || gen != sy.gen {
		sy.dropped++
		slog.Debug("xyz.Synchronizer: dropping transform", "err", ErrDisposedCallback)
		return
	}
	if err := sy.apply(tf); err != nil {
		sy.dropped++
		slog.Warn("xyz.Synchronizer: dropping transform", "frame", sy.frameName, "err", err)
		return
	}
	sy.applied++
	if sy.OnApply != nil {
		sy.OnApply()
	}
}

// apply sets the camera pose to the inverse of tf, and then points the
// camera one unit ahead along its own forward axis, keeping its own up
// axis, so that Target and UpDir match the new pose.
func (sy *Synchronizer) apply(tf frame.Transform) error {
	if err := tf.Validate(); err != nil {
		return err
	}
	inv := tf.Inverse()
	t, r := inv.Translation(), inv.Rotation()
	pos := math32.Vec3(float32(t.X), float32(t.Y), float32(t.Z))
	quat := math32.NewQuat(float32(r.Imag), float32(r.Jmag), float32(r.Kmag), float32(r.Real))
	if !pos.IsFinite() {
		return fmt.Errorf("%w: translation %v overflows float32", frame.ErrInvalidTransform, pos)
	}
	quat.Normalize()

	cam := sy.camera
	cam.SetPose(pos, quat)
	target := cam.LocalToWorld(CameraForward)
	up := math32.Vector3Y.MulQuat(quat)
	cam.LookAt(target, up)
	return nil
}
