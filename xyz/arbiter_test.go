// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/tfview/frame"
	"cogentcore.org/tfview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func userInput(ct *Controls) {
	ct.Orbit(20, 10)
	ct.Pan(3, -2)
	ct.Zoom(2)
}

func TestArbiterSuppressesBound(t *testing.T) {
	bus := frame.NewBus()
	cu, err := NewCameraUnit(CameraConfig{Frame: "base_link", Port: bus, Position: math32.Vec3(0, 0, 10)})
	require.NoError(t, err)
	require.NoError(t, bus.Publish("base_link", frame.NewTransform(r3.Vec{X: 1, Z: -5}, rotZ(45))))
	pos, q := cu.Camera.PoseValues()
	target := cu.Camera.Target

	ar := &Arbiter{}
	ct := NewControls(0)
	userInput(ct)
	assert.False(t, ar.Update(cu, ct))
	assert.Equal(t, Bound, ar.State())
	assert.False(t, ct.Pending())
	assert.Equal(t, uint64(1), ar.Suppressed)

	pos2, q2 := cu.Camera.PoseValues()
	assert.Equal(t, pos, pos2)
	assert.Equal(t, q, q2)
	assert.Equal(t, target, cu.Camera.Target)
}

func TestArbiterAppliesUnbound(t *testing.T) {
	cu, err := NewCameraUnit(CameraConfig{Position: math32.Vec3(0, 0, 10)})
	require.NoError(t, err)
	pos, q := cu.Camera.PoseValues()

	ar := &Arbiter{}
	ct := NewControls(0)
	userInput(ct)
	assert.True(t, ar.Update(cu, ct))
	assert.Equal(t, Interactive, ar.State())
	assert.False(t, ct.Pending())
	assert.Equal(t, uint64(1), ar.Applied)

	pos2, q2 := cu.Camera.PoseValues()
	assert.NotEqual(t, pos, pos2)
	assert.NotEqual(t, q, q2)

	// nothing pending, nothing moves
	assert.False(t, ar.Update(cu, ct))
	pos3, _ := cu.Camera.PoseValues()
	assert.Equal(t, pos2, pos3)
}

func TestArbiterFollowsBinding(t *testing.T) {
	bus := frame.NewBus()
	cu, err := NewCameraUnit(CameraConfig{Position: math32.Vec3(0, 0, 10)})
	require.NoError(t, err)
	ar := &Arbiter{}
	ct := NewControls(0)

	require.NoError(t, cu.Bind("base_link", bus))
	ct.Zoom(1)
	assert.False(t, ar.Update(cu, ct))
	assert.Equal(t, Bound, ar.State())

	require.NoError(t, bus.Publish("base_link", frame.NewTransform(r3.Vec{Z: -4}, quat.Number{Real: 1})))
	cu.Unbind()
	pos, _ := cu.Camera.PoseValues()
	assertVec(t, math32.Vec3(0, 0, 4), pos)

	ct.Zoom(1)
	assert.True(t, ar.Update(cu, ct))
	assert.Equal(t, Interactive, ar.State())
	pos2, _ := cu.Camera.PoseValues()
	assert.NotEqual(t, pos, pos2)
	assert.Equal(t, "Bound", Bound.String())
}

func TestArbiterNil(t *testing.T) {
	ar := &Arbiter{}
	ct := NewControls(0)
	ct.Orbit(1, 1)
	assert.False(t, ar.Update(nil, ct))
	assert.True(t, ct.Pending())

	cu, err := NewCameraUnit(CameraConfig{})
	require.NoError(t, err)
	assert.False(t, ar.Update(cu, nil))
}

func TestControlsZoom(t *testing.T) {
	cam := &Camera{}
	cam.Defaults()
	ct := NewControls(0.5)
	ct.Zoom(2)
	assert.True(t, ct.Apply(cam))
	// 2 steps at speed 0.5 move 10% of the distance away from the target
	assertVec(t, math32.Vec3(0, 0, 11), cam.Pose.Pos)
	assert.False(t, ct.Apply(cam))

	ct.Zoom(-2)
	ct.Discard()
	assert.False(t, ct.Apply(cam))
	assert.Equal(t, float32(0.5), ct.ZoomSpeed)

	assert.Equal(t, Controls{ZoomSpeed: 0.5, OrbitSpeed: 1, PanSpeed: 0.05}, *NewControls(0))
}
