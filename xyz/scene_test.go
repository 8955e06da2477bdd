// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/tfview/frame"
	"cogentcore.org/tfview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func newTestScene(t *testing.T, opts Options) *Scene {
	t.Helper()
	sc, err := NewScene(opts)
	require.NoError(t, err)
	t.Cleanup(sc.Destroy)
	return sc
}

func TestNewSceneDefaults(t *testing.T) {
	sc := newTestScene(t, Options{})
	require.Len(t, sc.Cameras, 1)
	assert.Equal(t, 0, sc.ActiveIndex())
	assert.Equal(t, image.Pt(800, 600), sc.Size)
	assert.Equal(t, color.RGBA{0x11, 0x11, 0x11, 0xff}, sc.Background)
	assert.NotNil(t, sc.Controls)
	assert.InDelta(t, 0.66, sc.Sun.Lumens, 1e-6)

	cu := sc.ActiveCamera()
	assert.False(t, cu.IsFrameBound())
	assert.Equal(t, float32(40), cu.Camera.FOV)
	assert.Equal(t, float32(800)/float32(600), cu.Camera.Aspect)
	assert.Equal(t, math32.Vec3(3, 3, 3), cu.Camera.Pose.Pos)
	assertVec(t, math32.Vector3{}, cu.Camera.Target)

	// the initial camera position is also the origin of the world root
	assert.Equal(t, math32.Vec3(3, 3, 3), sc.Root.Pose.Pos)
	assert.True(t, sc.Root.Pose.Quat.IsIdentity())
	assert.True(t, sc.Root.Contains(sc.Selectables))
}

func TestNewSceneNotInteractive(t *testing.T) {
	off := false
	sc := newTestScene(t, Options{Interactive: &off})
	assert.Nil(t, sc.Controls)
}

func TestNewSceneInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative width", Options{Width: -1}},
		{"far before near", Options{Near: 10, Far: 1}},
		{"bad color", Options{Background: "red"}},
		{"alpha", Options{Alpha: 2}},
		{"nan alpha", Options{Alpha: math32.NaN()}},
		{"nan fov", Options{FOV: math32.NaN()}},
		{"nan near", Options{Near: math32.NaN()}},
		{"frame without port", Options{Frame: "base_link"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScene(tt.opts)
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestNewSceneBound(t *testing.T) {
	bus := frame.NewBus()
	sc := newTestScene(t, Options{Frame: "base_link", Port: bus})
	cu := sc.ActiveCamera()
	require.True(t, cu.IsFrameBound())
	assert.Equal(t, math32.Vec3(3, 3, 3), cu.Camera.Pose.Pos)

	sc.NeedsRender = false
	require.NoError(t, bus.Publish("base_link", frame.NewTransform(r3.Vec{X: 1}, quat.Number{Real: 1})))
	assertVec(t, math32.Vec3(-1, 0, 0), cu.Camera.Pose.Pos)
	assert.True(t, sc.NeedsRender)

	sc.Destroy()
	assert.Equal(t, frame.Stats{Published: 1}, bus.Stats("base_link"))
	assert.Nil(t, sc.ActiveCamera())
}

func TestAddCameraAfterDestroy(t *testing.T) {
	sc := newTestScene(t, Options{CameraPosition: math32.Vec3(5, 0, 0)})
	assert.Equal(t, math32.Vec3(5, 0, 0), sc.Root.Pose.Pos)
	sc.Destroy()
	assert.Equal(t, math32.Vector3{}, sc.Root.Pose.Pos)

	i, err := sc.AddCamera(CameraConfig{Origin: Origin{Pos: math32.Vec3(0, 2, 0), Rot: math32.Vec3(0, 0, 90)}})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Same(t, sc.Cameras[0], sc.ActiveCamera())
	assert.Equal(t, math32.Vec3(0, 2, 0), sc.Root.Pose.Pos)
	assertQuat(t, math32.NewQuatAxisAngle(math32.Vector3Z, math32.DegToRad(90)), sc.Root.Pose.Quat)
}

func TestSetActiveCamera(t *testing.T) {
	sc := newTestScene(t, Options{})
	i, err := sc.AddCamera(CameraConfig{
		Position: math32.Vec3(0, 0, 5),
		Origin:   Origin{Pos: math32.Vec3(1, 2, 3), Rot: math32.Vec3(0, 90, 0)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 0, sc.ActiveIndex())

	require.NoError(t, sc.SetActiveCamera(1))
	assert.Equal(t, 1, sc.ActiveIndex())
	assert.Same(t, sc.Cameras[1], sc.ActiveCamera())
	assert.Equal(t, math32.Vec3(1, 2, 3), sc.Root.Pose.Pos)
	assertQuat(t, math32.NewQuatAxisAngle(math32.Vector3Y, math32.DegToRad(90)), sc.Root.Pose.Quat)

	// switching back resets the root rather than accumulating
	require.NoError(t, sc.SetActiveCamera(0))
	assert.Equal(t, math32.Vec3(3, 3, 3), sc.Root.Pose.Pos)
	assert.True(t, sc.Root.Pose.Quat.IsIdentity())
	require.NoError(t, sc.SetActiveCamera(0))
	assert.Equal(t, math32.Vec3(3, 3, 3), sc.Root.Pose.Pos)
}

func TestSetActiveCameraOutOfRange(t *testing.T) {
	sc := newTestScene(t, Options{})
	_, err := sc.AddCamera(CameraConfig{})
	require.NoError(t, err)
	require.NoError(t, sc.SetActiveCamera(1))

	for _, i := range []int{-1, 2, 100} {
		err := sc.SetActiveCamera(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, 1, sc.ActiveIndex())
	}
}

func TestAddCameraInheritsAspectAndPort(t *testing.T) {
	bus := frame.NewBus()
	sc := newTestScene(t, Options{Width: 400, Height: 200, Port: bus})
	i, err := sc.AddCamera(CameraConfig{Frame: "camera_link", FOV: 60})
	require.NoError(t, err)
	cu := sc.Cameras[i]
	assert.Equal(t, float32(2), cu.Camera.Aspect)
	assert.Equal(t, float32(60), cu.Camera.FOV)
	assert.True(t, cu.IsFrameBound())
	assert.Equal(t, 1, bus.Stats("camera_link").Subscribers)
}

func TestBindAfterAddMarksRender(t *testing.T) {
	bus := frame.NewBus()
	sc := newTestScene(t, Options{})
	require.NoError(t, sc.ActiveCamera().Bind("base_link", bus))
	sc.NeedsRender = false
	require.NoError(t, bus.Publish("base_link", frame.NewTransform(r3.Vec{X: 1}, quat.Number{Real: 1})))
	assert.True(t, sc.NeedsRender)
}

func TestRemoveCamera(t *testing.T) {
	bus := frame.NewBus()
	sc := newTestScene(t, Options{Port: bus})
	_, err := sc.AddCamera(CameraConfig{Frame: "a"})
	require.NoError(t, err)
	_, err = sc.AddCamera(CameraConfig{})
	require.NoError(t, err)
	require.NoError(t, sc.SetActiveCamera(2))
	last := sc.ActiveCamera()

	assert.ErrorIs(t, sc.RemoveCamera(2), ErrActiveCamera)
	assert.ErrorIs(t, sc.RemoveCamera(3), ErrIndexOutOfRange)

	require.NoError(t, sc.RemoveCamera(1))
	assert.Equal(t, 0, bus.Stats("a").Subscribers)
	assert.Len(t, sc.Cameras, 2)
	assert.Equal(t, 1, sc.ActiveIndex())
	assert.Same(t, last, sc.ActiveCamera())
}

func TestResize(t *testing.T) {
	sc := newTestScene(t, Options{})
	_, err := sc.AddCamera(CameraConfig{Position: math32.Vec3(1, 2, 3)})
	require.NoError(t, err)
	cu := sc.ActiveCamera()
	pos, q := cu.Camera.PoseValues()

	sc.Resize(1000, 500)
	assert.Equal(t, image.Pt(1000, 500), sc.Size)
	for _, c := range sc.Cameras {
		assert.Equal(t, float32(1000)/float32(500), c.Camera.Aspect)
	}
	pos2, q2 := cu.Camera.PoseValues()
	assert.Equal(t, pos, pos2)
	assert.Equal(t, q, q2)

	sc.Resize(0, 300)
	sc.Resize(300, -1)
	assert.Equal(t, float32(2), cu.Camera.Aspect)
	assert.Equal(t, image.Pt(1000, 500), sc.Size)
}

func TestReorigin(t *testing.T) {
	sc := newTestScene(t, Options{})
	sc.Reorigin(math32.Vec3(-1, 0, 2), math32.Vec3(90, 0, 0))
	assert.Equal(t, math32.Vec3(-1, 0, 2), sc.Root.Pose.Pos)
	assertQuat(t, math32.NewQuatAxisAngle(math32.Vector3X, math32.DegToRad(90)), sc.Root.Pose.Quat)
	assert.Equal(t, Origin{Pos: math32.Vec3(-1, 0, 2), Rot: math32.Vec3(90, 0, 0)}, sc.ActiveCamera().Origin)
}

func TestAddObject(t *testing.T) {
	sc := newTestScene(t, Options{})
	box := NewGroup("box")
	arm := NewGroup("arm")
	sc.AddObject(box, false)
	sc.AddObject(arm, true)

	assert.True(t, sc.Root.Contains(box))
	assert.False(t, sc.IsSelectable(box))
	assert.True(t, sc.IsSelectable(arm))
	assert.Equal(t, []Node{arm}, sc.Selectable())
	assert.False(t, sc.IsSelectable(nil))

	arm.SetPos(1, 0, 0)
	sc.UpdateWorldMatrix()
	assertVec(t, math32.Vec3(4, 3, 3), arm.Pose.LocalToWorld(math32.Vector3{}))

	assert.True(t, sc.RemoveObject(arm))
	assert.False(t, sc.RemoveObject(arm))
	assert.Empty(t, sc.Selectable())
}

func TestSolidWorldMatrix(t *testing.T) {
	sc := newTestScene(t, Options{})
	sc.Reorigin(math32.Vector3{}, math32.Vector3{})
	gp := NewGroup("link").SetPos(0, 1, 0).SetEulerRotation(0, 0, 90)
	sld := NewSolid("marker", "box").SetPos(1, 0, 0).SetScale(2, 2, 2)
	gp.Add(sld)
	sc.AddObject(gp, true)
	assert.False(t, sld.Material.IsTransparent())
	sld.SetEmissive(color.RGBA{10, 10, 10, 255})
	assert.Equal(t, color.RGBA{10, 10, 10, 255}, sld.Material.Emissive)

	sc.UpdateWorldMatrix()
	assertVec(t, math32.Vec3(0, 2, 0), sld.Pose.LocalToWorld(math32.Vector3{}))
	assertVec(t, math32.Vec3(-2, 2, 0), sld.Pose.LocalToWorld(math32.Vec3(0, 1, 0)))
}

func TestSaveRestoreView(t *testing.T) {
	cu, err := NewCameraUnit(CameraConfig{Position: math32.Vec3(0, 0, 10)})
	require.NoError(t, err)
	cu.SaveView("home")
	pos, q := cu.Camera.PoseValues()

	cu.Camera.Orbit(30, 10)
	pos2, _ := cu.Camera.PoseValues()
	assert.NotEqual(t, pos, pos2)

	require.NoError(t, cu.RestoreView("home"))
	pos3, q3 := cu.Camera.PoseValues()
	assertVec(t, pos, pos3)
	assertQuat(t, q, q3)
	assert.ErrorIs(t, cu.RestoreView("away"), ErrNoView)

	require.NoError(t, cu.Bind("base_link", frame.NewBus()))
	assert.ErrorIs(t, cu.RestoreView("home"), ErrFrameBound)
	cu.Unbind()
	assert.NoError(t, cu.RestoreView("home"))
}

func TestCameraUnitStaticRotation(t *testing.T) {
	cu, err := NewCameraUnit(CameraConfig{Position: math32.Vec3(0, 0, 4), Rotation: math32.Vec3(0, 90, 0)})
	require.NoError(t, err)
	assertQuat(t, math32.NewQuatAxisAngle(math32.Vector3Y, math32.DegToRad(90)), cu.Camera.Pose.Quat)
	assertVec(t, math32.Vec3(-1, 0, 4), cu.Camera.Target)
	assert.ErrorIs(t, cu.Bind("a", nil), ErrNilPort)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in    string
		alpha float32
		want  color.RGBA
		err   bool
	}{
		{"#ffffff", 1, color.RGBA{255, 255, 255, 255}, false},
		{"#f00", 1, color.RGBA{255, 0, 0, 255}, false},
		{"#ffffff", 0.5, color.RGBA{128, 128, 128, 128}, false},
		{"#12345", 1, color.RGBA{}, true},
		{"ffffff", 1, color.RGBA{}, true},
		{"#gggggg", 1, color.RGBA{}, true},
		{"#fff", math32.NaN(), color.RGBA{}, true},
		{"#000", -0.5, color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in, tt.alpha)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
