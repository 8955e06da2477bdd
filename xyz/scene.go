// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/tfview/math32"
)

// Scene is the composition root of a 3D view: it owns the world root
// group, the lights, the cameras and the interactive controls.
//
// The world root holds everything that is rendered. Exactly one camera is
// active at a time; making a camera active resets the world root to the
// identity and then moves it to the [Origin] recorded by that camera, so
// that the root placement never accumulates across switches.
//
// A Scene is not safe for concurrent use; it is driven by a [Loop].
type Scene struct {

	// Options are the options the scene was made with, after defaults.
	Options Options

	// Root is the world root group, parent of all rendered content.
	Root *Group

	// Selectables is the child group of Root holding nodes that can be
	// hovered and highlighted.
	Selectables *Group

	// Cameras are all of the cameras of the scene.
	Cameras []*CameraUnit

	// Controls accumulates user camera input; nil when not interactive.
	Controls *Controls

	// Ambient is the uniform ambient light.
	Ambient AmbientLight

	// Sun is the directional light, which follows the active camera.
	Sun DirLight

	// Background is the background color, premultiplied by the alpha option.
	Background color.RGBA

	// Size is the size of the canvas in pixels.
	Size image.Point

	// NeedsRender is set whenever something changed that requires a new frame.
	NeedsRender bool

	active int
}

// NewScene returns a new Scene for the given options, with one camera
// made from them. If opts.Frame is set, that camera is bound to it.
func NewScene(opts Options) (*Scene, error) {
	opts.Defaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	bg, err := ParseColor(opts.Background, opts.Alpha)
	if err != nil {
		return nil, err
	}
	sc := &Scene{Options: opts, Background: bg, Size: image.Pt(opts.Width, opts.Height)}
	sc.Root = NewGroup("world")
	sc.Selectables = NewGroup("selectable")
	sc.Root.Add(sc.Selectables)

	sc.Ambient.Name = "ambient"
	sc.Ambient.On = true
	sc.Ambient.Lumens = 1
	sc.Ambient.Color = color.RGBA{0x55, 0x55, 0x55, 0xff}
	sc.Sun.Name = "sun"
	sc.Sun.On = true
	sc.Sun.Lumens = opts.Intensity
	sc.Sun.Color = color.RGBA{0xff, 0xff, 0xff, 0xff}

	if opts.IsInteractive() {
		sc.Controls = NewControls(opts.CameraZoomSpeed)
	}

	cu, err := NewCameraUnit(opts.CameraConfig())
	if err != nil {
		return nil, fmt.Errorf("xyz.NewScene: %w", err)
	}
	sc.AddCameraUnit(cu)
	return sc, nil
}

// AddCamera adds a new camera made from the given config, returning its
// index. A zero aspect is taken from the canvas size, and a nil port with
// a frame set takes the port of the scene options.
func (sc *Scene) AddCamera(cfg CameraConfig) (int, error) {
	if cfg.Aspect <= 0 {
		cfg.Aspect = sc.aspect()
	}
	if cfg.Frame != "" && cfg.Port == nil {
		cfg.Port = sc.Options.Port
	}
	cu, err := NewCameraUnit(cfg)
	if err != nil {
		return -1, fmt.Errorf("xyz.Scene.AddCamera: %w", err)
	}
	return sc.AddCameraUnit(cu), nil
}

// AddCameraUnit adds the given camera, returning its index.
// The first camera of a scene becomes active, and the world root
// moves to its origin.
func (sc *Scene) AddCameraUnit(cu *CameraUnit) int {
	cu.onApply = sc.SetNeedsRender
	if cu.Sync != nil {
		cu.Sync.OnApply = cu.onApply
	}
	sc.Cameras = append(sc.Cameras, cu)
	i := len(sc.Cameras) - 1
	if i == sc.active {
		sc.applyOrigin()
	}
	sc.NeedsRender = true
	return i
}

// RemoveCamera unbinds and removes the camera at the given index.
// The active camera cannot be removed.
func (sc *Scene) RemoveCamera(i int) error {
	if err := sc.checkIndex(i); err != nil {
		return err
	}
	if i == sc.active {
		return fmt.Errorf("%w: %d", ErrActiveCamera, i)
	}
	sc.Cameras[i].Unbind()
	sc.Cameras = slices.Delete(sc.Cameras, i, i+1)
	if i < sc.active {
		sc.active--
	}
	return nil
}

// SetActiveCamera makes the camera at the given index the active one and
// moves the world root to its origin. On an out-of-range index, the
// active camera is left unchanged.
func (sc *Scene) SetActiveCamera(i int) error {
	if err := sc.checkIndex(i); err != nil {
		return err
	}
	sc.active = i
	sc.applyOrigin()
	if sc.Controls != nil {
		sc.Controls.Discard()
	}
	slog.Debug("xyz.Scene: active camera", "index", i, "frame", sc.Cameras[i].frameName())
	return nil
}

// ActiveCamera returns the active camera, or nil if there is none.
func (sc *Scene) ActiveCamera() *CameraUnit {
	if sc.active < 0 || sc.active >= len(sc.Cameras) {
		return nil
	}
	return sc.Cameras[sc.active]
}

// ActiveIndex returns the index of the active camera.
func (sc *Scene) ActiveIndex() int {
	return sc.active
}

// AddObject adds the given node to the world root, or to [Scene.Selectables]
// if selectable is true.
func (sc *Scene) AddObject(n Node, selectable bool) {
	if selectable {
		sc.Selectables.Add(n)
	} else {
		sc.Root.Add(n)
	}
	sc.NeedsRender = true
}

// RemoveObject removes the given node from the world root or the
// selectable group, returning false if it is in neither.
func (sc *Scene) RemoveObject(n Node) bool {
	if sc.Selectables.Remove(n) || sc.Root.Remove(n) {
		sc.NeedsRender = true
		return true
	}
	return false
}

// Selectable returns the nodes that can be hovered and highlighted.
func (sc *Scene) Selectable() []Node {
	return slices.Clone(sc.Selectables.Children)
}

// IsSelectable returns true if the given node is selectable.
func (sc *Scene) IsSelectable(n Node) bool {
	return n != nil && sc.Selectables.Contains(n)
}

// Reorigin records a new origin for the active camera and moves the
// world root to it.
func (sc *Scene) Reorigin(pos, rot math32.Vector3) {
	cu := sc.ActiveCamera()
	if cu == nil {
		return
	}
	cu.Origin = Origin{Pos: pos, Rot: rot}
	sc.applyOrigin()
	slog.Debug("xyz.Scene: reorigin", "pos", pos, "rot", rot)
}

// Resize sets the canvas size and the aspect ratio of every camera to
// width/height. It does nothing if either dimension is not positive.
func (sc *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	sc.Size = image.Pt(width, height)
	aspect := sc.aspect()
	for _, cu := range sc.Cameras {
		cu.Resize(aspect)
	}
	sc.NeedsRender = true
}

// Destroy unbinds and removes every camera. Rendering the scene
// afterwards fails with [ErrNoCamera].
func (sc *Scene) Destroy() {
	for _, cu := range sc.Cameras {
		cu.Unbind()
	}
	sc.Cameras = nil
	sc.active = 0
	sc.Root.Pose.Reset()
	if sc.Controls != nil {
		sc.Controls.Discard()
	}
}

// SetNeedsRender marks the scene as needing a new frame.
func (sc *Scene) SetNeedsRender() {
	sc.NeedsRender = true
}

// UpdateWorldMatrix updates the world matrices of all nodes under the root.
func (sc *Scene) UpdateWorldMatrix() {
	UpdateWorldMatrix(sc.Root, nil)
}

// UpdateLight places the directional light relative to the active camera.
func (sc *Scene) UpdateLight() {
	if cu := sc.ActiveCamera(); cu != nil {
		sc.Sun.FollowCamera(&cu.Camera)
	}
}

// applyOrigin resets the world root to the identity and then moves it
// to the origin of the active camera.
func (sc *Scene) applyOrigin() {
	sc.Root.Pose.Reset()
	if cu := sc.ActiveCamera(); cu != nil {
		o := cu.Origin
		sc.Root.SetPos(o.Pos.X, o.Pos.Y, o.Pos.Z)
		sc.Root.SetEulerRotation(o.Rot.X, o.Rot.Y, o.Rot.Z)
	}
	sc.NeedsRender = true
}

func (sc *Scene) checkIndex(i int) error {
	if i < 0 || i >= len(sc.Cameras) {
		return fmt.Errorf("%w: camera %d not in [0, %d)", ErrIndexOutOfRange, i, len(sc.Cameras))
	}
	return nil
}

func (sc *Scene) aspect() float32 {
	return float32(sc.Size.X) / float32(sc.Size.Y)
}

func (cu *CameraUnit) frameName() string {
	if cu.Sync == nil {
		return ""
	}
	return cu.Sync.Frame()
}
