// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/tfview/frame"
	"cogentcore.org/tfview/math32"
)

// Origin is the world root placement that a camera records:
// the root is moved to Pos and rotated by Rot when the camera is made active.
type Origin struct {

	// Pos is the position of the world root.
	Pos math32.Vector3

	// Rot is the rotation of the world root, as Euler angles in degrees,
	// applied about X, then Y, then Z.
	Rot math32.Vector3
}

// CameraConfig specifies a new [CameraUnit].
// Zero projection values take the [Camera.Defaults] values.
type CameraConfig struct {

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Position is the static camera position, used when the camera is not
	// frame bound, and until the first transform arrives when it is.
	Position math32.Vector3

	// Rotation is the static camera rotation as Euler angles in degrees.
	// If it is zero, the static camera looks at the origin.
	Rotation math32.Vector3

	// Origin is the world root placement used while this camera is active.
	Origin Origin

	// Frame is the name of the frame that drives the camera pose.
	// If it is empty, the camera keeps its static pose.
	Frame string

	// Port is the subscription port for Frame.
	Port frame.Port
}

// CameraUnit is one projection camera together with its pose source:
// either a [Synchronizer] bound to a frame, or the static pose it was
// configured with.
type CameraUnit struct {

	// Camera is the projection camera.
	Camera Camera

	// Origin is the world root placement recorded for this camera.
	// Switching cameras never modifies it.
	Origin Origin

	// Position is the static camera position.
	Position math32.Vector3

	// Rotation is the static camera rotation in Euler degrees;
	// zero means looking at the origin.
	Rotation math32.Vector3

	// Sync drives the camera pose from a frame; nil for a static camera.
	Sync *Synchronizer

	// views are the saved static views, by name.
	views map[string]Pose

	// onApply is given to Sync when it is made by [CameraUnit.Bind].
	onApply func()
}

// NewCameraUnit returns a new CameraUnit for the given config,
// binding it to cfg.Frame if that is set.
func NewCameraUnit(cfg CameraConfig) (*CameraUnit, error) {
	cu := &CameraUnit{Origin: cfg.Origin, Position: cfg.Position, Rotation: cfg.Rotation}
	cm := &cu.Camera
	cm.Defaults()
	if cfg.FOV > 0 {
		cm.FOV = cfg.FOV
	}
	if cfg.Near > 0 {
		cm.Near = cfg.Near
	}
	if cfg.Far > 0 {
		cm.Far = cfg.Far
	}
	if cfg.Aspect > 0 {
		cm.Aspect = cfg.Aspect
	}
	cu.ResetPose()
	if cfg.Frame == "" {
		return cu, nil
	}
	if err := cu.Bind(cfg.Frame, cfg.Port); err != nil {
		return nil, err
	}
	return cu, nil
}

// ResetPose sets the camera to its static pose.
func (cu *CameraUnit) ResetPose() {
	cm := &cu.Camera
	cm.Pose.Defaults()
	cm.Pose.Pos = cu.Position
	if cu.Rotation == (math32.Vector3{}) {
		cm.LookAtOrigin()
		return
	}
	cm.Pose.SetEulerRotation(cu.Rotation.X, cu.Rotation.Y, cu.Rotation.Z)
	cm.Target = cm.LocalToWorld(CameraForward)
	cm.UpDir = math32.Vector3Y.MulQuat(cm.Pose.Quat)
	cm.UpdateMatrix()
}

// Bind drives the camera pose from the named frame, through the given port.
func (cu *CameraUnit) Bind(name string, port frame.Port) error {
	if port == nil {
		return fmt.Errorf("xyz.CameraUnit: binding frame %q: %w", name, ErrNilPort)
	}
	if cu.Sync == nil {
		cu.Sync = NewSynchronizer(port)
		cu.Sync.OnApply = cu.onApply
	} else if !cu.Sync.IsBound() {
		cu.Sync.Port = port
	}
	return cu.Sync.Bind(name, &cu.Camera)
}

// Unbind stops driving the camera from its frame, returning it to user
// control at its last pose. It is a no-op for an unbound camera.
func (cu *CameraUnit) Unbind() {
	if cu.Sync != nil {
		cu.Sync.Unbind()
	}
}

// IsFrameBound returns true if the camera pose is driven by a frame.
func (cu *CameraUnit) IsFrameBound() bool {
	return cu.Sync != nil && cu.Sync.IsBound()
}

// Resize sets the camera aspect ratio and recomputes its projection.
func (cu *CameraUnit) Resize(aspect float32) {
	cu.Camera.SetAspect(aspect)
}

// SaveView saves the current camera pose with the given name,
// to be restored later with RestoreView.
func (cu *CameraUnit) SaveView(name string) {
	if cu.views == nil {
		cu.views = make(map[string]Pose)
	}
	pos, quat := cu.Camera.PoseValues()
	cu.views[name] = Pose{Pos: pos, Quat: quat}
}

// RestoreView sets the camera pose to the saved view of given name.
// It returns [ErrFrameBound] for a frame-bound camera, whose pose
// belongs to its frame.
func (cu *CameraUnit) RestoreView(name string) error {
	if cu.IsFrameBound() {
		return fmt.Errorf("xyz.CameraUnit: restoring view %q: %w", name, ErrFrameBound)
	}
	vw, ok := cu.views[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoView, name)
	}
	cm := &cu.Camera
	cm.SetPose(vw.Pos, vw.Quat)
	cm.LookAt(cm.LocalToWorld(CameraForward), math32.Vector3Y.MulQuat(vw.Quat))
	return nil
}
