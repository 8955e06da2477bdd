// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sync"

	"cogentcore.org/tfview/math32"
)

// CameraForward is the camera-local direction the camera looks along.
var CameraForward = math32.Vec3(0, 0, -1)

// Camera defines the properties of a perspective camera.
type Camera struct {

	// overall orientation and direction of the camera, relative to pointing at negative Z axis with up (positive Y) direction
	Pose Pose

	// mutex protecting camera data
	CamMu sync.RWMutex `display:"-"`

	// target location for the camera -- where it is pointing at -- defaults to the origin, but moves with panning movements, and is reset by a call to LookAt method
	Target math32.Vector3

	// up direction for camera -- which way is up -- defaults to positive Y axis, and is reset by call to LookAt method
	UpDir math32.Vector3

	// field of view in degrees
	FOV float32 `default:"40"`

	// aspect ratio (width/height)
	Aspect float32 `default:"1.5"`

	// near plane z coordinate
	Near float32 `default:"0.01"`

	// far plane z coordinate
	Far float32 `default:"1000"`

	// view matrix (inverse of the Pose.Matrix)
	ViewMatrix math32.Matrix4 `display:"-"`

	// projection matrix, defining the camera perspective transform
	ProjectionMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets the default projection and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 40
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to default location and orientation, looking
// at the origin from 0,0,10, with up Y axis
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and projection matrices
func (cm *Camera) UpdateMatrix() {
	cm.CamMu.Lock()
	defer cm.CamMu.Unlock()

	cm.Pose.UpdateMatrix()
	cm.Pose.UpdateWorldMatrix(nil)
	cm.ViewMatrix.SetRigidInverse(cm.Pose.Pos, cm.Pose.Quat)
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}

// SetAspect sets the aspect ratio (width/height) and recomputes the
// projection matrix. The pose is not affected.
func (cm *Camera) SetAspect(aspect float32) {
	cm.CamMu.Lock()
	defer cm.CamMu.Unlock()

	cm.Aspect = aspect
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}

// SetPose sets the camera position and orientation directly.
func (cm *Camera) SetPose(pos math32.Vector3, quat math32.Quat) {
	cm.CamMu.Lock()
	cm.Pose.Pos = pos
	cm.Pose.Quat = quat
	cm.CamMu.Unlock()
}

// PoseValues returns the current camera position and orientation.
func (cm *Camera) PoseValues() (math32.Vector3, math32.Quat) {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return cm.Pose.Pos, cm.Pose.Quat
}

// LocalToWorld returns the given camera-local point in world coordinates.
func (cm *Camera) LocalToWorld(p math32.Vector3) math32.Vector3 {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return p.MulQuat(cm.Pose.Quat).Add(cm.Pose.Pos)
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.CamMu.Lock()
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vector3Y
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vector3Y)
}

// LookAtTarget points the camera at current target using current up direction
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return cm.Pose.Pos.Sub(cm.Target)
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	cm.CamMu.Lock()
	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir.SetMulQuat(dyq) // this is only one that affects up
	cm.CamMu.Unlock()

	cm.LookAtTarget()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current window view)
// and it moves the target by the same increment, changing the target position.
func (cm *Camera) Pan(delX, delY float32) {
	cm.CamMu.Lock()
	dx := math32.Vec3(-delX, 0, 0).MulQuat(cm.Pose.Quat)
	dy := math32.Vec3(0, -delY, 0).MulQuat(cm.Pose.Quat)
	td := dx.Add(dy)
	cm.Pose.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// Zoom moves along axis given pct closer or further from the target
// it always moves the target back also if it distance is < 1
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	cm.CamMu.Lock()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos.SetAdd(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target.SetAdd(del)
	}
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}
