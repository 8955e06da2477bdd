// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/tfview/math32"

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// Pos is the position of center of element (relative to parent)
	Pos math32.Vector3

	// Scale is the scale (relative to parent)
	Scale math32.Vector3

	// Quat is the node rotation specified as a Quat (relative to parent)
	Quat math32.Quat

	// Matrix is the local matrix, containing all position/rotation/scale
	// information (relative to parent)
	Matrix math32.Matrix4 `display:"-"`

	// WorldMatrix contains all absolute position/rotation/scale information
	// (i.e. relative to the very top parent, generally the scene)
	WorldMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Reset sets the position to zero, the rotation to identity and the
// scale to one.
func (ps *Pose) Reset() {
	ps.Pos.SetZero()
	ps.Quat.SetIdentity()
	ps.Scale.Set(1, 1, 1)
}

// UpdateMatrix updates the local transform matrix based on its position, quaternion, and scale.
// Also checks for degenerate nil values
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and
// the parent's world matrix, which is nil for a top-level element.
// Does NOT call UpdateMatrix so that can include other factors as needed.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.WorldMatrix.CopyFrom(&ps.Matrix)
		return
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// LocalToWorld returns the given point in local coordinates transformed
// into world coordinates, using the current WorldMatrix.
func (ps *Pose) LocalToWorld(p math32.Vector3) math32.Vector3 {
	return p.MulMatrix4AsPoint(&ps.WorldMatrix)
}

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// LookAt points the element at given target location using given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}
