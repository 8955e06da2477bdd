// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const StandardTol = float32(1.0e-6)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol), "X: want %v, got %v", vt, va)
	assert.InDelta(t, vt.Y, va.Y, float64(tol), "Y: want %v, got %v", vt, va)
	assert.InDelta(t, vt.Z, va.Z, float64(tol), "Z: want %v, got %v", vt, va)
}

func TestVector3Text(t *testing.T) {
	v := Vec3(1.5, -2, 3)
	b, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5,-2,3", string(b))

	var u Vector3
	require.NoError(t, u.UnmarshalText(b))
	assert.Equal(t, v, u)
	require.NoError(t, u.UnmarshalText([]byte("0 0 9")))
	assert.Equal(t, Vec3(0, 0, 9), u)
	assert.Error(t, u.UnmarshalText([]byte("1,2")))
	assert.Error(t, u.UnmarshalText([]byte("1,2,z")))
}

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3Z, Vector3X.Cross(Vector3Y))
	assert.Equal(t, float32(0), Vector3X.Dot(Vector3Y))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	TolAssertEqualVector(t, StandardTol, Vec3(0.6, 0.8, 0), Vec3(3, 4, 0).Normal())
	assert.False(t, Vec3(1, NaN(), 0).IsFinite())
	assert.True(t, Vec3(1, 2, 3).IsFinite())
}

func TestQuatRotate(t *testing.T) {
	rz := NewQuatAxisAngle(Vector3Z, DegToRad(90))
	TolAssertEqualVector(t, StandardTol, Vector3Y, Vector3X.MulQuat(rz))
	TolAssertEqualVector(t, StandardTol, Vector3X, Vector3Y.MulQuat(rz.Conjugate()))
	TolAssertEqualVector(t, StandardTol, Vector3X, Vector3X.MulQuat(rz).MulQuat(rz.Inverse()))

	// the axis need not be normalized
	assert.True(t, rz.IsEqualTol(NewQuatAxisAngle(Vec3(0, 0, 5), DegToRad(90)), StandardTol))
	// q and -q are the same rotation
	neg := Quat{-rz.X, -rz.Y, -rz.Z, -rz.W}
	assert.True(t, rz.IsEqualTol(neg, StandardTol))
	assert.False(t, rz.IsEqualTol(IdentityQuat(), 1e-3))
}

func TestQuatEuler(t *testing.T) {
	e := Vec3(DegToRad(30), DegToRad(45), DegToRad(60))
	qx := NewQuatAxisAngle(Vector3X, e.X)
	qy := NewQuatAxisAngle(Vector3Y, e.Y)
	qz := NewQuatAxisAngle(Vector3Z, e.Z)
	want := qx.Mul(qy).Mul(qz)
	assert.True(t, want.IsEqualTol(NewQuatEuler(e), StandardTol))
	assert.True(t, NewQuatEuler(Vector3{}).IsIdentity())
}

func TestQuatNormalize(t *testing.T) {
	q := NewQuat(0, 0, 0, 2)
	q.Normalize()
	assert.Equal(t, IdentityQuat(), q)

	var z Quat
	assert.True(t, z.IsNil())
	z.Normalize()
	assert.True(t, z.IsIdentity())
	assert.False(t, NewQuat(0, Inf(1), 0, 1).IsFinite())
}

func TestQuatFromRotationMatrix(t *testing.T) {
	for _, q := range []Quat{
		IdentityQuat(),
		NewQuatAxisAngle(Vector3Z, DegToRad(-90)),
		NewQuatAxisAngle(Vec3(1, 1, 0), DegToRad(170)),
		NewQuatAxisAngle(Vector3Y, DegToRad(180)),
		NewQuatEuler(Vec3(0.3, -1.2, 2.5)),
	} {
		m := Identity4()
		m.SetTransform(Vector3{}, q, Vec3(1, 1, 1))
		var got Quat
		got.SetFromRotationMatrix(m)
		assert.True(t, q.IsEqualTol(got, StandardTol), "want %v, got %v", q, got)
	}
}

func TestMatrix4(t *testing.T) {
	q := NewQuatAxisAngle(Vector3Z, DegToRad(90))
	pos := Vec3(1, 2, 3)
	m := Identity4()
	m.SetTransform(pos, q, Vec3(2, 2, 2))
	// scale, then rotate, then translate
	TolAssertEqualVector(t, StandardTol, Vec3(1, 4, 3), Vector3X.MulMatrix4AsPoint(m))

	var inv Matrix4
	inv.SetRigidInverse(pos, q)
	m.SetTransform(pos, q, Vec3(1, 1, 1))
	id := inv.Mul(m)
	for i, v := range Identity4() {
		assert.InDelta(t, v, id[i], float64(StandardTol), "element %d", i)
	}
	p := Vec3(-4, 0.5, 7)
	TolAssertEqualVector(t, 1e-5, p, p.MulMatrix4AsPoint(m).MulMatrix4AsPoint(&inv))
}

func TestLookAt(t *testing.T) {
	var q Quat
	q.SetFromRotationMatrix(NewLookAt(Vec3(0, 0, 10), Vector3{}, Vector3Y))
	assert.True(t, q.IsEqualTol(IdentityQuat(), StandardTol))

	// looking down -X from the origin is a 90 degree turn about Y
	q.SetFromRotationMatrix(NewLookAt(Vector3{}, Vec3(-1, 0, 0), Vector3Y))
	assert.True(t, q.IsEqualTol(NewQuatAxisAngle(Vector3Y, DegToRad(90)), StandardTol))

	// up parallel to the view direction still gives a rotation
	q.SetFromRotationMatrix(NewLookAt(Vec3(0, 5, 0), Vector3{}, Vector3Y))
	assert.InDelta(t, 1, q.Length(), 1e-4)
}

func TestPerspective(t *testing.T) {
	var m Matrix4
	m.SetPerspective(90, 2, 1, 100)
	assert.InDelta(t, 0.5, m[0], 1e-6)
	assert.InDelta(t, 1, m[5], 1e-6)
	assert.Equal(t, float32(-1), m[11])
	p := Vec3(0, 0, -1).MulMatrix4AsPoint(&m)
	assert.InDelta(t, -1, p.Z, 1e-5)
	p = Vec3(0, 0, -100).MulMatrix4AsPoint(&m)
	assert.InDelta(t, 1, p.Z, 1e-4)
}
