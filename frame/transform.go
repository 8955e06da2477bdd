// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides the rigid [Transform] published for a named
// coordinate frame of an external transform tree, and the [Port] through
// which cameras subscribe to those frames.
package frame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// UnitTolerance is the maximum deviation of the rotation quaternion norm
// from 1 that [Transform.Validate] accepts.
const UnitTolerance = 1e-3

// Transform is an immutable rigid transform: a rotation followed by a
// translation, relating a frame to its parent. The translation is in the
// parent frame's coordinates and the rotation is a unit quaternion.
// A new Transform is made for every update; it is never modified in place.
type Transform struct {
	translation r3.Vec
	rotation    quat.Number
}

// NewTransform returns a new Transform with the given translation and rotation.
func NewTransform(translation r3.Vec, rotation quat.Number) Transform {
	return Transform{translation: translation, rotation: rotation}
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{rotation: quat.Number{Real: 1}}
}

// Translation returns the translation of the transform.
func (tf Transform) Translation() r3.Vec {
	return tf.translation
}

// Rotation returns the rotation quaternion of the transform.
func (tf Transform) Rotation() quat.Number {
	return tf.rotation
}

// Inverse returns the algebraic inverse of the transform:
// the rotation is normalized and conjugated, and the translation is
// rotated by that conjugate and then negated.
func (tf Transform) Inverse() Transform {
	inv := quat.Conj(unit(tf.rotation))
	t := r3.Rotation(inv).Rotate(tf.translation)
	return Transform{translation: r3.Scale(-1, t), rotation: inv}
}

// Mul returns the composition tf * o, which applies o first and then tf.
func (tf Transform) Mul(o Transform) Transform {
	return Transform{
		translation: r3.Add(tf.translation, r3.Rotation(tf.rotation).Rotate(o.translation)),
		rotation:    quat.Mul(tf.rotation, o.rotation),
	}
}

// Apply returns the point p transformed by tf.
func (tf Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(r3.Rotation(tf.rotation).Rotate(p), tf.translation)
}

// Validate returns an [ErrInvalidTransform] error if the translation or
// rotation has a NaN or infinite component, or if the rotation is not a
// unit quaternion within [UnitTolerance].
func (tf Transform) Validate() error {
	t := tf.translation
	for _, c := range [3]float64{t.X, t.Y, t.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: non-finite translation %v", ErrInvalidTransform, t)
		}
	}
	if quat.IsNaN(tf.rotation) || quat.IsInf(tf.rotation) {
		return fmt.Errorf("%w: non-finite rotation %v", ErrInvalidTransform, tf.rotation)
	}
	if n := quat.Abs(tf.rotation); math.Abs(n-1) > UnitTolerance {
		return fmt.Errorf("%w: rotation norm %g is not 1", ErrInvalidTransform, n)
	}
	return nil
}

// unit returns q scaled to norm 1; r3.Rotation scales by the squared norm.
func unit(q quat.Number) quat.Number {
	if n := quat.Abs(q); n != 0 && n != 1 {
		return quat.Scale(1/n, q)
	}
	return q
}

func (tf Transform) String() string {
	t, r := tf.translation, tf.rotation
	return fmt.Sprintf("{t: (%g, %g, %g), r: (%g, %g, %g, %g)}", t.X, t.Y, t.Z, r.Imag, r.Jmag, r.Kmag, r.Real)
}
