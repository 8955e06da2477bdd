// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "image/color"

// Solid represents an individual 3D solid element.
// It has its own pose and material properties, and names the mesh
// defining its shape; meshes belong to the [Renderer].
type Solid struct {
	NodeBase

	// MeshName is the name of the mesh shape used for rendering this solid.
	MeshName string

	// Material contains the material properties of the surface.
	Material Material
}

// NewSolid returns a new Solid with the given name and mesh name,
// with default pose and material.
func NewSolid(name, meshName string) *Solid {
	sld := &Solid{MeshName: meshName}
	sld.Name = name
	sld.Defaults()
	return sld
}

// Defaults sets default initial settings for solid params.
func (sld *Solid) Defaults() {
	sld.Pose.Reset()
	sld.Material.Defaults()
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetEmissive sets the [Material.Emissive].
func (sld *Solid) SetEmissive(v color.RGBA) *Solid {
	sld.Material.Emissive = v
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid.
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] of the solid.
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.Scale.Set(x, y, z)
	return sld
}

// SetEulerRotation sets the [Pose.Quat] rotation of the solid,
// from euler angles in degrees.
func (sld *Solid) SetEulerRotation(x, y, z float32) *Solid {
	sld.Pose.SetEulerRotation(x, y, z)
	return sld
}
