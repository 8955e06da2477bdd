// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "image/color"

// Material describes the material properties of a surface,
// i.e., phong lighting parameters.
// Main color is used for both ambient and diffuse color, and alpha component
// is used for opacity. The Emissive color is only for glowing objects.
type Material struct {

	// Color is the main color of surface, used for both ambient and diffuse color;
	// the alpha component determines transparency
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting,
	// which is also used for the hover highlight
	Emissive color.RGBA

	// Shiny is the specular shininess factor: 0 is a very broad diffuse reflection,
	// and higher values (typically up to 128) give a smaller, more focal one
	Shiny float32 `default:"30"`

	// Reflective is the specular reflectiveness factor
	Reflective float32 `default:"1"`

	// Bright is an overall multiplier on the final computed color value
	Bright float32 `default:"1"`
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Emissive = color.RGBA{}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
}

// IsTransparent returns true if the color is not fully opaque.
func (mt *Material) IsTransparent() bool {
	return mt.Color.A < 255
}
