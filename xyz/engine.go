// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"
)

// Renderer is the rendering engine that draws a [Scene]. The scene only
// composes what is drawn; the GPU pipeline lives behind this interface.
type Renderer interface {

	// SetSize sets the size of the render target in pixels.
	SetSize(size image.Point)

	// Clear clears the render target to the given color.
	Clear(bg color.RGBA)

	// Render draws the world root of the scene as seen by the given camera.
	Render(sc *Scene, cam *Camera) error

	// RenderHighlight draws the highlight outline of the given node.
	RenderHighlight(sc *Scene, cam *Camera, n Node) error
}

// Highlighter reports the node under the pointer, if any.
type Highlighter interface {

	// Hovered returns the hovered node, or nil.
	Hovered() Node
}
