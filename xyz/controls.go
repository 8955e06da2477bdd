// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Controls accumulates user camera navigation input (orbit, pan and zoom)
// between render ticks. The [Arbiter] decides each tick whether the
// pending input is applied to the active camera or discarded.
type Controls struct {

	// ZoomSpeed scales zoom steps; a step of 1 at speed 1 moves 10% of
	// the distance to the target.
	ZoomSpeed float32 `default:"0.5"`

	// OrbitSpeed is the number of degrees of orbit per unit of input.
	OrbitSpeed float32 `default:"1"`

	// PanSpeed is the distance panned per unit of input.
	PanSpeed float32 `default:"0.05"`

	orbitX, orbitY float32
	panX, panY     float32
	zoom           float32
}

// NewControls returns new Controls with the given zoom speed;
// a zero speed takes the default.
func NewControls(zoomSpeed float32) *Controls {
	ct := &Controls{}
	ct.Defaults()
	if zoomSpeed > 0 {
		ct.ZoomSpeed = zoomSpeed
	}
	return ct
}

// Defaults sets the default navigation speeds.
func (ct *Controls) Defaults() {
	ct.ZoomSpeed = 0.5
	ct.OrbitSpeed = 1
	ct.PanSpeed = 0.05
}

// Orbit adds orbit input, typically a mouse drag delta.
func (ct *Controls) Orbit(dx, dy float32) {
	ct.orbitX += dx
	ct.orbitY += dy
}

// Pan adds pan input, typically a shift-drag delta.
func (ct *Controls) Pan(dx, dy float32) {
	ct.panX += dx
	ct.panY += dy
}

// Zoom adds zoom steps, typically scroll wheel clicks;
// positive zooms out.
func (ct *Controls) Zoom(steps float32) {
	ct.zoom += steps
}

// Pending returns true if there is input that has not been applied or discarded.
func (ct *Controls) Pending() bool {
	return ct.orbitX != 0 || ct.orbitY != 0 || ct.panX != 0 || ct.panY != 0 || ct.zoom != 0
}

// Apply moves the given camera by the pending input and clears it.
// It returns false if there was nothing to apply.
func (ct *Controls) Apply(cam *Camera) bool {
	if !ct.Pending() {
		return false
	}
	if ct.orbitX != 0 || ct.orbitY != 0 {
		cam.Orbit(ct.orbitX*ct.OrbitSpeed, ct.orbitY*ct.OrbitSpeed)
	}
	if ct.panX != 0 || ct.panY != 0 {
		cam.Pan(ct.panX*ct.PanSpeed, ct.panY*ct.PanSpeed)
	}
	if ct.zoom != 0 {
		cam.Zoom(ct.zoom * ct.ZoomSpeed / 10)
	}
	ct.Discard()
	return true
}

// Discard drops any pending input.
func (ct *Controls) Discard() {
	*ct = Controls{ZoomSpeed: ct.ZoomSpeed, OrbitSpeed: ct.OrbitSpeed, PanSpeed: ct.PanSpeed}
}
