// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/tfview/frame"
	"cogentcore.org/tfview/math32"
)

// Options are the construction options of a [Scene].
// Every option may be left zero, in which case [Options.Defaults]
// sets the value given in its default tag.
type Options struct {

	// Canvas is the name of the render target that the host attaches the
	// rendered frames to; it is passed through to the renderer untouched.
	Canvas string `toml:"canvas" yaml:"canvas" env:"CANVAS"`

	// Width is the initial width of the canvas in pixels.
	Width int `toml:"width" yaml:"width" env:"WIDTH" default:"800"`

	// Height is the initial height of the canvas in pixels.
	Height int `toml:"height" yaml:"height" env:"HEIGHT" default:"600"`

	// Background is the background color, as "#rgb" or "#rrggbb".
	Background string `toml:"background" yaml:"background" env:"BACKGROUND" default:"#111111"`

	// Alpha is the opacity of the background, in 0-1.
	Alpha float32 `toml:"alpha" yaml:"alpha" env:"ALPHA" default:"1"`

	// Antialias enables antialiasing in the renderer.
	Antialias bool `toml:"antialias" yaml:"antialias" env:"ANTIALIAS"`

	// Intensity is the lumens of the directional light.
	Intensity float32 `toml:"intensity" yaml:"intensity" env:"INTENSITY" default:"0.66"`

	// Near is the near clipping plane distance.
	Near float32 `toml:"near" yaml:"near" env:"NEAR" default:"0.01"`

	// Far is the far clipping plane distance.
	Far float32 `toml:"far" yaml:"far" env:"FAR" default:"1000"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `toml:"fov" yaml:"fov" env:"FOV" default:"40"`

	// Interactive enables user orbit, pan and zoom of the camera.
	// It is a pointer so that an absent value takes the default.
	Interactive *bool `toml:"interactive" yaml:"interactive" env:"INTERACTIVE" default:"true"`

	// CameraPosition is the initial camera position, which is also the
	// origin of the world root. The zero vector is treated as unset.
	CameraPosition math32.Vector3 `toml:"camera_position" yaml:"camera_position" env:"CAMERA_POSITION" default:"3,3,3"`

	// CameraRotation is the rotation of the world root, as Euler angles
	// in degrees.
	CameraRotation math32.Vector3 `toml:"camera_rotation" yaml:"camera_rotation" env:"CAMERA_ROTATION"`

	// CameraZoomSpeed scales user zoom input.
	CameraZoomSpeed float32 `toml:"camera_zoom_speed" yaml:"camera_zoom_speed" env:"CAMERA_ZOOM_SPEED" default:"0.5"`

	// FrameRate is the number of render ticks per second of [Loop.Run].
	FrameRate int `toml:"frame_rate" yaml:"frame_rate" env:"FRAME_RATE" default:"60"`

	// Frame is the name of the frame that the initial camera is bound to.
	// If it is empty, the initial camera is static.
	Frame string `toml:"frame" yaml:"frame" env:"FRAME"`

	// Port is the frame subscription client used for Frame
	// and for cameras added without their own port.
	Port frame.Port `toml:"-" yaml:"-" env:"-"`
}

// Defaults sets the default value of every zero option.
func (o *Options) Defaults() {
	if o.Width == 0 {
		o.Width = 800
	}
	if o.Height == 0 {
		o.Height = 600
	}
	if o.Background == "" {
		o.Background = "#111111"
	}
	if o.Alpha == 0 {
		o.Alpha = 1
	}
	if o.Intensity == 0 {
		o.Intensity = 0.66
	}
	if o.Near == 0 {
		o.Near = 0.01
	}
	if o.Far == 0 {
		o.Far = 1000
	}
	if o.FOV == 0 {
		o.FOV = 40
	}
	if o.Interactive == nil {
		on := true
		o.Interactive = &on
	}
	if o.CameraPosition == (math32.Vector3{}) {
		o.CameraPosition.Set(3, 3, 3)
	}
	if o.CameraZoomSpeed == 0 {
		o.CameraZoomSpeed = 0.5
	}
	if o.FrameRate == 0 {
		o.FrameRate = 60
	}
}

// IsInteractive returns whether user camera control is enabled.
func (o *Options) IsInteractive() bool {
	return o.Interactive == nil || *o.Interactive
}

// Validate returns an [ErrInvalidOption] error for the first option
// that cannot be used. It should be called after [Options.Defaults].
func (o *Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidOption, o.Width, o.Height)
	case !(o.Alpha >= 0 && o.Alpha <= 1):
		return fmt.Errorf("%w: alpha %g not in [0, 1]", ErrInvalidOption, o.Alpha)
	case !(o.Near > 0 && o.Far > o.Near):
		return fmt.Errorf("%w: clip planes near %g, far %g", ErrInvalidOption, o.Near, o.Far)
	case !(o.FOV > 0 && o.FOV < 180):
		return fmt.Errorf("%w: fov %g not in (0, 180)", ErrInvalidOption, o.FOV)
	case o.FrameRate < 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalidOption, o.FrameRate)
	case o.Frame != "" && o.Port == nil:
		return fmt.Errorf("%w: frame %q has no subscription port", ErrInvalidOption, o.Frame)
	}
	if _, err := ParseColor(o.Background, o.Alpha); err != nil {
		return err
	}
	return nil
}

// CameraConfig returns the config of the initial camera.
func (o *Options) CameraConfig() CameraConfig {
	return CameraConfig{
		FOV:      o.FOV,
		Near:     o.Near,
		Far:      o.Far,
		Aspect:   float32(o.Width) / float32(o.Height),
		Position: o.CameraPosition,
		Origin:   Origin{Pos: o.CameraPosition, Rot: o.CameraRotation},
		Frame:    o.Frame,
		Port:     o.Port,
	}
}

// ParseColor parses a "#rgb" or "#rrggbb" hex color, with the given
// alpha in 0-1, into a premultiplied [color.RGBA].
func ParseColor(s string, alpha float32) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return color.RGBA{}, fmt.Errorf("%w: color %q is not #rgb or #rrggbb", ErrInvalidOption, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %w", ErrInvalidOption, s, err)
	}
	if !(alpha >= 0 && alpha <= 1) {
		return color.RGBA{}, fmt.Errorf("%w: alpha %g not in [0, 1]", ErrInvalidOption, alpha)
	}
	a := float32(alpha)
	pm := func(c uint64) uint8 {
		return uint8(float32(c)*a + 0.5)
	}
	return color.RGBA{R: pm(v >> 16 & 0xff), G: pm(v >> 8 & 0xff), B: pm(v & 0xff), A: uint8(a*255 + 0.5)}, nil
}
