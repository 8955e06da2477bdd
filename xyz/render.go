// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Loop is the render loop of a [Scene]. Each [Loop.Tick] applies or
// discards pending user input, renders the scene through the active
// camera, and renders the hover highlight.
//
// All scene and camera state is only touched by the goroutine calling
// Tick or Run. Other goroutines, such as a network client delivering
// frame transforms, hand their work to that goroutine with [Loop.Post];
// posted functions run between ticks, so a tick reflects every transform
// delivered before it, which may be zero or several.
type Loop struct {

	// Scene is the scene that is rendered.
	Scene *Scene

	// Renderer draws the scene.
	Renderer Renderer

	// Highlighter reports the hovered node; it may be nil.
	Highlighter Highlighter

	// Arbiter gates user input on the active camera.
	Arbiter Arbiter

	// Frames is the number of ticks completed.
	Frames uint64

	mu     sync.Mutex
	posted []func()
	wake   chan struct{}
}

// NewLoop returns a new Loop rendering the given scene with the given renderer.
func NewLoop(sc *Scene, rd Renderer) *Loop {
	lp := &Loop{Scene: sc, Renderer: rd, wake: make(chan struct{}, 1)}
	rd.SetSize(sc.Size)
	return lp
}

// Post queues fn to run on the loop goroutine before the next tick.
// It is safe to call from any goroutine.
func (lp *Loop) Post(fn func()) {
	lp.mu.Lock()
	lp.posted = append(lp.posted, fn)
	lp.mu.Unlock()
	select {
	case lp.wake <- struct{}{}:
	default:
	}
}

// RunPosted runs all functions queued with Post, in order,
// returning the number run.
func (lp *Loop) RunPosted() int {
	lp.mu.Lock()
	fns := lp.posted
	lp.posted = nil
	lp.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Tick runs one iteration of the loop.
func (lp *Loop) Tick() error {
	sc := lp.Scene
	cu := sc.ActiveCamera()
	if cu == nil {
		return ErrNoCamera
	}
	if lp.Arbiter.Update(cu, sc.Controls) {
		sc.NeedsRender = true
	}
	cam := &cu.Camera
	cam.UpdateMatrix()
	sc.UpdateLight()
	sc.UpdateWorldMatrix()

	lp.Renderer.SetSize(sc.Size)
	lp.Renderer.Clear(sc.Background)
	if err := lp.Renderer.Render(sc, cam); err != nil {
		return fmt.Errorf("xyz.Loop: render: %w", err)
	}
	if lp.Highlighter != nil {
		if n := lp.Highlighter.Hovered(); sc.IsSelectable(n) {
			if err := lp.Renderer.RenderHighlight(sc, cam, n); err != nil {
				return fmt.Errorf("xyz.Loop: highlight: %w", err)
			}
		}
	}
	sc.NeedsRender = false
	lp.Frames++
	return nil
}

// Run runs posted functions as they arrive and ticks at the frame rate
// of the scene options until ctx is done. A render error is logged and
// does not stop the loop.
func (lp *Loop) Run(ctx context.Context) error {
	rate := lp.Scene.Options.FrameRate
	if rate <= 0 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			lp.RunPosted()
			return ctx.Err()
		case <-lp.wake:
			lp.RunPosted()
		case <-ticker.C:
			lp.RunPosted()
			if err := lp.Tick(); err != nil {
				slog.Error("xyz.Loop: tick", "frame", lp.Frames, "err", err)
			}
		}
	}
}
