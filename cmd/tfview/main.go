// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tfview runs a headless frame-bound camera view: a simulated
// robot publishes the transform of a frame orbiting the origin, the
// active camera follows it, and each rendered frame is logged.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/tfview/config"
	"cogentcore.org/tfview/frame"
	"cogentcore.org/tfview/logx"
	"cogentcore.org/tfview/xyz"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {
	var (
		file     = flag.String("config", "", "TOML or YAML options file")
		name     = flag.String("frame", "base_link", "frame that drives the camera; empty for a static camera")
		rate     = flag.Float64("rate", 30, "transforms published per second")
		duration = flag.Duration("duration", 5*time.Second, "how long to run; 0 runs until interrupted")
		vv       = flag.Bool("vv", false, "debug logging")
		v        = flag.Bool("v", false, "info logging")
		q        = flag.Bool("q", false, "only log errors")
	)
	flag.Parse()
	if *vv || *v || *q {
		logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	}
	logx.SetDefault()
	if err := run(*file, *name, *rate, *duration); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		logx.Log(err)
		os.Exit(1)
	}
}

func run(file, name string, rate float64, duration time.Duration) error {
	bus := frame.NewBus()
	defer bus.Close()

	opts, err := config.Load(file, bus)
	if err != nil {
		return err
	}
	if opts.Frame == "" {
		opts.Frame = name
	}
	sc, err := xyz.NewScene(opts)
	if err != nil {
		return err
	}
	defer sc.Destroy()

	arm := xyz.NewSolid("arm", "box").SetScale(0.2, 0.2, 1).SetColor(color.RGBA{200, 60, 60, 255})
	sc.AddObject(arm, true)
	sc.AddObject(xyz.NewSolid("floor", "plane").SetScale(10, 1, 10).SetEmissive(color.RGBA{20, 20, 24, 255}), false)

	lp := xyz.NewLoop(sc, &logRenderer{})
	lp.Highlighter = hoverAll{arm}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return lp.Run(ctx)
	})
	if opts.Frame != "" && rate > 0 {
		g.Go(func() error {
			return publish(ctx, lp, bus, opts.Frame, rate)
		})
	}
	err = g.Wait()
	slog.Info("tfview: done", "frames", lp.Frames, "published", bus.Stats(opts.Frame).Published)
	return err
}

// publish publishes the transform of a frame circling the origin at
// radius 5, one revolution every 10 seconds, turning to face its path.
// Each publish is posted to the render loop, which owns the cameras.
func publish(ctx context.Context, lp *xyz.Loop, bus *frame.Bus, name string, rate float64) error {
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			ang := 2 * math.Pi * now.Sub(start).Seconds() / 10
			tf := frame.NewTransform(
				r3.Vec{X: 5 * math.Cos(ang), Y: 1.5, Z: 5 * math.Sin(ang)},
				quat.Number{Real: math.Cos(-ang / 2), Jmag: math.Sin(-ang / 2)},
			)
			lp.Post(func() {
				if err := bus.Publish(name, tf); err != nil {
					slog.Warn("tfview: publish", "frame", name, "err", err)
				}
			})
		}
	}
}

// logRenderer is a [xyz.Renderer] that logs each frame at the debug level.
type logRenderer struct {
	size image.Point
}

func (lr *logRenderer) SetSize(size image.Point) {
	lr.size = size
}

func (lr *logRenderer) Clear(bg color.RGBA) {}

func (lr *logRenderer) Render(sc *xyz.Scene, cam *xyz.Camera) error {
	pos, q := cam.PoseValues()
	slog.Debug("tfview: render", "size", fmt.Sprintf("%dx%d", lr.size.X, lr.size.Y), "pos", pos, "quat", q, "light", sc.Sun.Pos)
	return nil
}

func (lr *logRenderer) RenderHighlight(sc *xyz.Scene, cam *xyz.Camera, n xyz.Node) error {
	slog.Debug("tfview: highlight", "node", n.AsNodeBase().Name)
	return nil
}

// hoverAll reports its node as always hovered.
type hoverAll struct {
	node xyz.Node
}

func (ha hoverAll) Hovered() xyz.Node {
	return ha.node
}
