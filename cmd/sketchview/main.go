// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sketchview plays sketches in a desktop window.
//
// Keys: Tab cycles sketches, Up/Down select a parameter, Left/Right adjust
// it, Space toggles booleans, H hides the panel, Esc quits. Resizing the
// window resizes the canvas.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/pane"
	"github.com/gogpu/sketchbook/player"
	"github.com/gogpu/sketchbook/sketches"
	"github.com/gogpu/sketchbook/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"
)

type viewer struct {
	names []string
	cur   int
	opts  []sketchbook.Option

	raster *surface.Raster
	player *player.Player
	panel  *pane.Panel

	tex       *ebiten.Image
	pix       *image.RGBA
	showPanel bool
}

func newViewer(name string, size int, opts []sketchbook.Option) (*viewer, error) {
	names := sketches.Names()
	cur := slices.Index(names, name)
	if cur < 0 {
		return nil, fmt.Errorf("%w: %q", sketchbook.ErrUnknownSketch, name)
	}
	v := &viewer{
		names:     names,
		cur:       cur,
		opts:      opts,
		raster:    surface.NewRaster(size, size),
		panel:     pane.New(nil),
		showPanel: true,
	}
	return v, v.load()
}

func (v *viewer) load() error {
	sk, err := sketches.New(v.names[v.cur], v.opts...)
	if err != nil {
		return err
	}
	v.player = player.New(sk, v.raster)
	v.panel.Bind(sk.Params())
	ebiten.SetWindowTitle("sketchbook: " + sk.Name())
	return nil
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.cur = (v.cur + 1) % len(v.names)
		if err := v.load(); err != nil {
			return err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		v.showPanel = !v.showPanel
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.panel.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.panel.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		return v.panel.Nudge(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		return v.panel.Nudge(1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return v.panel.Toggle()
	}

	_, err := v.player.Step(context.Background())
	return err
}

func (v *viewer) Draw(screen *ebiten.Image) {
	src := v.raster.Image()
	b := src.Bounds()
	if v.tex == nil || v.pix.Bounds() != b {
		if v.tex != nil {
			v.tex.Deallocate()
		}
		v.tex = ebiten.NewImage(b.Dx(), b.Dy())
		v.pix = image.NewRGBA(b)
	}
	draw.Copy(v.pix, b.Min, src, b, draw.Src, nil)
	v.tex.WritePixels(v.pix.Pix)
	screen.DrawImage(v.tex, nil)

	if v.showPanel {
		ebitenutil.DebugPrint(screen, strings.Join(v.panel.Lines(), "\n"))
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.raster.Width() || outsideHeight != v.raster.Height() {
		if err := v.player.Resize(outsideWidth, outsideHeight); err != nil {
			slog.Warn("resize failed", "err", err)
		}
	}
	return v.raster.Width(), v.raster.Height()
}

func main() {
	var (
		name    = flag.String("sketch", "radial", "sketch to open")
		size    = flag.Int("size", 800, "initial window size")
		seed    = flag.Uint64("seed", 0, "random seed (0: unseeded)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketchbook.SetLogger(logger)
	slog.SetDefault(logger)

	var opts []sketchbook.Option
	if *seed != 0 {
		opts = append(opts, sketchbook.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	}

	v, err := newViewer(*name, *size, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchview: %v\n", err)
		os.Exit(1)
	}
	defer v.raster.Close()

	ebiten.SetWindowSize(*size, *size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(v); err != nil {
		fmt.Fprintf(os.Stderr, "sketchview: %v\n", err)
		os.Exit(1)
	}
}
