// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sketchterm plays sketches in a terminal with 24-bit colour,
// two pixels per cell.
//
// Keys: Tab cycles sketches, Up/Down select a parameter, Left/Right adjust
// it, Space toggles booleans, h hides the panel, q or Esc quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/pane"
	"github.com/gogpu/sketchbook/player"
	"github.com/gogpu/sketchbook/sketches"
	"github.com/gogpu/sketchbook/surface"
)

// oversample is the canvas size per terminal pixel.
const oversample = 4

type term struct {
	screen tcell.Screen
	names  []string
	cur    int
	opts   []sketchbook.Option

	raster    *surface.Raster
	player    *player.Player
	panel     *pane.Panel
	showPanel bool
}

func newTerm(name string, opts []sketchbook.Option) (*term, error) {
	names := sketches.Names()
	cur := slices.Index(names, name)
	if cur < 0 {
		return nil, fmt.Errorf("%w: %q", sketchbook.ErrUnknownSketch, name)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cols, rows := screen.Size()
	t := &term{
		screen:    screen,
		names:     names,
		cur:       cur,
		opts:      opts,
		raster:    surface.NewRaster(max(cols, 1)*oversample, max(rows, 1)*2*oversample),
		panel:     pane.New(nil),
		showPanel: true,
	}
	if err := t.load(); err != nil {
		t.close()
		return nil, err
	}
	return t, nil
}

func (t *term) load() error {
	sk, err := sketches.New(t.names[t.cur], t.opts...)
	if err != nil {
		return err
	}
	t.player = player.New(sk, t.raster)
	t.panel.Bind(sk.Params())
	return nil
}

func (t *term) close() {
	t.screen.Fini()
	_ = t.raster.Close()
}

// handle applies one event and reports whether to keep running.
func (t *term) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := t.screen.Size()
		t.screen.Sync()
		return true, t.player.Resize(max(cols, 1)*oversample, max(rows, 1)*2*oversample)
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false, nil
		case tcell.KeyTab:
			t.cur = (t.cur + 1) % len(t.names)
			return true, t.load()
		case tcell.KeyUp:
			t.panel.Prev()
		case tcell.KeyDown:
			t.panel.Next()
		case tcell.KeyLeft:
			return true, t.panel.Nudge(-1)
		case tcell.KeyRight:
			return true, t.panel.Nudge(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false, nil
			case 'h':
				t.showPanel = !t.showPanel
			case ' ':
				return true, t.panel.Toggle()
			}
		}
	}
	return true, nil
}

func (t *term) draw() error {
	if _, err := t.player.Step(context.Background()); err != nil {
		return err
	}

	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	for i, c := range cells(downscale(t.raster.Image(), cols, rows)) {
		t.screen.SetContent(i%cols, i/cols, upperHalf, nil, c.style())
	}

	if t.showPanel {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		lines := append([]string{t.player.Sketch().Name()}, t.panel.Lines()...)
		for y, line := range lines {
			if y >= rows {
				break
			}
			drawText(t.screen, y, cols, line, style)
		}
	}
	t.screen.Show()
	return nil
}

// pumpEvents forwards polled events until poll returns nil or done is
// closed.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *term) run(fps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(t.screen.PollEvent, events, done)

	for {
		select {
		case ev := <-events:
			ok, err := t.handle(ev)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		case <-ticker.C:
			if err := t.draw(); err != nil {
				return err
			}
		}
	}
}

func main() {
	var (
		name    = flag.String("sketch", "radial", "sketch to open")
		fps     = flag.Int("fps", 30, "frames per second")
		seed    = flag.Uint64("seed", 0, "random seed (0: unseeded)")
		logFile = flag.String("log", "", "write logs to this file")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sketchterm: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		level := slog.LevelInfo
		if *verbose {
			level = slog.LevelDebug
		}
		sketchbook.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}

	var opts []sketchbook.Option
	if *seed != 0 {
		opts = append(opts, sketchbook.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	}

	t, err := newTerm(*name, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchterm: %v\n", err)
		os.Exit(1)
	}
	err = t.run(max(*fps, 1))
	t.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchterm: %v\n", err)
		os.Exit(1)
	}
}
