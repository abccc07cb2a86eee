// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sketch renders a sketch headlessly to PNG frames, an animated
// PNG or SVG frames.
//
//	sketch -sketch radial -frames 150 -format apng -out radial.png
//	sketch -sketch grid -set rows=4 -set cols=6 -seed 7 -out frames
//	sketch -sketch lit -compile
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/export"
	"github.com/gogpu/sketchbook/player"
	"github.com/gogpu/sketchbook/shader"
	"github.com/gogpu/sketchbook/sketches"
	"github.com/gogpu/sketchbook/surface"
)

// assignments collects repeated -set name=value flags.
type assignments map[string]string

func (a assignments) String() string {
	parts := make([]string, 0, len(a))
	for k, v := range a {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (a assignments) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	a[name] = value
	return nil
}

type config struct {
	sketch  string
	frames  int
	fps     float64
	width   int
	height  int
	format  string
	out     string
	preset  string
	set     assignments
	seed    uint64
	label   bool
	compile bool
	verbose bool
	list    bool
}

func main() {
	cfg := config{set: assignments{}}
	flag.StringVar(&cfg.sketch, "sketch", "grid", "sketch name (see -list)")
	flag.IntVar(&cfg.frames, "frames", 60, "number of frames to render")
	flag.Float64Var(&cfg.fps, "fps", 30, "frame rate of the render clock")
	flag.IntVar(&cfg.width, "width", 0, "canvas width (default: sketch size)")
	flag.IntVar(&cfg.height, "height", 0, "canvas height (default: sketch size)")
	flag.StringVar(&cfg.format, "format", "png", "output format: png, apng or svg")
	flag.StringVar(&cfg.out, "out", "out", "output directory, or file for apng")
	flag.StringVar(&cfg.preset, "preset", "", "JSON parameter preset")
	flag.Var(cfg.set, "set", "parameter assignment name=value (repeatable)")
	flag.Uint64Var(&cfg.seed, "seed", 0, "random seed (0: unseeded)")
	flag.BoolVar(&cfg.label, "label", false, "stamp the sketch name and frame index")
	flag.BoolVar(&cfg.compile, "compile", false, "compile the sketch's WGSL and exit")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.BoolVar(&cfg.list, "list", false, "list sketches and exit")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketchbook.SetLogger(logger)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "sketch: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	if cfg.list {
		for _, name := range sketches.Names() {
			fmt.Println(name)
		}
		return nil
	}
	if cfg.compile {
		return compile(cfg.sketch)
	}

	var opts []sketchbook.Option
	if cfg.seed != 0 {
		opts = append(opts, sketchbook.WithRand(rand.New(rand.NewPCG(cfg.seed, cfg.seed))))
	}
	sk, err := sketches.New(cfg.sketch, opts...)
	if err != nil {
		return err
	}
	if err := configure(sk.Params(), cfg); err != nil {
		return err
	}

	w, h := sk.Size()
	if cfg.width > 0 {
		w = cfg.width
	}
	if cfg.height > 0 {
		h = cfg.height
	}

	var label func(sketchbook.Frame) string
	if cfg.label {
		label = export.FrameLabel(sk.Name())
	}

	switch cfg.format {
	case "png":
		r := surface.NewRaster(w, h)
		defer r.Close()
		seq := export.NewPNGSequence(r, cfg.out, sk.Name())
		seq.Label = label
		if err := play(ctx, sk, r, cfg.fps, cfg.frames, seq.Write); err != nil {
			return err
		}
		slog.Info("frames written", "dir", cfg.out, "count", seq.Written())
	case "apng":
		r := surface.NewRaster(w, h)
		defer r.Close()
		anim := export.NewAPNG(r, cfg.out)
		anim.Label = label
		if cfg.fps != export.APNGFPS {
			slog.Warn("apng plays at a fixed rate, overriding -fps", "fps", export.APNGFPS)
		}
		if err := play(ctx, sk, r, export.APNGFPS, cfg.frames, anim.Write); err != nil {
			return err
		}
		return anim.Close()
	case "svg":
		if label != nil {
			slog.Warn("labels are not drawn on svg frames")
		}
		s := export.NewSVGFrames(cfg.out, sk.Name(), w, h)
		defer s.Close()
		if err := play(ctx, sk, s, cfg.fps, cfg.frames, s.Write); err != nil {
			return err
		}
		slog.Info("frames written", "dir", cfg.out, "count", s.Written())
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}
	return nil
}

func play(ctx context.Context, sk sketchbook.Sketch, s surface.Surface, fps float64, n int, sink func(sketchbook.Frame) error) error {
	p := player.New(sk, s, player.WithClock(sketchbook.NewFPSClock(fps)))
	err := p.Run(ctx, n, sink)
	if errors.Is(err, context.Canceled) {
		slog.Warn("interrupted", "frames", p.Frames())
		return nil
	}
	return err
}

// configure applies the preset file, then the -set assignments.
func configure(ps *sketchbook.Params, cfg config) error {
	if cfg.preset != "" {
		f, err := os.Open(cfg.preset)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := ps.Load(f); err != nil {
			return fmt.Errorf("%s: %w", cfg.preset, err)
		}
	}
	for name, value := range cfg.set {
		if err := ps.SetString(name, value); err != nil {
			return err
		}
	}
	return nil
}

func compile(name string) error {
	p, ok := shader.Lookup(name)
	if !ok {
		return fmt.Errorf("%q has no shader program", name)
	}
	words, err := shader.Compile(p)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d SPIR-V words\n", p.Name, len(words))
	return nil
}
