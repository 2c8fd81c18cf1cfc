// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gioui.org/pageview/pageview"
	"gioui.org/pageview/viewport"
)

var (
	verbose = flag.Bool("v", false, "log debug messages of the viewport and gesture handling")
	dpr     = flag.Float64("dpr", 1, "device pixels per viewport pixel")
	align   = flag.Bool("align", false, "align committed positions to device pixels")
)

const mainUsage = `The pageview-replay command replays a recorded touch and rendering trace
against a headless page view.

Usage:

	pageview-replay [flags] trace.jsonl

Every line of the trace is a JSON object with a time t in milliseconds and a
type, one of viewport, attributes, contents, commit, ready, frame, scroll,
touch, zoomable or focus. The records are replayed in order, with timers and
animations running in between. Every call to the backend and every change of
the visible rectangle is logged to standard error.

The -v flag logs the decisions of the viewport controller as well.

The -dpr flag sets the device pixel ratio and -align aligns the contents
position to device pixels.
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "pageview-replay: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	path := flag.Arg(0)
	if path == "" {
		return errors.New("specify a trace file")
	}
	if *dpr <= 0 {
		return fmt.Errorf("invalid -dpr %g", *dpr)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pageview.SetLogger(log)
	defer pageview.SetLogger(nil)

	opts := []viewport.Option{viewport.WithDeviceScaleFactor(float32(*dpr))}
	if *align {
		opts = append(opts, viewport.WithAligner(viewport.DevicePixels{}))
	}
	return replay(f, log, pageview.WithControllerOptions(opts...))
}

func replay(r io.Reader, log *slog.Logger, options ...pageview.Option) error {
	p := newPlayer(log, options...)
	if err := p.play(r); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	log.Info("replay done", "scale", p.client.Scale(), "visible", p.client.VisibleContentRect())
	return nil
}
