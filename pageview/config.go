// SPDX-License-Identifier: Unlicense OR MIT

package pageview

import (
	"log/slog"
	"time"

	"gioui.org/pageview/internal/logger"
	"gioui.org/pageview/unit"
	"gioui.org/pageview/viewport"
)

// Option configures a ControllerClient.
type Option func(cnf *config)

type config struct {
	metric unit.Metric
	// scaleAnimation is the duration of animated transitions.
	scaleAnimation time.Duration
	// maxZoomScale is the largest scale reached by zooming to an
	// area, relative to the device scale factor.
	maxZoomScale float32
	// editingScale is the scale for editing a focused field,
	// relative to the device scale factor.
	editingScale float32
	controller   []viewport.Option
}

const (
	defaultScaleAnimation = 250 * time.Millisecond
	defaultMaxZoomScale   = 2.5
	defaultEditingScale   = 2
	// zoomMargin is the margin around zoom and editing targets,
	// relative to the device scale factor.
	zoomMargin = 10
	// minZoomPan is the smallest move that justifies panning to
	// an area instead of zooming back out.
	minZoomPan = 40
)

func defaultConfig() config {
	return config{
		scaleAnimation: defaultScaleAnimation,
		maxZoomScale:   defaultMaxZoomScale,
		editingScale:   defaultEditingScale,
	}
}

// WithMetric sets the metric for converting gesture thresholds to
// pixels. The default Metric maps 1 dp to 1 px.
func WithMetric(m unit.Metric) Option {
	return func(cnf *config) {
		cnf.metric = m
	}
}

// WithScaleAnimationDuration sets the duration of animated scale
// changes.
func WithScaleAnimationDuration(d time.Duration) Option {
	if d < 0 {
		panic("pageview: negative animation duration")
	}
	return func(cnf *config) {
		cnf.scaleAnimation = d
	}
}

// WithMaxZoomScale sets the largest scale reached by zooming to an
// area, before multiplying with the device scale factor.
func WithMaxZoomScale(s float32) Option {
	if s <= 0 {
		panic("pageview: zoom scale must be positive")
	}
	return func(cnf *config) {
		cnf.maxZoomScale = s
	}
}

// WithEditingScale sets the scale for editing a focused field,
// before multiplying with the device scale factor.
func WithEditingScale(s float32) Option {
	if s <= 0 {
		panic("pageview: editing scale must be positive")
	}
	return func(cnf *config) {
		cnf.editingScale = s
	}
}

// WithControllerOptions configures the viewport.Controller created
// by New.
func WithControllerOptions(opts ...viewport.Option) Option {
	return func(cnf *config) {
		cnf.controller = append(cnf.controller, opts...)
	}
}

// SetLogger sets the logger for diagnostics of this package and the
// viewport package. A nil logger disables logging, the default.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}
