// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package truncate implements an overflow-truncation widget: a block
// of text clipped to a fixed number of rows, with a "more"/"less"
// affordance shown only while the text actually overflows.
//
// The widget is pure state machine; measurement and resize
// observation are injected via the [Metrics] and [Observer]
// interfaces so any UI runtime can drive it. It is independent of the
// icon pipeline in the rest of this module.
package truncate

// DefaultLineHeight is used when the line height cannot be read from
// the rendered element's computed style.
const DefaultLineHeight = 22

// overflowTolerance absorbs sub-pixel rounding in measured heights:
// content is only overflowing once it exceeds the row budget by more
// than this many pixels.
const overflowTolerance = 1

// Metrics reports the rendered geometry of the widget's text block.
type Metrics interface {

	// ContentHeight returns the full, unclamped height of the
	// rendered text content.
	ContentHeight() float32

	// LineHeight returns the line height from the element's
	// computed style. A non-positive value means it could not be
	// read and [DefaultLineHeight] applies.
	LineHeight() float32
}

// Observer reports size changes of the widget's containing element.
type Observer interface {

	// Observe starts observation, invoking fn whenever the
	// element's box dimensions change, and returns a function that
	// stops it. No callback ordering is guaranteed relative to
	// other observers; stop must be safe to call exactly once.
	Observe(fn func()) (stop func())
}

// Widget clips text to a row budget, re-measuring on any size or
// input change. It has two states, collapsed (initial) and expanded,
// toggled only by explicit user action via [Widget.Toggle]. Identical
// (text, rows, measured geometry) always yields identical state.
type Widget struct {

	// MoreLabel and LessLabel are the localized labels of the
	// expand/collapse affordance.
	MoreLabel string
	LessLabel string

	text        string
	rows        int
	expanded    bool
	overflowing bool

	metrics Metrics
	obs     Observer
	stop    func()
}

// New returns a widget measuring with m and re-measuring whenever obs
// reports a size change. Observation starts on [Widget.Mount].
func New(m Metrics, obs Observer) *Widget {
	return &Widget{metrics: m, obs: obs}
}

// Text returns the current text.
func (w *Widget) Text() string { return w.text }

// Rows returns the current row budget.
func (w *Widget) Rows() int { return w.rows }

// SetText sets the text, restarts observation, and re-measures.
func (w *Widget) SetText(text string) {
	w.text = text
	w.reobserve()
	w.Measure()
}

// SetRows sets the row budget, restarts observation, and re-measures.
func (w *Widget) SetRows(rows int) {
	w.rows = rows
	w.reobserve()
	w.Measure()
}

// Mount starts resize observation and performs the initial measure.
func (w *Widget) Mount() {
	w.reobserve()
	w.Measure()
}

// Unmount stops resize observation. The expanded flag survives so a
// remounted widget keeps its user-chosen state.
func (w *Widget) Unmount() {
	w.release()
}

// reobserve releases any active observation before starting the next
// one, so exactly one observation is ever active.
func (w *Widget) reobserve() {
	w.release()
	if w.obs != nil {
		w.stop = w.obs.Observe(w.Measure)
	}
}

func (w *Widget) release() {
	if w.stop != nil {
		w.stop()
		w.stop = nil
	}
}

// Measure re-runs the overflow test against the current geometry.
// It runs on every observer callback and on any input change.
func (w *Widget) Measure() {
	if w.metrics == nil || w.rows <= 0 {
		w.overflowing = false
		return
	}
	lh := w.metrics.LineHeight()
	if lh <= 0 {
		lh = DefaultLineHeight
	}
	budget := float32(w.rows) * lh
	w.overflowing = w.metrics.ContentHeight() > budget+overflowTolerance
}

// Overflowing reports whether the full content height exceeds the row
// budget by more than the sub-pixel tolerance.
func (w *Widget) Overflowing() bool { return w.overflowing }

// Expanded reports whether the user has expanded the widget. The flag
// is never reset by geometry changes, only by [Widget.Toggle].
func (w *Widget) Expanded() bool { return w.expanded }

// Toggle flips between collapsed and expanded. It is the only
// transition between the two states.
func (w *Widget) Toggle() { w.expanded = !w.expanded }

// Clamp returns the row count the rendered text should be clipped to
// and whether clipping applies at all. Text is clamped only while it
// overflows and the user has not expanded it.
func (w *Widget) Clamp() (rows int, clamped bool) {
	if w.overflowing && !w.expanded {
		return w.rows, true
	}
	return 0, false
}

// Affordance returns the label of the expand/collapse control and
// whether it should be shown. It is shown only while the text
// overflows; when overflow goes away the affordance disappears but
// the expanded flag is left as the user set it.
func (w *Widget) Affordance() (label string, show bool) {
	if !w.overflowing {
		return "", false
	}
	if w.expanded {
		return w.LessLabel, true
	}
	return w.MoreLabel, true
}
