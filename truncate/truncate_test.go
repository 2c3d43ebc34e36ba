// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truncate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/vicon/truncate"
)

// fakeMetrics is a Metrics with settable geometry.
type fakeMetrics struct {
	content float32
	line    float32
}

func (m *fakeMetrics) ContentHeight() float32 { return m.content }
func (m *fakeMetrics) LineHeight() float32    { return m.line }

// fakeObserver records observation lifecycle and lets tests fire
// resize callbacks.
type fakeObserver struct {
	fn       func()
	observes int
	stops    int
}

func (o *fakeObserver) Observe(fn func()) (stop func()) {
	o.fn = fn
	o.observes++
	return func() { o.stops++ }
}

func (o *fakeObserver) resize() { o.fn() }

func newWidget(content, line float32) (*truncate.Widget, *fakeMetrics, *fakeObserver) {
	m := &fakeMetrics{content: content, line: line}
	o := &fakeObserver{}
	w := truncate.New(m, o)
	w.MoreLabel = "more"
	w.LessLabel = "less"
	w.SetRows(3)
	return w, m, o
}

func TestOverflowBoundary(t *testing.T) {
	// budget is 3 rows x 22 = 66, with a 1px tolerance
	w, m, o := newWidget(66, 22)
	w.Mount()
	assert.False(t, w.Overflowing())

	m.content = 67 // exactly budget+1: still not overflowing
	o.resize()
	assert.False(t, w.Overflowing())

	m.content = 68 // budget+2: overflowing
	o.resize()
	assert.True(t, w.Overflowing())
}

func TestDefaultLineHeight(t *testing.T) {
	// unreadable line height falls back to 22
	w, m, o := newWidget(0, 0)
	w.Mount()

	m.content = 3*truncate.DefaultLineHeight + 2
	o.resize()
	assert.True(t, w.Overflowing())
}

func TestToggleAndAffordance(t *testing.T) {
	w, m, o := newWidget(100, 22)
	w.Mount()
	require.True(t, w.Overflowing())
	assert.False(t, w.Expanded())

	rows, clamped := w.Clamp()
	assert.True(t, clamped)
	assert.Equal(t, 3, rows)

	label, show := w.Affordance()
	assert.True(t, show)
	assert.Equal(t, "more", label)

	w.Toggle()
	assert.True(t, w.Expanded())
	_, clamped = w.Clamp()
	assert.False(t, clamped)
	label, _ = w.Affordance()
	assert.Equal(t, "less", label)

	// overflow goes away: affordance disappears, expanded survives
	m.content = 40
	o.resize()
	_, show = w.Affordance()
	assert.False(t, show)
	assert.True(t, w.Expanded())

	_, clamped = w.Clamp()
	assert.False(t, clamped)
}

func TestObservationLifecycle(t *testing.T) {
	w, _, o := newWidget(100, 22)
	assert.Equal(t, 1, o.observes) // SetRows in newWidget

	// each input change releases the previous observation first
	w.SetText("hello")
	assert.Equal(t, 2, o.observes)
	assert.Equal(t, 1, o.stops)

	w.Mount()
	assert.Equal(t, 3, o.observes)
	assert.Equal(t, 2, o.stops)

	w.Unmount()
	assert.Equal(t, 3, o.stops)

	// unmount twice is safe and does not double-release
	w.Unmount()
	assert.Equal(t, 3, o.stops)
}

func TestIdempotentMeasure(t *testing.T) {
	w, _, o := newWidget(100, 22)
	w.Mount()
	before := w.Overflowing()
	for range 5 {
		o.resize()
		assert.Equal(t, before, w.Overflowing())
	}
}
