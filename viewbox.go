// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vicon

import "cogentcore.org/core/math32"

// FallbackSize is the dimension substituted for any view box dimension
// that is missing or not positive. It guarantees the fit computation
// never divides by zero.
const FallbackSize = 128

// ViewBox is the rectangular coordinate frame, in source-document
// units, that an SVG document's content is authored against.
type ViewBox struct {

	// Min is the offset of the view box origin.
	Min math32.Vector2

	// Size is the size of the view box. Both dimensions are
	// strictly positive after [ViewBox.Defaults].
	Size math32.Vector2
}

// Defaults substitutes [FallbackSize] for any non-positive dimension,
// each independently.
func (vb *ViewBox) Defaults() {
	if vb.Size.X <= 0 {
		vb.Size.X = FallbackSize
	}
	if vb.Size.Y <= 0 {
		vb.Size.Y = FallbackSize
	}
}

// Transform maps a source document's native coordinate space onto a
// target size: content is offset by the negative of Origin and then
// scaled uniformly by Scale. It is computed once per icon and applied
// to the container node, never to individual paths.
type Transform struct {

	// Scale is the uniform scale factor.
	Scale float32

	// Origin is the view box origin, which the container subtracts
	// from content coordinates so the icon's top-left visual corner
	// lands at the caller's anchor point.
	Origin math32.Vector2
}

// Fit computes the transform mapping the view box onto the given
// target size, preserving aspect ratio by scaling to the longer edge:
// the longer rendered edge equals exactly size, and the shorter edge
// scales proportionally and may be smaller. The view box must have
// positive dimensions; call [ViewBox.Defaults] first if in doubt.
func (vb ViewBox) Fit(size float32) Transform {
	return Transform{
		Scale:  size / max(vb.Size.X, vb.Size.Y),
		Origin: vb.Min,
	}
}
