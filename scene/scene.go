// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the constructor contract between the vicon
// icon pipeline and a retained-mode 2D rendering engine.
//
// The pipeline describes the nodes it needs with plain value structs
// ([Group], [Path], [Rect], [Line]) and asks a [Builder] to create them.
// The engine returns opaque [Node] handles; the pipeline never inspects
// or mutates a node after creation, and ownership of each node passes to
// the caller as soon as the constructor returns it.
package scene

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
	"cogentcore.org/core/styles/sides"
)

// Node is an opaque handle to a drawable node owned by the rendering
// engine. Nodes have identity but no structure visible to this package.
type Node any

// Builder constructs drawable nodes in a rendering engine's scene graph.
// Implementations must preserve the order of children passed to Group:
// later children paint over earlier ones where geometry overlaps.
type Builder interface {

	// Group creates a container node holding the given children,
	// in order. The children must already have been created by
	// this same builder.
	Group(g Group, children ...Node) Node

	// Path creates a node that draws SVG path command data.
	Path(p Path) Node

	// Rect creates a rectangle node, optionally with per-corner
	// rounding, a gradient fill, and a drop shadow.
	Rect(r Rect) Node

	// Line creates a polyline node through the given points.
	Line(l Line) Node
}

// Group describes a container node. Content authored in a source
// coordinate frame is first translated by Offset, then scaled uniformly
// by Scale, and finally positioned at Pos in the parent's frame.
type Group struct {

	// Pos is the position of the container in parent coordinates.
	Pos math32.Vector2

	// Offset is added to child coordinates before scaling.
	// The icon pipeline uses the negative of the source view box
	// origin here so view-box content lands at the container origin.
	Offset math32.Vector2

	// Scale is the uniform scale applied to all children.
	Scale float32
}

// Paint holds the optional paint values for a path node. The strings
// are raw SVG paint values (named colors, hex, etc.) that the engine
// interprets; this package never parses them. An empty string or nil
// width means unset: the engine applies its own default rather than
// receiving a zero value.
type Paint struct {
	Fill        string
	Stroke      string
	StrokeWidth *float32
}

// Path describes a node drawing SVG path command data.
// Data is passed to the engine verbatim, without validation.
type Path struct {
	Data string
	Paint
}

// Rect describes a rectangle node. Unlike [Path], its paints are
// concrete images because rectangles are synthesized by this library
// rather than read from a document: Fill may be a gradient.
type Rect struct {
	Pos    math32.Vector2
	Size   math32.Vector2
	Radius sides.Floats
	Fill   image.Image
	Stroke image.Image

	// StrokeWidth is the stroke width; zero draws no stroke.
	StrokeWidth float32

	// Shadow is an optional drop shadow behind the rectangle.
	Shadow *Shadow
}

// Shadow is a drop shadow: a blurred, offset silhouette painted
// behind the node that casts it.
type Shadow struct {
	Offset math32.Vector2
	Blur   float32
	Color  color.RGBA
}

// Line describes a stroked polyline node.
type Line struct {
	Points      []math32.Vector2
	Stroke      image.Image
	StrokeWidth float32
	Cap         ppath.Caps
}
