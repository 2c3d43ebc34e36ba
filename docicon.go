// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vicon

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/gradient"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
	"cogentcore.org/core/styles/sides"

	"github.com/corvid-labs/vicon/scene"
)

// DocStyle is the caller style for [DocumentIcon]. Fill and Stroke
// are color strings (named, hex, etc.); an unparsable color logs a
// warning and falls back to gray.
type DocStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth float32

	// CornerSize is the radius of the page's top-right corner.
	CornerSize float32
}

// Fixed geometry of the document glyph. These are deliberately not
// caller-configurable: the glyph has one topology.
const (
	docIconSize      = 16  // page width and height
	docIconLineCount = 4   // ruling lines simulating text
	docIconPad       = 4   // top and bottom padding around the lines
	docIconInset     = 3   // horizontal inset of each line
	docIconFirstTrim = 3   // extra shortening of the first line
	docIconLineWidth = 0.6 // ruling line stroke width
)

// docIconLineColor is the ruling line stroke, fixed independent of the
// caller style so the "text" stays legible on any page color.
var docIconLineColor = color.RGBA{R: 136, G: 136, B: 136, A: 255}

// docIconShadow is the soft drop shadow under the page.
var docIconShadow = scene.Shadow{
	Offset: math32.Vec2(0, 1),
	Blur:   2,
	Color:  color.RGBA{A: 64},
}

// DocumentIcon procedurally synthesizes a stylized document glyph
// with no external artwork: a gradient-filled page with a folded-over
// look (one rounded corner) above evenly spaced ruling lines, the
// first one shorter, reading as a title. It returns exactly
// 1+docIconLineCount nodes: the page rectangle first, then the lines
// top to bottom. Order is part of the contract: later nodes paint
// over earlier ones.
//
// Construction is synchronous and infallible; there is no I/O and no
// parsing beyond the caller's color strings.
func DocumentIcon(b scene.Builder, pos math32.Vector2, st DocStyle) []scene.Node {
	fill := parseColor(st.Fill, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	grad := gradient.NewLinear().SetStart(math32.Vec2(0, 0)).SetEnd(math32.Vec2(0, 1))
	grad.AddStop(fill, 0)
	grad.AddStop(colors.White, 1)

	shadow := docIconShadow
	nodes := make([]scene.Node, 0, 1+docIconLineCount)
	nodes = append(nodes, b.Rect(scene.Rect{
		Pos:         pos,
		Size:        math32.Vec2(docIconSize, docIconSize),
		Radius:      sides.NewFloats(0, st.CornerSize, 0, 0),
		Fill:        grad,
		Stroke:      colors.Uniform(parseColor(st.Stroke, color.RGBA{A: 255})),
		StrokeWidth: st.StrokeWidth,
		Shadow:      &shadow,
	}))

	const step = float32(docIconSize-2*docIconPad) / (docIconLineCount - 1)
	for i := range docIconLineCount {
		y := pos.Y + docIconPad + float32(i)*step
		end := pos.X + docIconSize - docIconInset
		if i == 0 {
			end -= docIconFirstTrim
		}
		nodes = append(nodes, b.Line(scene.Line{
			Points: []math32.Vector2{
				math32.Vec2(pos.X+docIconInset, y),
				math32.Vec2(end, y),
			},
			Stroke:      colors.Uniform(docIconLineColor),
			StrokeWidth: docIconLineWidth,
			Cap:         ppath.CapRound,
		}))
	}
	return nodes
}

// parseColor parses a caller color string, falling back on empty or
// unparsable input.
func parseColor(s string, fallback color.RGBA) color.RGBA {
	if s == "" {
		return fallback
	}
	c, err := colors.FromString(s)
	if err != nil {
		slog.Warn("vicon: invalid color", "color", s, "err", err)
		return fallback
	}
	return c
}
