// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vicon synthesizes positioned, scaled groups of drawable
// vector primitives for insertion into a retained-mode 2D scene graph.
//
// Given raw SVG markup, a remote SVG URL, or no source artwork at all,
// it produces a sequence of styled scene nodes anchored at a point:
//
//   - [Render] runs the full pipeline for external artwork:
//     resolve the source to markup, parse it into a [Document],
//     fit its view box to a target size, and assemble one container
//     node with one child per extracted path.
//   - [DocumentIcon] procedurally builds a stylized document glyph
//     when no artwork exists.
//
// Node construction is delegated to a [scene.Builder], so the library
// works with any rendering engine that can create group, path,
// rectangle, and line nodes. Only <path> elements of an SVG document
// are interpreted; this is a best-effort subset reader for decorative
// icons, not a conformant SVG engine. Malformed documents degrade to
// an empty icon rather than failing: see [ReadDocument].
package vicon
