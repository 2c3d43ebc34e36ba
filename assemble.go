// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vicon

import (
	"cogentcore.org/core/math32"

	"github.com/corvid-labs/vicon/scene"
)

// Assemble creates one container node at pos carrying the given
// transform, with one child path node per entry of doc.Paths, in
// document order. Paint values resolve by override-then-declared
// precedence per field (see [Override]); path command data passes to
// the engine verbatim. A document with no paths yields a container
// with zero children, which is a valid icon, not an error.
func Assemble(b scene.Builder, pos math32.Vector2, doc *Document, xf Transform, over *Override) scene.Node {
	if over == nil {
		over = &Override{}
	}
	children := make([]scene.Node, 0, len(doc.Paths))
	for _, pd := range doc.Paths {
		children = append(children, b.Path(scene.Path{
			Data: pd.Data,
			Paint: scene.Paint{
				Fill:        resolvePaint(over.Fill, pd.Fill),
				Stroke:      resolvePaint(over.Stroke, pd.Stroke),
				StrokeWidth: resolveWidth(over.StrokeWidth, pd.StrokeWidth),
			},
		}))
	}
	return b.Group(scene.Group{
		Pos:    pos,
		Offset: xf.Origin.Negate(),
		Scale:  xf.Scale,
	}, children...)
}
