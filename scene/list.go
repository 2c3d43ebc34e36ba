// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "slices"

// List is a [Builder] that retains the node descriptions it is given
// instead of handing them to a rendering engine. It backs the package
// tests and suits engines that prefer to walk finished node records
// and translate them themselves. The zero value is ready to use;
// every constructor call allocates a fresh node.
type List struct{}

// GroupNode is the retained form of a [Group] and its children.
type GroupNode struct {
	Group
	Children []Node
}

// PathNode is the retained form of a [Path].
type PathNode struct {
	Path
}

// RectNode is the retained form of a [Rect].
type RectNode struct {
	Rect
}

// LineNode is the retained form of a [Line].
type LineNode struct {
	Line
}

func (List) Group(g Group, children ...Node) Node {
	return &GroupNode{Group: g, Children: slices.Clone(children)}
}

func (List) Path(p Path) Node { return &PathNode{Path: p} }

func (List) Rect(r Rect) Node { return &RectNode{Rect: r} }

func (List) Line(l Line) Node {
	l.Points = slices.Clone(l.Points)
	return &LineNode{Line: l}
}
