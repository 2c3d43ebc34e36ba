// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vicon

import (
	"context"
	"net/http"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/corvid-labs/vicon/scene"
)

// Options configures one run of the icon pipeline. The zero value is
// usable: the icon is anchored at the origin at [FallbackSize] with no
// style override, fetched with [http.DefaultClient] if remote.
type Options struct {

	// Pos anchors the icon's top-left visual corner.
	Pos math32.Vector2

	// Size is the target size: the icon's longer edge maps exactly
	// to it, the shorter edge scales proportionally. Zero or
	// negative means [FallbackSize].
	Size float32

	// Override globally overrides declared path paint values.
	Override *Override

	// Client is the HTTP client for remote sources.
	Client *http.Client
}

// Render runs the full icon pipeline: resolve the icon specification
// to markup (fetching if it is a remote reference), extract its view
// box and paths, fit the view box to the target size, and assemble a
// container node with one child per path. The only possible error is
// a fetch failure, which wraps [ErrFetch]; malformed markup degrades
// to an empty container per [ReadDocument].
//
// Every call is independent and produces fresh nodes; identical inputs
// produce structurally identical results.
func Render(ctx context.Context, b scene.Builder, icon string, opts Options) (scene.Node, error) {
	rs := &Resolver{Client: opts.Client}
	markup, err := rs.Resolve(ctx, icon)
	if err != nil {
		return nil, err
	}
	doc := ReadDocument(strings.NewReader(markup))
	size := opts.Size
	if size <= 0 {
		size = FallbackSize
	}
	return Assemble(b, opts.Pos, doc, doc.ViewBox.Fit(size), opts.Override), nil
}
