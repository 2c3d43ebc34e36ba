// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vicon

// Override is a caller-supplied global style override. A field set
// here wins over the corresponding declared value for every path in
// the icon; it is a single override per icon, not per path. Empty
// string and nil width mean "no override".
type Override struct {
	Fill        string
	Stroke      string
	StrokeWidth *float32
}

// noPaint is the SVG sentinel meaning "do not paint". It is
// normalized to unset rather than handed to the engine, which would
// otherwise try to parse it as a color.
const noPaint = "none"

// resolvePaint resolves one paint field by override-then-declared
// precedence, normalizing the "none" sentinel to unset afterwards.
// The empty string means unset on both input and output.
func resolvePaint(override, declared string) string {
	v := declared
	if override != "" {
		v = override
	}
	if v == noPaint {
		return ""
	}
	return v
}

// resolveWidth resolves the stroke width by the same precedence.
// nil means unset: the engine must apply its own default, never zero.
func resolveWidth(override, declared *float32) *float32 {
	if override != nil {
		return override
	}
	return declared
}
