// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vicon

import (
	"encoding/xml"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html/charset"
)

// PathData records one <path> element of an SVG document: its command
// data and the paint values it declares. Paint values are captured as
// literal strings, uninterpreted; a missing value is the empty string
// (or nil width).
type PathData struct {
	Data        string
	Fill        string
	Stroke      string
	StrokeWidth *float32
}

// Document is the geometric metadata and path list extracted from an
// SVG document: the declared view box (or its fallback) and every
// <path> element with command data, in document order. Document order
// is significant: later paths paint over earlier ones.
type Document struct {
	ViewBox ViewBox
	Paths   []PathData
}

// ReadDocument extracts a [Document] from SVG markup.
//
// Parsing is deliberately lenient: icon rendering is decorative, so a
// malformed document degrades to zero paths and the fallback view box
// instead of returning an error. Decode errors are logged. The view
// box comes from the root viewBox attribute; if that is absent or
// malformed, from the root width and height attributes, each
// independently defaulting to [FallbackSize]. Paths lacking a d
// attribute are skipped. An inline style attribute on a path
// overrides the matching presentation attributes, per CSS precedence.
func ReadDocument(r io.Reader) *Document {
	doc := &Document{}
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	gotRoot := false
	gotViewBox := false
	var width, height float32
	for {
		t, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				slog.Error("vicon: SVG parsing error", "err", err)
			}
			break
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "svg":
			if gotRoot {
				continue
			}
			gotRoot = true
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "viewBox":
					pts := math32.ReadPoints(attr.Value)
					if len(pts) != 4 {
						continue
					}
					gotViewBox = true
					doc.ViewBox.Min = math32.Vec2(pts[0], pts[1])
					doc.ViewBox.Size = math32.Vec2(pts[2], pts[3])
				case "width":
					width = readDimension(attr.Value)
				case "height":
					height = readDimension(attr.Value)
				}
			}
		case "path":
			if pd, ok := readPath(se); ok {
				doc.Paths = append(doc.Paths, pd)
			}
		}
	}
	if !gotViewBox {
		doc.ViewBox = ViewBox{Size: math32.Vec2(width, height)}
	}
	doc.ViewBox.Defaults()
	return doc
}

// readDimension reads a root width or height attribute, tolerating a
// px suffix. Percentages and other units carry no information for icon
// fitting; anything unparsable or non-positive returns 0 so the
// fallback applies.
func readDimension(v string) float32 {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || f <= 0 {
		return 0
	}
	return float32(f)
}

// readWidth parses a stroke-width value, tolerating a px suffix.
func readWidth(v string) *float32 {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return nil
	}
	w := float32(f)
	return &w
}

// readPath captures one <path> element. The second return value is
// false for paths with no command data, which have nothing to draw.
func readPath(se xml.StartElement) (PathData, bool) {
	var pd PathData
	style := ""
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "d":
			pd.Data = attr.Value
		case "fill":
			pd.Fill = attr.Value
		case "stroke":
			pd.Stroke = attr.Value
		case "stroke-width":
			if w := readWidth(attr.Value); w != nil {
				pd.StrokeWidth = w
			}
		case "style":
			style = attr.Value
		}
	}
	if pd.Data == "" {
		return PathData{}, false
	}
	if style != "" {
		applyStyle(&pd, style)
	}
	return pd, true
}

// applyStyle overlays paint declarations from an inline style
// attribute onto the presentation attributes already captured.
// Unparsable style text is ignored.
func applyStyle(pd *PathData, style string) {
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		slog.Warn("vicon: invalid style attribute", "style", style, "err", err)
		return
	}
	for _, d := range decls {
		val := strings.TrimSpace(d.Value)
		switch d.Property {
		case "fill":
			pd.Fill = val
		case "stroke":
			pd.Stroke = val
		case "stroke-width":
			if w := readWidth(val); w != nil {
				pd.StrokeWidth = w
			}
		}
	}
}
