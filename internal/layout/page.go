// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout packs category blocks into a fixed-size multi-column page
// grid, paginating when a column no longer fits. It is pure computation:
// input model in, positioned draw primitives out, no I/O.
//
// Coordinates are PDF-style: points, origin at the bottom-left corner of
// the page, y increasing upward. Text positions are baseline anchors.
package layout

import "github.com/jasonchan510ca/checklist-generator/pkg/types"

// Align positions a Text primitive relative to its X anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Primitive is one draw instruction on a page.
type Primitive interface {
	primitive()
}

// Text draws a string at a baseline anchor.
type Text struct {
	X, Y  float64
	Value string
	Font  types.TextStyle
	Align Align
}

// Circle draws a filled and stroked circle centered at (X, Y).
type Circle struct {
	X, Y, R float64
	Color   types.RGB
}

// Rect draws a stroked rectangle; (X, Y) is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
	Color      types.RGB
}

func (Text) primitive()   {}
func (Circle) primitive() {}
func (Rect) primitive()   {}

// Page is one fixed-size output page with its primitives in draw order.
type Page struct {
	Number        int // 1-indexed
	Width, Height float64
	Prims         []Primitive
}

func (p *Page) add(prim Primitive) {
	p.Prims = append(p.Prims, prim)
}

// Texts returns the page's text primitives in draw order.
func (p *Page) Texts() []Text {
	var out []Text
	for _, prim := range p.Prims {
		if t, ok := prim.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}
