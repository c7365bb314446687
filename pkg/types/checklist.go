// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for checklist documents and
// the render configuration threaded through the pipeline.
package types

// BulletKind identifies the visual marker drawn before each item.
type BulletKind int

const (
	// BulletNone draws no marker; item text sits flush at the column edge.
	BulletNone BulletKind = iota

	// BulletDot draws a small filled circle.
	BulletDot

	// BulletBox draws an empty checkbox sized relative to the item font.
	BulletBox

	// BulletNumber draws a right-aligned sequential label ("1.", "2.", ...).
	BulletNumber

	// BulletGlyph draws a literal marker string taken from the source
	// document ("-", "*", "→", ...).
	BulletGlyph
)

// BulletStyle is a tagged variant: Glyph carries the literal marker only
// when Kind is BulletGlyph.
type BulletStyle struct {
	Kind  BulletKind
	Glyph string
}

// ParseBulletStyle maps a source-document bullet tag to a BulletStyle.
// An empty tag means no bullet; unrecognized tags become literal glyphs.
func ParseBulletStyle(tag string) BulletStyle {
	switch tag {
	case "":
		return BulletStyle{Kind: BulletNone}
	case "dot":
		return BulletStyle{Kind: BulletDot}
	case "box":
		return BulletStyle{Kind: BulletBox}
	case "number":
		return BulletStyle{Kind: BulletNumber}
	default:
		return BulletStyle{Kind: BulletGlyph, Glyph: tag}
	}
}

// Category is one named block of checklist items. Name is non-empty and
// Items holds at least one non-empty string; the loader filters out
// anything else before a Category is constructed.
type Category struct {
	Name   string
	Bullet BulletStyle
	Items  []string
}

// ChecklistDocument is the in-memory model produced by the loader.
// Immutable once loaded.
type ChecklistDocument struct {
	// Title is printed centered at the top of every page.
	// Defaults to "Checklist" when the source omits it.
	Title string

	// Columns is the number of layout columns per page (>= 1).
	Columns int

	// Categories survive loader filtering in source order.
	Categories []Category
}

// ItemCount returns the total number of items across all categories.
func (d ChecklistDocument) ItemCount() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Items)
	}
	return n
}
