// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"fmt"

	"github.com/jasonchan510ca/checklist-generator/pkg/types"
)

// Fixed layout metrics, in points. These are part of the visual design,
// not the configuration surface.
const (
	// titleOffset is the gap between the title baseline and the first
	// writable line of a column.
	titleOffset = 14.4

	// bulletAreaWidth is the indent reserved for any non-empty bullet.
	bulletAreaWidth = 21.6

	// trailingPad separates a category block from the next one. Applied
	// after drawing; not counted in the fit test.
	trailingPad = 14.4

	// numberLabelEnd is where right-aligned number labels end, relative
	// to the column edge.
	numberLabelEnd = 15

	// Dot bullet geometry, relative to (column edge, item baseline).
	dotOffsetX = 5
	dotOffsetY = 2
	dotRadius  = 2

	// Box bullet proportions, relative to the item font size.
	boxSideRatio = 0.8
	boxDropRatio = 0.1
)

// Stats reports layout anomalies that are accepted rather than fatal.
type Stats struct {
	// Overflowed names categories taller than a full column; their tails
	// run past the bottom margin.
	Overflowed []string
}

// cursor is the engine's write position. It never escapes Flow.
type cursor struct {
	col      int
	x, y     float64
	pristine bool // true until something is drawn in the current column
}

// Flow lays the document out into pages of draw primitives.
//
// Category blocks are atomic: the fit test runs before any of a block's
// lines are drawn, and a block that does not fit starts a fresh column (or
// page, when the column index would reach the column count). The one
// exception is a block taller than an entire column, which is drawn at the
// top of a fresh column and allowed to overflow; Stats records it.
func Flow(doc types.ChecklistDocument, cfg types.RenderConfig) ([]Page, Stats) {
	columns := doc.Columns
	if columns < 1 {
		columns = 1
	}

	pageW := cfg.Page.Width
	pageH := cfg.Page.Height
	margin := cfg.Page.Margin
	colWidth := (pageW - 2*margin) / float64(columns)
	topY := pageH - margin - titleOffset
	bottomY := margin

	var stats Stats
	pages := []Page{titledPage(1, doc.Title, cfg)}
	cur := cursor{col: 0, x: margin, y: topY, pristine: true}

	for _, cat := range doc.Categories {
		headerH := cfg.Header.Size + cfg.Header.SpaceAfter
		blockH := headerH + float64(len(cat.Items))*cfg.Item.LineHeight

		if cur.y-blockH < bottomY {
			if cur.pristine {
				// Nothing drawn in this column yet; an advance would
				// leave it blank. The block overflows instead.
				stats.Overflowed = append(stats.Overflowed, cat.Name)
			} else {
				cur.col++
				if cur.col >= columns {
					pages = append(pages, titledPage(len(pages)+1, doc.Title, cfg))
					cur.col = 0
				}
				cur.x = margin + float64(cur.col)*colWidth
				cur.y = topY
				cur.pristine = true
				if cur.y-blockH < bottomY {
					stats.Overflowed = append(stats.Overflowed, cat.Name)
				}
			}
		}
		page := &pages[len(pages)-1]

		// Category header.
		page.add(Text{X: cur.x, Y: cur.y, Value: cat.Name, Font: cfg.Header.TextStyle})
		cur.y -= headerH
		cur.pristine = false

		// Items.
		for i, item := range cat.Items {
			textX := cur.x + bulletAreaWidth
			switch cat.Bullet.Kind {
			case types.BulletNone:
				textX = cur.x
			case types.BulletDot:
				page.add(Circle{
					X:     cur.x + dotOffsetX,
					Y:     cur.y - dotOffsetY,
					R:     dotRadius,
					Color: cfg.Item.Color,
				})
			case types.BulletBox:
				side := cfg.Item.Size * boxSideRatio
				page.add(Rect{
					X:     cur.x,
					Y:     cur.y - side*boxDropRatio,
					W:     side,
					H:     side,
					Color: cfg.Item.Color,
				})
			case types.BulletNumber:
				page.add(Text{
					X:     cur.x + numberLabelEnd,
					Y:     cur.y,
					Value: fmt.Sprintf("%d.", i+1),
					Font:  cfg.Item.TextStyle,
					Align: AlignRight,
				})
			case types.BulletGlyph:
				page.add(Text{X: cur.x, Y: cur.y, Value: cat.Bullet.Glyph, Font: cfg.Item.TextStyle})
			}
			page.add(Text{X: textX, Y: cur.y, Value: item, Font: cfg.Item.TextStyle})
			cur.y -= cfg.Item.LineHeight
		}

		cur.y -= trailingPad
	}

	return pages, stats
}

// titledPage starts a page with the centered title at the top margin.
func titledPage(number int, title string, cfg types.RenderConfig) Page {
	p := Page{Number: number, Width: cfg.Page.Width, Height: cfg.Page.Height}
	p.add(Text{
		X:     cfg.Page.Width / 2,
		Y:     cfg.Page.Height - cfg.Page.Margin,
		Value: title,
		Font:  cfg.Title,
		Align: AlignCenter,
	})
	return p
}
