// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render draws laid-out pages into a PDF artifact.
//
// It makes no layout decisions: every primitive arrives with its final
// position. The only work here is translating the engine's bottom-left
// origin into gofpdf's top-left origin and mapping styles onto the
// gofpdf API.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/jasonchan510ca/checklist-generator/internal/layout"
	"github.com/jasonchan510ca/checklist-generator/pkg/types"
)

// WritePDF renders pages into a PDF at path. The file is written only
// after the whole document rendered without error.
func WritePDF(path string, pages []layout.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, pages); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Write renders pages as PDF bytes to w.
func Write(w io.Writer, pages []layout.Page) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to render")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pages[0].Width, Ht: pages[0].Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	for _, page := range pages {
		pdf.AddPage()
		for _, prim := range page.Prims {
			drawPrimitive(pdf, page.Height, prim)
		}
	}

	return pdf.Output(w)
}

func drawPrimitive(pdf *gofpdf.Fpdf, pageH float64, prim layout.Primitive) {
	switch p := prim.(type) {
	case layout.Text:
		drawText(pdf, pageH, p)
	case layout.Circle:
		pdf.SetDrawColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))
		pdf.SetFillColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))
		pdf.Circle(p.X, pageH-p.Y, p.R, "FD")
	case layout.Rect:
		pdf.SetDrawColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))
		// Rect takes the top-left corner; the primitive anchors at the
		// bottom-left.
		pdf.Rect(p.X, pageH-(p.Y+p.H), p.W, p.H, "D")
	}
}

func drawText(pdf *gofpdf.Fpdf, pageH float64, t layout.Text) {
	pdf.SetFont(t.Font.Family, t.Font.Style, t.Font.Size)
	pdf.SetTextColor(int(t.Font.Color.R), int(t.Font.Color.G), int(t.Font.Color.B))

	x := t.X
	switch t.Align {
	case layout.AlignCenter:
		x -= pdf.GetStringWidth(t.Value) / 2
	case layout.AlignRight:
		x -= pdf.GetStringWidth(t.Value)
	}
	pdf.Text(x, pageH-t.Y, t.Value)
}

// FontAvailable reports whether a style names one of the PDF core font
// families the renderer can draw without embedding.
func FontAvailable(s types.TextStyle) bool {
	switch s.Family {
	case "Helvetica", "Arial", "Times", "Courier", "Symbol", "ZapfDingbats":
		return true
	}
	return false
}
