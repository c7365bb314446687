package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Point-based page geometry; 1 pt = 1/72 inch.
const inch = 72.0

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseColor reads a "#rrggbb" or "#rgb" hex color string.
func ParseColor(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	var digits int
	switch len(h) {
	case 6:
		digits = 2
	case 3:
		digits = 1
	default:
		return RGB{}, fmt.Errorf("invalid color %q: want #rrggbb or #rgb", s)
	}

	var parts [3]uint8
	for i := range parts {
		v, err := strconv.ParseUint(h[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		if digits == 1 {
			v *= 0x11
		}
		parts[i] = uint8(v)
	}
	return RGB{R: parts[0], G: parts[1], B: parts[2]}, nil
}

// TextStyle describes one fixed visual style: a PDF core font plus color.
// Style holds the gofpdf style string ("", "B", "I", "BI").
type TextStyle struct {
	Family string  `json:"family" yaml:"family"`
	Style  string  `json:"style" yaml:"style"`
	Size   float64 `json:"size" yaml:"size"`
	Color  RGB     `json:"color" yaml:"color"`
}

// ParseFontName splits a PostScript-style core font name
// ("Helvetica-Bold", "Times-Roman") into a gofpdf family and style string.
func ParseFontName(name string) (family, style string) {
	base, suffix, _ := strings.Cut(name, "-")
	switch suffix {
	case "Bold":
		style = "B"
	case "Oblique", "Italic":
		style = "I"
	case "BoldOblique", "BoldItalic":
		style = "BI"
	case "Roman", "":
		style = ""
	default:
		// Unknown suffix is part of the family name.
		return name, ""
	}
	return base, style
}

// HeaderStyle styles category header lines.
type HeaderStyle struct {
	TextStyle `yaml:",inline"`

	// SpaceAfter is the extra vertical gap below a header line.
	SpaceAfter float64 `json:"space_after" yaml:"space_after"`
}

// ItemStyle styles item lines.
type ItemStyle struct {
	TextStyle `yaml:",inline"`

	// LineHeight is the vertical space consumed by each item line.
	LineHeight float64 `json:"line_height" yaml:"line_height"`
}

// PageConfig fixes the page geometry for a run. Units are points.
type PageConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Margin float64 `json:"margin" yaml:"margin"`
}

// RenderConfig groups everything the layout engine needs besides the
// document itself. It is built once per run and passed by value; the
// engine holds no process-wide style state.
type RenderConfig struct {
	Page PageConfig `json:"page" yaml:"page"`

	// Columns is the column count used when the document does not carry
	// one, and the fixed count for the attribute schema variant.
	Columns int `json:"columns" yaml:"columns"`

	Title  TextStyle   `json:"title" yaml:"title"`
	Header HeaderStyle `json:"header" yaml:"header"`
	Item   ItemStyle   `json:"item" yaml:"item"`
}

// DefaultRenderConfig returns the stock style: a B6 page with 0.2 in
// margins, dark blue bold headers and black items.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Page: PageConfig{
			Width:  499, // B6 in points
			Height: 709,
			Margin: 0.20 * inch,
		},
		Columns: 1,
		Title: TextStyle{
			Family: "Helvetica",
			Style:  "B",
			Size:   18,
			Color:  RGB{},
		},
		Header: HeaderStyle{
			TextStyle: TextStyle{
				Family: "Helvetica",
				Style:  "B",
				Size:   8,
				Color:  RGB{R: 0x00, G: 0x00, B: 0x8B}, // dark blue
			},
			SpaceAfter: 0.05 * inch,
		},
		Item: ItemStyle{
			TextStyle: TextStyle{
				Family: "Helvetica",
				Style:  "",
				Size:   8,
				Color:  RGB{},
			},
			LineHeight: 0.12 * inch,
		},
	}
}
