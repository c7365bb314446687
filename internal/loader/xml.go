// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"encoding/xml"
	"fmt"
)

// xmlChecklist accepts both schema variants; variant selection decides
// which of the title fields is consulted.
type xmlChecklist struct {
	TitleAttr  string        `xml:"title,attr"`
	TitleElem  string        `xml:"title"`
	Columns    string        `xml:"columns"`
	Categories []xmlCategory `xml:"category"`
}

type xmlCategory struct {
	Name   string   `xml:"name,attr"`
	Bullet string   `xml:"bullet_style,attr"`
	Items  []string `xml:"item"`
}

func decodeXML(data []byte, opts Options) (title string, columns int, cats []rawCategory, err error) {
	var src xmlChecklist
	if err := xml.Unmarshal(data, &src); err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	switch opts.Schema {
	case SchemaAttribute:
		// Title on the root element; the column count is fixed outside the
		// document, so an in-document <columns> element is ignored.
		title = src.TitleAttr
		columns = fallbackColumns(opts)
	default:
		title = src.TitleElem
		if src.Columns == "" {
			columns = fallbackColumns(opts)
		} else if columns, err = parseColumns(src.Columns); err != nil {
			return "", 0, nil, err
		}
	}

	for _, c := range src.Categories {
		cats = append(cats, rawCategory{name: c.Name, bullet: c.Bullet, items: c.Items})
	}
	return title, columns, cats, nil
}
