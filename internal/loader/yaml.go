// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// yamlChecklist is the typed-config form of a checklist source.
type yamlChecklist struct {
	Title      string         `yaml:"title"`
	Columns    *int           `yaml:"columns"`
	Categories []yamlCategory `yaml:"categories"`
}

type yamlCategory struct {
	Name   string   `yaml:"name"`
	Bullet string   `yaml:"bullet"`
	Items  []string `yaml:"items"`
}

func decodeYAML(data []byte, opts Options) (title string, columns int, cats []rawCategory, err error) {
	var src yamlChecklist
	if err := yaml.Unmarshal(data, &src); err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if src.Columns == nil {
		columns = fallbackColumns(opts)
	} else if *src.Columns < 1 {
		return "", 0, nil, fmt.Errorf("%w: column count %d is not positive", ErrFormat, *src.Columns)
	} else {
		columns = *src.Columns
	}

	for _, c := range src.Categories {
		cats = append(cats, rawCategory{name: c.Name, bullet: c.Bullet, items: c.Items})
	}
	return src.Title, columns, cats, nil
}
