// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader reads a checklist source file into the in-memory model.
//
// Two source formats are supported, selected by file extension: XML
// (default) and YAML (".yaml"/".yml"). The XML format itself has two
// schema variants, selected by Options.Schema: the inline variant carries
// title and column count as child elements, the attribute variant carries
// the title as a root attribute and takes the column count from
// configuration.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jasonchan510ca/checklist-generator/pkg/types"
)

// Error taxonomy. All three are terminal for a run.
var (
	// ErrNotFound reports a missing source file.
	ErrNotFound = errors.New("checklist source not found")

	// ErrFormat reports an unparsable source or an invalid column count.
	ErrFormat = errors.New("invalid checklist source")

	// ErrEmptyResult reports a source that parsed but yielded no valid
	// categories after filtering.
	ErrEmptyResult = errors.New("no valid categories in checklist source")
)

// SchemaVariant selects how the XML source encodes title and column count.
type SchemaVariant string

const (
	// SchemaInline reads <title> and <columns> child elements.
	SchemaInline SchemaVariant = "inline"

	// SchemaAttribute reads the title from a root attribute; the column
	// count is fixed by Options.Columns.
	SchemaAttribute SchemaVariant = "attribute"
)

// ParseSchemaVariant validates a schema name from a flag or config value.
func ParseSchemaVariant(s string) (SchemaVariant, error) {
	switch SchemaVariant(s) {
	case SchemaInline, SchemaAttribute:
		return SchemaVariant(s), nil
	case "":
		return SchemaInline, nil
	default:
		return "", fmt.Errorf("unknown schema variant %q: use inline or attribute", s)
	}
}

// Options controls source interpretation.
type Options struct {
	// Schema selects the XML schema variant. Ignored for YAML sources.
	Schema SchemaVariant

	// Columns is the column count used when the document does not supply
	// one (and always, for the attribute variant). Values < 1 mean 1.
	Columns int
}

// rawCategory is a format-independent category before filtering.
type rawCategory struct {
	name   string
	bullet string
	items  []string
}

// Load reads and validates the checklist at path.
//
// Items with empty text are dropped; categories with an empty name or no
// surviving items are dropped silently. Load fails with ErrNotFound,
// ErrFormat, or ErrEmptyResult; it never touches the output target.
func Load(path string, opts Options) (types.ChecklistDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ChecklistDocument{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return types.ChecklistDocument{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var (
		title   string
		columns int
		cats    []rawCategory
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		title, columns, cats, err = decodeYAML(data, opts)
	default:
		title, columns, cats, err = decodeXML(data, opts)
	}
	if err != nil {
		return types.ChecklistDocument{}, fmt.Errorf("%s: %w", path, err)
	}

	doc := assemble(title, columns, cats)
	if len(doc.Categories) == 0 {
		return types.ChecklistDocument{}, fmt.Errorf("%w: %s", ErrEmptyResult, path)
	}
	return doc, nil
}

// assemble applies defaults and the filtering policy.
func assemble(title string, columns int, cats []rawCategory) types.ChecklistDocument {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Checklist"
	}
	if columns < 1 {
		columns = 1
	}

	doc := types.ChecklistDocument{Title: title, Columns: columns}
	for _, rc := range cats {
		items := make([]string, 0, len(rc.items))
		for _, it := range rc.items {
			if it = strings.TrimSpace(it); it != "" {
				items = append(items, it)
			}
		}
		if strings.TrimSpace(rc.name) == "" || len(items) == 0 {
			continue
		}
		doc.Categories = append(doc.Categories, types.Category{
			Name:   strings.TrimSpace(rc.name),
			Bullet: types.ParseBulletStyle(rc.bullet),
			Items:  items,
		})
	}
	return doc
}

// parseColumns validates an in-document column count string.
func parseColumns(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: column count %q is not a number", ErrFormat, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: column count %d is not positive", ErrFormat, n)
	}
	return n, nil
}

func fallbackColumns(opts Options) int {
	if opts.Columns < 1 {
		return 1
	}
	return opts.Columns
}
