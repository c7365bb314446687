// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonchan510ca/checklist-generator/pkg/types"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const inlineXML = `<checklist>
  <title>Packing List</title>
  <columns>2</columns>
  <category name="Clothes" bullet_style="box">
    <item>Shirt</item>
    <item>Socks</item>
  </category>
  <category name="Docs" bullet_style="number">
    <item>Passport</item>
  </category>
</checklist>`

func TestLoadInlineXML(t *testing.T) {
	path := writeSource(t, "list.xml", inlineXML)

	doc, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Packing List", doc.Title)
	assert.Equal(t, 2, doc.Columns)
	require.Len(t, doc.Categories, 2)
	assert.Equal(t, "Clothes", doc.Categories[0].Name)
	assert.Equal(t, types.BulletBox, doc.Categories[0].Bullet.Kind)
	assert.Equal(t, []string{"Shirt", "Socks"}, doc.Categories[0].Items)
	assert.Equal(t, types.BulletNumber, doc.Categories[1].Bullet.Kind)
	assert.Equal(t, 3, doc.ItemCount())
}

func TestLoadInlineDefaults(t *testing.T) {
	path := writeSource(t, "list.xml", `<checklist>
  <category name="A"><item>x</item></category>
</checklist>`)

	doc, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Checklist", doc.Title, "missing title defaults")
	assert.Equal(t, 1, doc.Columns, "missing columns defaults")
}

func TestLoadInlineCallerColumns(t *testing.T) {
	path := writeSource(t, "list.xml", `<checklist>
  <category name="A"><item>x</item></category>
</checklist>`)

	doc, err := Load(path, Options{Columns: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Columns)
}

func TestLoadAttributeSchema(t *testing.T) {
	path := writeSource(t, "list.xml", `<checklist title="Field Kit">
  <columns>9</columns>
  <category name="Tools" bullet_style="dot">
    <item>Multimeter</item>
  </category>
</checklist>`)

	doc, err := Load(path, Options{Schema: SchemaAttribute, Columns: 2})
	require.NoError(t, err)
	assert.Equal(t, "Field Kit", doc.Title)
	assert.Equal(t, 2, doc.Columns, "columns element is ignored in attribute schema")
}

func TestLoadFiltering(t *testing.T) {
	path := writeSource(t, "list.xml", `<checklist>
  <title>T</title>
  <category name="Keep" bullet_style="">
    <item>ok</item>
    <item>   </item>
    <item></item>
  </category>
  <category name="" bullet_style="dot">
    <item>orphan</item>
  </category>
  <category name="Empty" bullet_style="dot">
    <item>  </item>
  </category>
</checklist>`)

	doc, err := Load(path, Options{})
	require.NoError(t, err)
	require.Len(t, doc.Categories, 1)
	assert.Equal(t, "Keep", doc.Categories[0].Name)
	assert.Equal(t, []string{"ok"}, doc.Categories[0].Items)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		opts    Options
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.xml") },
			wantErr: ErrNotFound,
		},
		{
			name: "unparsable xml",
			path: func(t *testing.T) string {
				return writeSource(t, "bad.xml", `<checklist><category name="A">`)
			},
			wantErr: ErrFormat,
		},
		{
			name: "non-numeric columns",
			path: func(t *testing.T) string {
				return writeSource(t, "bad.xml", `<checklist>
  <columns>two</columns>
  <category name="A"><item>x</item></category>
</checklist>`)
			},
			wantErr: ErrFormat,
		},
		{
			name: "non-positive columns",
			path: func(t *testing.T) string {
				return writeSource(t, "bad.xml", `<checklist>
  <columns>0</columns>
  <category name="A"><item>x</item></category>
</checklist>`)
			},
			wantErr: ErrFormat,
		},
		{
			name: "nothing survives filtering",
			path: func(t *testing.T) string {
				return writeSource(t, "empty.xml", `<checklist>
  <title>T</title>
  <category name=""><item>x</item></category>
</checklist>`)
			},
			wantErr: ErrEmptyResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t), tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseSchemaVariant(t *testing.T) {
	v, err := ParseSchemaVariant("")
	require.NoError(t, err)
	assert.Equal(t, SchemaInline, v)

	v, err = ParseSchemaVariant("attribute")
	require.NoError(t, err)
	assert.Equal(t, SchemaAttribute, v)

	_, err = ParseSchemaVariant("sideways")
	assert.Error(t, err)
}
