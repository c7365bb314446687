// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jasonchan510ca/checklist-generator/internal/layout"
	"github.com/jasonchan510ca/checklist-generator/pkg/types"
)

func testPages() []layout.Page {
	cfg := types.DefaultRenderConfig()
	doc := types.ChecklistDocument{
		Title:   "Packing List",
		Columns: 2,
		Categories: []types.Category{
			{
				Name:   "Clothes",
				Bullet: types.BulletStyle{Kind: types.BulletBox},
				Items:  []string{"Shirt", "Socks"},
			},
			{
				Name:   "Docs",
				Bullet: types.BulletStyle{Kind: types.BulletNumber},
				Items:  []string{"Passport"},
			},
			{
				Name:   "Toiletries",
				Bullet: types.BulletStyle{Kind: types.BulletDot},
				Items:  []string{"Toothbrush"},
			},
		},
	}
	pages, _ := layout.Flow(doc, cfg)
	return pages
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testPages()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Errorf("output does not start with a PDF header: %q", buf.String()[:16])
	}
}

func TestWriteRejectsEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err == nil {
		t.Error("Write(nil) = nil error, want failure")
	}
}

func TestWritePDFCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := WritePDF(path, testPages()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestFontAvailable(t *testing.T) {
	tests := []struct {
		family string
		want   bool
	}{
		{"Helvetica", true},
		{"Times", true},
		{"Courier", true},
		{"Comic Sans MS", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := FontAvailable(types.TextStyle{Family: tt.family}); got != tt.want {
			t.Errorf("FontAvailable(%q) = %v, want %v", tt.family, got, tt.want)
		}
	}
}
