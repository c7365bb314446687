// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{Dir: filepath.Join(t.TempDir(), "history")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id1, err := s.Record(ctx, Run{
		InputPath:  "packing.xml",
		OutputPath: "packing.pdf",
		Title:      "Packing List",
		Pages:      1,
		Categories: 2,
		Items:      3,
	})
	require.NoError(t, err)
	id2, err := s.Record(ctx, Run{
		InputPath:  "chores.yaml",
		OutputPath: "chores.pdf",
		Title:      "Chores",
		Pages:      2,
		Categories: 4,
		Items:      11,
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "Chores", runs[0].Title)
	assert.Equal(t, 2, runs[0].Pages)
	assert.Equal(t, 11, runs[0].Items)
	assert.False(t, runs[0].CreatedAt.IsZero())

	assert.Equal(t, "Packing List", runs[1].Title)
	assert.Equal(t, "packing.xml", runs[1].InputPath)
	assert.Equal(t, "packing.pdf", runs[1].OutputPath)
}

func TestListLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, Run{InputPath: "a.xml", OutputPath: "a.pdf", Title: "T", Pages: 1})
		require.NoError(t, err)
	}

	runs, err := s.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestOpenReopensExistingLedger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "history")

	s, err := Open(Config{Dir: dir})
	require.NoError(t, err)
	_, err = s.Record(context.Background(), Run{InputPath: "a.xml", OutputPath: "a.pdf", Title: "T", Pages: 1})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(Config{Dir: dir})
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
