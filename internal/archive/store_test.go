// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperfeed/pkg/types"
)

func samplePayload(query string, count int) types.Payload {
	papers := make([]types.Paper, count)
	for i := range papers {
		papers[i] = types.Paper{
			ID:      "http://arxiv.org/abs/2301.0000" + string(rune('1'+i)),
			Title:   "Paper",
			Authors: []string{"Smith", "Jones"},
		}
	}
	return types.Payload{
		GeneratedAtUTC: "2026-08-30T12:00:00Z",
		Query:          query,
		MaxResults:     12,
		Count:          count,
		Papers:         papers,
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "feed.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Runs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRecordRunAppends(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "feed.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.RecordRun(ctx, samplePayload("all:first", 2)))
	require.NoError(t, store.RecordRun(ctx, samplePayload("all:second", 3)))

	runs, err := store.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Most recent first.
	assert.Equal(t, "all:second", runs[0].Query)
	assert.Equal(t, 3, runs[0].Count)
	assert.Equal(t, "all:first", runs[1].Query)
	assert.Equal(t, 2, runs[1].Count)
}

func TestRunsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "feed.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordRun(ctx, samplePayload("q", 0)))
	}

	runs, err := store.Runs(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.RecordRun(context.Background(), samplePayload("q", 1)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Runs(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestFormatRuns(t *testing.T) {
	runs := []Run{
		{ID: 2, GeneratedAtUTC: "2026-08-30T12:00:00Z", Query: "all:second", MaxResults: 12, Count: 3},
		{ID: 1, GeneratedAtUTC: "2026-08-29T12:00:00Z", Query: "all:first", MaxResults: 12, Count: 2},
	}

	var buf bytes.Buffer
	FormatRuns(runs, &buf)
	s := buf.String()

	assert.Contains(t, s, "all:second")
	assert.Contains(t, s, "all:first")
	assert.Contains(t, s, "2 runs")
}

func TestFormatRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatRuns(nil, &buf)
	assert.Contains(t, buf.String(), "No archived runs")
}
