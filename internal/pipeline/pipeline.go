// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the fetch → parse → write sequence for one
// invocation. Control flows strictly forward; any stage failure aborts the
// run and nothing is written.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/paperfeed/internal/archive"
	"github.com/pdiddy/paperfeed/internal/arxiv"
	"github.com/pdiddy/paperfeed/internal/export"
	"github.com/pdiddy/paperfeed/pkg/types"
)

// Report summarizes a completed run.
type Report struct {
	Count      int
	OutputPath string
}

// Run executes the pipeline once: build the request URL, fetch the feed,
// parse it, write the payload, and optionally append the run to the archive.
// The output path is touched only after the whole feed parses; the one-line
// success message goes to w.
func Run(ctx context.Context, cfg types.FetchConfig, client *http.Client, w io.Writer) (*Report, error) {
	apiURL := arxiv.BuildAPIURL(cfg)

	body, err := arxiv.Fetch(ctx, client, apiURL, cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	papers, err := arxiv.ParseFeed(body)
	if err != nil {
		return nil, err
	}

	payload := export.BuildPayload(papers, cfg.Query, cfg.MaxResults)
	if err := export.Write(payload, cfg.OutputPath, cfg.Format); err != nil {
		return nil, err
	}

	if cfg.ArchivePath != "" {
		store, err := archive.Open(cfg.ArchivePath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		if err := store.RecordRun(ctx, payload); err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(w, "Saved %d papers to %s\n", payload.Count, cfg.OutputPath)
	return &Report{Count: payload.Count, OutputPath: cfg.OutputPath}, nil
}
