// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export builds the publishing payload and writes it to disk.
package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperfeed/pkg/types"
)

// stampLayout renders UTC times at second precision with a "Z" suffix.
const stampLayout = "2006-01-02T15:04:05Z07:00"

// BuildPayload wraps papers with run metadata. A nil slice becomes an empty
// one so the serialized papers field is always an array.
func BuildPayload(papers []types.Paper, query string, maxResults int) types.Payload {
	if papers == nil {
		papers = []types.Paper{}
	}
	return types.Payload{
		GeneratedAtUTC: time.Now().UTC().Format(stampLayout),
		Query:          query,
		MaxResults:     maxResults,
		Count:          len(papers),
		Papers:         papers,
	}
}

// Write serializes the payload to path, creating parent directories as
// needed and overwriting any existing file. Content is staged in a temp file
// and renamed into place, so a failed run never leaves a partial file behind.
func Write(payload types.Payload, path string, format types.OutputFormat) error {
	data, err := encode(payload, format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.Errorf(types.KindIO, "creating output directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".paperfeed-*.tmp")
	if err != nil {
		return types.Errorf(types.KindIO, "creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return types.Errorf(types.KindIO, "writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return types.Errorf(types.KindIO, "closing temp file: %w", closeErr)
	}

	// CreateTemp files are 0600; the published file should be world-readable.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return types.Errorf(types.KindIO, "setting permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return types.Errorf(types.KindIO, "replacing %s: %w", path, err)
	}
	return nil
}

// encode renders the payload: two-space indented JSON with non-ASCII kept
// literal and a trailing newline, or YAML when requested.
func encode(payload types.Payload, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputYAML:
		data, err := yaml.Marshal(&payload)
		if err != nil {
			return nil, types.Errorf(types.KindIO, "marshaling YAML: %w", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return nil, types.Errorf(types.KindIO, "marshaling JSON: %w", err)
		}
		return buf.Bytes(), nil
	}
}
