// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperfeed/pkg/types"
)

// QueryFile is the on-disk record of a fetch's query parameters and outcome.
// A saved run can be replayed later with the same parameters without
// retyping them.
type QueryFile struct {
	Query   QueryParams `yaml:"query"`
	Summary RunSummary  `yaml:"summary,omitempty"`
}

// QueryParams stores the fetch parameters in a serializable form. Zero
// fields keep their configured values when the file is applied.
type QueryParams struct {
	SearchQuery string `yaml:"search_query,omitempty"`
	MaxResults  int    `yaml:"max_results,omitempty"`
	SortBy      string `yaml:"sort_by,omitempty"`
	SortOrder   string `yaml:"sort_order,omitempty"`
}

// RunSummary stores what the run produced and when.
type RunSummary struct {
	Count     int       `yaml:"count"`
	Output    string    `yaml:"output"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the effective parameters and run summary to path.
func WriteQueryFile(path string, cfg types.FetchConfig, count int) error {
	qf := QueryFile{
		Query: QueryParams{
			SearchQuery: cfg.Query,
			MaxResults:  cfg.MaxResults,
			SortBy:      cfg.SortBy,
			SortOrder:   cfg.SortOrder,
		},
		Summary: RunSummary{
			Count:     count,
			Output:    cfg.OutputPath,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return types.Errorf(types.KindIO, "marshaling query file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return types.Errorf(types.KindIO, "writing query file: %w", err)
	}
	return nil
}

// ReadQueryFile loads a previously saved query file from disk. An unreadable
// or unparsable file is configuration-kind: it fails the run at startup.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.Errorf(types.KindConfig, "reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, types.Errorf(types.KindConfig, "parsing query file %s: %w", path, err)
	}
	return &qf, nil
}

// ApplyTo overrides cfg with the stored parameters, leaving fields the file
// does not set untouched.
func (p QueryParams) ApplyTo(cfg *types.FetchConfig) {
	if p.SearchQuery != "" {
		cfg.Query = p.SearchQuery
	}
	if p.MaxResults != 0 {
		cfg.MaxResults = p.MaxResults
	}
	if p.SortBy != "" {
		cfg.SortBy = p.SortBy
	}
	if p.SortOrder != "" {
		cfg.SortOrder = p.SortOrder
	}
}
