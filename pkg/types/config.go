package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperfeed/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OutputFormat selects the payload encoding written by the fetch pipeline.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// FetchConfig holds the settings for one fetch run. All fields are fixed for
// the duration of the run; validation happens once when the config is built.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Query is the arXiv search expression, passed to the API as-is.
	Query string `json:"query" yaml:"query"`

	// MaxResults is the number of entries requested from the API (default 12).
	// Non-positive values are passed through unchanged; the API decides.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// SortBy is the arXiv sort field (default "lastUpdatedDate").
	SortBy string `json:"sort_by" yaml:"sort_by"`

	// SortOrder is the arXiv sort direction (default "descending").
	SortOrder string `json:"sort_order" yaml:"sort_order"`

	// OutputPath is the destination file for the payload (default "data/arxiv.json").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects the payload encoding: json or yaml.
	Format OutputFormat `json:"format" yaml:"format"`

	// ArchivePath, when non-empty, appends the run to a SQLite archive at
	// this path after the output file is written.
	ArchivePath string `json:"archive_path,omitempty" yaml:"archive_path,omitempty"`
}
