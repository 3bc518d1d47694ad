package arxiv

import (
	"path/filepath"
	"testing"

	"github.com/pdiddy/paperfeed/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	cfg := types.FetchConfig{
		Query:      "all:transformers",
		MaxResults: 7,
		SortBy:     "submittedDate",
		SortOrder:  "ascending",
		OutputPath: "data/out.json",
	}

	path := filepath.Join(t.TempDir(), "query.yaml")
	if err := WriteQueryFile(path, cfg, 5); err != nil {
		t.Fatalf("WriteQueryFile: %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}

	if qf.Query.SearchQuery != "all:transformers" {
		t.Errorf("SearchQuery = %q", qf.Query.SearchQuery)
	}
	if qf.Query.MaxResults != 7 {
		t.Errorf("MaxResults = %d, want 7", qf.Query.MaxResults)
	}
	if qf.Summary.Count != 5 {
		t.Errorf("Summary.Count = %d, want 5", qf.Summary.Count)
	}
	if qf.Summary.Output != "data/out.json" {
		t.Errorf("Summary.Output = %q", qf.Summary.Output)
	}
}

func TestQueryParamsApplyTo(t *testing.T) {
	cfg := types.FetchConfig{
		Query:      "default query",
		MaxResults: 12,
		SortBy:     "lastUpdatedDate",
		SortOrder:  "descending",
	}

	QueryParams{SearchQuery: "all:bert", MaxResults: 3}.ApplyTo(&cfg)

	if cfg.Query != "all:bert" {
		t.Errorf("Query = %q", cfg.Query)
	}
	if cfg.MaxResults != 3 {
		t.Errorf("MaxResults = %d, want 3", cfg.MaxResults)
	}
	// Fields the file does not set keep their configured values.
	if cfg.SortBy != "lastUpdatedDate" || cfg.SortOrder != "descending" {
		t.Errorf("sort settings changed: %q %q", cfg.SortBy, cfg.SortOrder)
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if kind := types.KindOf(err); kind != types.KindConfig {
		t.Errorf("KindOf(err) = %q, want %q", kind, types.KindConfig)
	}
}
