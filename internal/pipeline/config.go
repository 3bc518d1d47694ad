// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/paperfeed/pkg/types"
)

// Built-in defaults for the fetch configuration.
const (
	DefaultQuery      = `(all:"large language model" OR all:"generative ai")`
	DefaultMaxResults = 12
	DefaultSortBy     = "lastUpdatedDate"
	DefaultSortOrder  = "descending"
	DefaultOutput     = "data/arxiv.json"
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "paperfeed/0.1"
)

// ParseMaxResults converts a configured result limit to an integer. The
// value arrives as a string from the environment or a flag; anything
// non-numeric is a config-kind failure at startup.
func ParseMaxResults(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, types.Errorf(types.KindConfig, "invalid max_results %q: %w", s, err)
	}
	return n, nil
}
