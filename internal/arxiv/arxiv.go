// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv builds arXiv API request URLs, fetches the Atom feed, and
// parses it into paper records.
package arxiv

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/paperfeed/pkg/types"
)

// APIBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var APIBase = "https://export.arxiv.org/api/query"

// BuildAPIURL constructs the fully encoded request URL for one search page.
// Pure string construction: no validation, no side effects. The start offset
// is always zero; a non-positive limit is passed through unchanged.
func BuildAPIURL(cfg types.FetchConfig) string {
	params := url.Values{}
	params.Set("search_query", cfg.Query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(cfg.MaxResults))
	params.Set("sortBy", cfg.SortBy)
	params.Set("sortOrder", cfg.SortOrder)
	return APIBase + "?" + params.Encode()
}

// Fetch performs a single GET against apiURL and returns the response body
// as UTF-8 text. Connection errors, timeouts, and non-2xx statuses all
// surface as network-kind failures; there is no retry.
func Fetch(ctx context.Context, client *http.Client, apiURL, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", types.Errorf(types.KindNetwork, "creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", types.Errorf(types.KindNetwork, "arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", types.Errorf(types.KindNetwork, "arXiv API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", types.Errorf(types.KindNetwork, "reading arXiv response: %w", err)
	}
	return string(body), nil
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Updated   string       `xml:"updated"`
	Authors   []atomAuthor `xml:"author"`
	Links     []atomLink   `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// ParseFeed decodes an Atom document into paper records, order matching the
// document. A malformed document is a parse-kind failure and nothing partial
// is returned; a feed without entries yields an empty slice.
func ParseFeed(xmlText string) ([]types.Paper, error) {
	var feed atomFeed
	if err := xml.Unmarshal([]byte(xmlText), &feed); err != nil {
		return nil, types.Errorf(types.KindParse, "parsing arXiv response: %w", err)
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		p := types.Paper{
			ID:        NormalizeSpace(entry.ID),
			Title:     NormalizeSpace(entry.Title),
			Summary:   NormalizeSpace(entry.Summary),
			Published: NormalizeSpace(entry.Published),
			Updated:   NormalizeSpace(entry.Updated),
		}
		for _, a := range entry.Authors {
			p.Authors = append(p.Authors, NormalizeSpace(a.Name))
		}

		p.PDFURL = pdfLink(entry.Links)
		if p.PDFURL == "" && p.ID != "" {
			p.PDFURL = strings.ReplaceAll(p.ID, "/abs/", "/pdf/") + ".pdf"
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// pdfLink returns the href of the first link whose title attribute is "pdf"
// or whose type attribute is "application/pdf", case-insensitively. Empty
// when no link matches.
func pdfLink(links []atomLink) string {
	for _, l := range links {
		if strings.EqualFold(l.Title, "pdf") || strings.EqualFold(l.Type, "application/pdf") {
			return l.Href
		}
	}
	return ""
}

// NormalizeSpace collapses runs of whitespace to single spaces and trims the
// ends. Idempotent: normalizing an already-normalized string is a no-op.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
