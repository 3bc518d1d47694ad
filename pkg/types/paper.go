// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperfeed pipeline.
package types

// Paper holds the metadata extracted from one feed entry.
type Paper struct {
	// ID is the canonical arXiv abstract URL for this paper version.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, interior whitespace collapsed to single spaces.
	Title string `json:"title" yaml:"title"`

	// Authors lists the author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Summary is the abstract text, whitespace-normalized like Title.
	Summary string `json:"summary" yaml:"summary"`

	// Published and Updated keep the source timestamp strings unchanged.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated" yaml:"updated"`

	// PDFURL is the href of the entry's PDF link, or a URL derived from ID
	// when the feed carries no explicit PDF link.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}

// Payload is the document written to the output file: the fetched papers
// wrapped with run metadata. It is rebuilt from scratch on every run.
type Payload struct {
	// GeneratedAtUTC is the run timestamp, UTC at second precision with a
	// literal "Z" suffix.
	GeneratedAtUTC string `json:"generated_at_utc" yaml:"generated_at_utc"`

	// Query and MaxResults echo the parameters that produced the papers.
	Query      string `json:"query" yaml:"query"`
	MaxResults int    `json:"max_results" yaml:"max_results"`

	// Count is the number of papers.
	Count int `json:"count" yaml:"count"`

	// Papers holds the records in feed document order.
	Papers []Paper `json:"papers" yaml:"papers"`
}
