// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubsite pipeline.
package types

// PubType classifies a publication for display purposes.
type PubType string

const (
	TypeJournal    PubType = "journal"
	TypeConference PubType = "conference"
)

// Publication is the display-ready form of one MTMT record. All free-text
// fields are HTML-escaped at construction; AuthorsHTML additionally carries
// the emphasis markup around the subject author.
type Publication struct {
	// Title is the HTML-escaped publication title.
	Title string `json:"title" yaml:"title"`

	// DOIURL is the resolvable DOI link, or empty when the record has no
	// DOI-typed identifier.
	DOIURL string `json:"doi_url,omitempty" yaml:"doi_url,omitempty"`

	// AuthorsHTML is the formatted author list ("F. Family, G. Family"),
	// with the subject author wrapped in <strong>.
	AuthorsHTML string `json:"authors_html" yaml:"authors_html"`

	// Venue is the HTML-escaped journal or proceedings title with volume,
	// issue, and page locators appended.
	Venue string `json:"venue" yaml:"venue"`

	// Type is the journal/conference classification.
	Type PubType `json:"type" yaml:"type"`

	// Publisher is the inferred publisher label ("IEEE", "Springer"), or
	// empty when unknown or deliberately suppressed.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// Citations is the citing publication count.
	Citations int `json:"citations" yaml:"citations"`

	// Year is the published year. Records without one are dropped before
	// this type is ever constructed.
	Year int `json:"year" yaml:"year"`
}

// YearGroup holds the publications of a single year in source order.
type YearGroup struct {
	Year         int           `json:"year" yaml:"year"`
	Publications []Publication `json:"publications" yaml:"publications"`
}
