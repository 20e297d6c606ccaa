package pubs

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mbalogh/pubsite/internal/mtmt"
)

// issnPattern matches one or more whitespace-separated ISSN tokens
// (e.g. " 2061-2079 2061-2125") embedded in a journal title.
var issnPattern = regexp.MustCompile(`(\s+[0-9]{4}-[0-9]{3}[0-9Xx])+`)

// CleanJournalTitle strips embedded ISSN tokens and normalizes shouting
// titles. A title that is entirely uppercase and longer than five runes is
// converted to title case; anything else is left as the journal wrote it.
// The cleanup applies to journal titles only, never to book titles.
func CleanJournalTitle(raw string) string {
	cleaned := issnPattern.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == strings.ToUpper(cleaned) && utf8.RuneCountInString(cleaned) > 5 {
		cleaned = titleCase(cleaned)
	}
	return cleaned
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}

// Venue builds the venue display string: journal or proceedings title
// followed by volume, issue, and page locators, in that fixed order.
//
// A parent book seeds the venue; a journal entry overrides it, preferring
// the journal title, then its label, then the book seed, with ISSN/case
// cleanup applied to whichever won.
func Venue(rec mtmt.Record) string {
	venue := ""
	if rec.Book != nil {
		venue = rec.Book.Title
	}
	if rec.Journal != nil {
		raw := rec.Journal.Title
		if raw == "" {
			raw = rec.Journal.Label
		}
		if raw == "" {
			raw = venue
		}
		venue = CleanJournalTitle(raw)
	}

	if rec.Volume != "" {
		venue += ", vol. " + rec.Volume
	}
	if rec.Issue != "" {
		venue += ", no. " + rec.Issue
	}

	switch {
	case rec.FirstPage != "" && rec.LastPage != "" && rec.FirstPage != rec.LastPage:
		venue += ", pp. " + rec.FirstPage + "–" + rec.LastPage
	case rec.FirstPage != "" && rec.LastPage != "":
		venue += ", p. " + rec.FirstPage
	}
	return venue
}
