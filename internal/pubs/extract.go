// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubs derives display-ready publication data from raw MTMT
// records. Each derivation is a total function over one record: absent
// fields resolve to documented defaults, never to errors.
package pubs

import (
	"sort"
	"strings"

	"github.com/mbalogh/pubsite/internal/mtmt"
)

// DOI returns the resolvable URL of the first DOI-typed identifier, or the
// empty string when the record has none.
func DOI(rec mtmt.Record) string {
	for _, ident := range rec.Identifiers {
		if ident.Source == nil || ident.Source.Type == nil {
			continue
		}
		if ident.Source.Type.Label == "DOI" {
			return ident.RealURL
		}
	}
	return ""
}

// AuthorString formats the counted authors of a record as
// "F. Family, G. Family, ...", ordered by list position. The authorship
// whose MTID equals subjectID is wrapped in <strong>; matching is by
// identifier only, so a namesake with a different MTID is never emphasized.
func AuthorString(authorships []mtmt.Authorship, subjectID int64) string {
	var counted []mtmt.Authorship
	for _, a := range authorships {
		if a.AuthorTyped {
			counted = append(counted, a)
		}
	}
	sort.SliceStable(counted, func(i, j int) bool {
		return counted[i].Position() < counted[j].Position()
	})

	parts := make([]string, 0, len(counted))
	for _, a := range counted {
		name := strings.TrimSpace(initial(a.GivenName) + " " + a.FamilyName)
		if a.Author != nil && a.Author.MTID == subjectID {
			name = "<strong>" + name + "</strong>"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

// initial returns the first rune of the given name followed by a period,
// or the empty string when there is no given name.
func initial(given string) string {
	for _, r := range given {
		return string(r) + "."
	}
	return ""
}
