package pubs

import (
	"strings"

	"github.com/mbalogh/pubsite/internal/mtmt"
)

// publisherRule infers a publisher label for records it recognizes. Rules
// are tried in order and the first match wins; a rule may match with an
// empty label, which suppresses later rules for that record.
type publisherRule struct {
	name  string
	apply func(rec mtmt.Record) (string, bool)
}

var publisherRules = []publisherRule{
	{
		// IEEE proceedings are published out of Piscataway, NJ.
		name: "piscataway-imprint",
		apply: func(rec mtmt.Record) (string, bool) {
			if rec.Book == nil || len(rec.Book.PublishedAt) == 0 {
				return "", false
			}
			if strings.Contains(rec.Book.PublishedAt[0].Label, "Piscataway") {
				return "IEEE", true
			}
			return "", false
		},
	},
	{
		name: "identifier-host",
		apply: func(rec mtmt.Record) (string, bool) {
			for _, ident := range rec.Identifiers {
				if strings.Contains(ident.RealURL, "ieeexplore") {
					return "IEEE", true
				}
				if strings.Contains(ident.RealURL, "springer") {
					return "Springer", true
				}
			}
			return "", false
		},
	},
	{
		name: "doi-prefix",
		apply: func(rec mtmt.Record) (string, bool) {
			doi := DOI(rec)
			switch {
			case strings.Contains(doi, "10.1109"), strings.Contains(doi, "10.23919"):
				return "IEEE", true
			case strings.Contains(doi, "10.1007"):
				return "Springer", true
			case strings.Contains(doi, "10.36244"):
				// Infocommunications Journal: deliberately no label.
				return "", true
			}
			return "", false
		},
	},
}

// Publisher infers the publisher label for a record, or returns the empty
// string when no rule matches.
func Publisher(rec mtmt.Record) string {
	for _, rule := range publisherRules {
		if label, ok := rule.apply(rec); ok {
			return label
		}
	}
	return ""
}
