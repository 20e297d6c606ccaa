// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns normalized publications into output documents:
// the HTML fragment embedded in the site, CSL-YAML for reference managers,
// and indented JSON.
package render

import (
	"fmt"
	"strings"

	"github.com/mbalogh/pubsite/pkg/types"
)

// Fragment indentation. The fragment sits inside .main > section >
// .container, so entries start at twelve spaces and step by four.
const (
	baseIndent = "            "
	indentStep = "    "
)

// Fragment renders the year groups as the publications HTML fragment.
// Output is deterministic for the same input so regenerated documents
// diff cleanly.
func Fragment(groups []types.YearGroup) string {
	var lines []string
	I := baseIndent

	for _, g := range groups {
		lines = append(lines,
			I+`<div class="year-group">`,
			I+indentStep+fmt.Sprintf(`<div class="year-label">%d</div>`, g.Year),
			"")

		for _, p := range g.Publications {
			lines = append(lines, pubItem(p)...)
			lines = append(lines, "")
		}

		lines = append(lines, I+`</div>`, "")
	}
	return strings.Join(lines, "\n")
}

// pubItem renders one publication entry. The publication's own fields are
// already escaped; only the structural markup is added here.
func pubItem(p types.Publication) []string {
	I := baseIndent + indentStep

	titleHTML := p.Title
	if p.DOIURL != "" {
		titleHTML = fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`, p.DOIURL, p.Title)
	}

	badgeClass, badgeLabel := "badge-conference", "Conference"
	if p.Type == types.TypeJournal {
		badgeClass, badgeLabel = "badge-journal", "Journal"
	}

	meta := []string{fmt.Sprintf(`<span class="pub-badge %s">%s</span>`, badgeClass, badgeLabel)}
	if p.Publisher != "" {
		meta = append(meta, fmt.Sprintf(`<span>%s</span>`, p.Publisher))
	}
	if p.Citations > 0 {
		meta = append(meta, fmt.Sprintf(`<span class="badge-citations">Cited by %d</span>`, p.Citations))
	}

	lines := []string{
		I + `<div class="pub-item">`,
		I + indentStep + `<div class="pub-title">`,
		I + indentStep + indentStep + titleHTML,
		I + indentStep + `</div>`,
		I + indentStep + fmt.Sprintf(`<div class="pub-authors">%s</div>`, p.AuthorsHTML),
		I + indentStep + fmt.Sprintf(`<div class="pub-venue">%s</div>`, p.Venue),
		I + indentStep + `<div class="pub-meta">`,
	}
	for _, m := range meta {
		lines = append(lines, I+indentStep+indentStep+m)
	}
	lines = append(lines,
		I+indentStep+`</div>`,
		I+`</div>`)
	return lines
}
