package pubs

import (
	"html"
	"sort"

	"github.com/mbalogh/pubsite/internal/mtmt"
	"github.com/mbalogh/pubsite/pkg/types"
)

// Normalize combines the field extractors into one display-ready record.
// The second return value is false for records without a published year;
// those are dropped, not an error.
func Normalize(rec mtmt.Record, subjectID int64) (types.Publication, bool) {
	if rec.PublishedYear == 0 {
		return types.Publication{}, false
	}

	title := rec.Title
	if title == "" {
		title = "Unknown Title"
	}

	return types.Publication{
		Title:       html.EscapeString(title),
		DOIURL:      DOI(rec),
		AuthorsHTML: AuthorString(rec.Authorships, subjectID),
		Venue:       html.EscapeString(Venue(rec)),
		Type:        Classify(rec),
		Publisher:   Publisher(rec),
		Citations:   rec.CitingPubCount,
		Year:        rec.PublishedYear,
	}, true
}

// NormalizeAll normalizes every record with a published year, preserving
// fetch order.
func NormalizeAll(recs []mtmt.Record, subjectID int64) []types.Publication {
	var out []types.Publication
	for _, rec := range recs {
		if p, ok := Normalize(rec, subjectID); ok {
			out = append(out, p)
		}
	}
	return out
}

// GroupByYear buckets publications by year, years descending. Within a
// year the input order is preserved; there is no secondary sort key.
func GroupByYear(publications []types.Publication) []types.YearGroup {
	byYear := make(map[int][]types.Publication)
	var years []int
	for _, p := range publications {
		if _, seen := byYear[p.Year]; !seen {
			years = append(years, p.Year)
		}
		byYear[p.Year] = append(byYear[p.Year], p)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]types.YearGroup, 0, len(years))
	for _, y := range years {
		groups = append(groups, types.YearGroup{Year: y, Publications: byYear[y]})
	}
	return groups
}
