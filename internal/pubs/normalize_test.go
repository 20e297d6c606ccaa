package pubs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalogh/pubsite/internal/mtmt"
	"github.com/mbalogh/pubsite/pkg/types"
)

func TestNormalize(t *testing.T) {
	rec := mtmt.Record{
		Title:          "Perception & Planning <in> Autonomous Driving",
		PublishedYear:  2023,
		CitingPubCount: 7,
		Journal:        &mtmt.Journal{Title: "Sensors"},
		Volume:         "21",
		Identifiers:    []mtmt.Identifier{doiIdent("https://doi.org/10.1109/X.2023.1")},
		Authorships: []mtmt.Authorship{
			{GivenName: "Marcell", FamilyName: "Balogh", ListPosition: intp(1), AuthorTyped: true, Author: &mtmt.AuthorRef{MTID: 10081350}},
		},
	}

	p, ok := Normalize(rec, 10081350)
	require.True(t, ok)
	assert.Equal(t, "Perception &amp; Planning &lt;in&gt; Autonomous Driving", p.Title)
	assert.Equal(t, "https://doi.org/10.1109/X.2023.1", p.DOIURL)
	assert.Equal(t, "<strong>M. Balogh</strong>", p.AuthorsHTML)
	assert.Equal(t, "Sensors, vol. 21", p.Venue)
	assert.Equal(t, types.TypeJournal, p.Type)
	assert.Equal(t, "IEEE", p.Publisher)
	assert.Equal(t, 7, p.Citations)
	assert.Equal(t, 2023, p.Year)
}

func TestNormalizeDropsZeroYear(t *testing.T) {
	_, ok := Normalize(mtmt.Record{Title: "No Year"}, 0)
	assert.False(t, ok)
}

func TestNormalizeTitleFallback(t *testing.T) {
	p, ok := Normalize(mtmt.Record{PublishedYear: 2020}, 0)
	require.True(t, ok)
	assert.Equal(t, "Unknown Title", p.Title)
}

func TestNormalizeEscapesVenue(t *testing.T) {
	p, ok := Normalize(mtmt.Record{
		PublishedYear: 2020,
		Book:          &mtmt.Book{Title: "Proceedings <X> & Friends"},
	}, 0)
	require.True(t, ok)
	assert.Equal(t, "Proceedings &lt;X&gt; &amp; Friends", p.Venue)
}

func TestNormalizeAll(t *testing.T) {
	recs := []mtmt.Record{
		{Title: "A", PublishedYear: 2021},
		{Title: "No Year"},
		{Title: "B", PublishedYear: 2019},
	}

	out := NormalizeAll(recs, 0)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "B", out[1].Title)
}

func TestGroupByYear(t *testing.T) {
	in := []types.Publication{
		{Title: "first-2021", Year: 2021},
		{Title: "only-2023", Year: 2023},
		{Title: "second-2021", Year: 2021},
		{Title: "only-2022", Year: 2022},
	}

	groups := GroupByYear(in)
	require.Len(t, groups, 3)
	assert.Equal(t, []int{2023, 2022, 2021}, []int{groups[0].Year, groups[1].Year, groups[2].Year})

	// Source order within a year is preserved.
	require.Len(t, groups[2].Publications, 2)
	assert.Equal(t, "first-2021", groups[2].Publications[0].Title)
	assert.Equal(t, "second-2021", groups[2].Publications[1].Title)
}

func TestGroupByYearEmpty(t *testing.T) {
	assert.Empty(t, GroupByYear(nil))
}
