package pubs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbalogh/pubsite/internal/mtmt"
)

func intp(v int) *int { return &v }

func doiIdent(url string) mtmt.Identifier {
	return mtmt.Identifier{
		Source:  &mtmt.IdentifierSource{Type: &mtmt.TypeRef{Label: "DOI"}},
		RealURL: url,
	}
}

func TestDOI(t *testing.T) {
	tests := []struct {
		name string
		rec  mtmt.Record
		want string
	}{
		{
			name: "returns first DOI identifier verbatim",
			rec: mtmt.Record{Identifiers: []mtmt.Identifier{
				{Source: &mtmt.IdentifierSource{Type: &mtmt.TypeRef{Label: "Scopus"}}, RealURL: "https://scopus.example/1"},
				doiIdent("https://doi.org/10.1109/ACCESS.2021.1234"),
				doiIdent("https://doi.org/10.9999/second"),
			}},
			want: "https://doi.org/10.1109/ACCESS.2021.1234",
		},
		{
			name: "no identifiers",
			rec:  mtmt.Record{},
			want: "",
		},
		{
			name: "no DOI-typed identifier",
			rec: mtmt.Record{Identifiers: []mtmt.Identifier{
				{Source: &mtmt.IdentifierSource{Type: &mtmt.TypeRef{Label: "WoS"}}, RealURL: "https://wos.example/1"},
			}},
			want: "",
		},
		{
			name: "identifier without source is skipped",
			rec: mtmt.Record{Identifiers: []mtmt.Identifier{
				{RealURL: "https://example.com/untyped"},
				doiIdent("https://doi.org/10.1007/xyz"),
			}},
			want: "https://doi.org/10.1007/xyz",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DOI(tt.rec))
		})
	}
}

func TestAuthorString(t *testing.T) {
	const subject = int64(10081350)

	tests := []struct {
		name        string
		authorships []mtmt.Authorship
		want        string
	}{
		{
			name: "orders by list position and emphasizes the subject",
			authorships: []mtmt.Authorship{
				{GivenName: "Marcell", FamilyName: "Balogh", ListPosition: intp(2), AuthorTyped: true, Author: &mtmt.AuthorRef{MTID: subject}},
				{GivenName: "Anna", FamilyName: "Kiss", ListPosition: intp(1), AuthorTyped: true, Author: &mtmt.AuthorRef{MTID: 42}},
			},
			want: "A. Kiss, <strong>M. Balogh</strong>",
		},
		{
			name: "uncounted authorships are excluded",
			authorships: []mtmt.Authorship{
				{GivenName: "Anna", FamilyName: "Kiss", ListPosition: intp(1), AuthorTyped: true},
				{GivenName: "Peter", FamilyName: "Toth", ListPosition: intp(2), AuthorTyped: false},
			},
			want: "A. Kiss",
		},
		{
			name: "missing position sorts last",
			authorships: []mtmt.Authorship{
				{GivenName: "Anna", FamilyName: "Kiss", AuthorTyped: true},
				{GivenName: "Peter", FamilyName: "Toth", ListPosition: intp(3), AuthorTyped: true},
			},
			want: "P. Toth, A. Kiss",
		},
		{
			name: "missing given name yields family name only",
			authorships: []mtmt.Authorship{
				{FamilyName: "Kiss", ListPosition: intp(1), AuthorTyped: true},
			},
			want: "Kiss",
		},
		{
			name: "namesake with a different MTID is not emphasized",
			authorships: []mtmt.Authorship{
				{GivenName: "Marcell", FamilyName: "Balogh", ListPosition: intp(1), AuthorTyped: true, Author: &mtmt.AuthorRef{MTID: 99999}},
			},
			want: "M. Balogh",
		},
		{
			name: "authorship without author entity is not emphasized",
			authorships: []mtmt.Authorship{
				{GivenName: "Marcell", FamilyName: "Balogh", ListPosition: intp(1), AuthorTyped: true},
			},
			want: "M. Balogh",
		},
		{
			name: "multibyte initial uses the first rune",
			authorships: []mtmt.Authorship{
				{GivenName: "Árpád", FamilyName: "Nagy", ListPosition: intp(1), AuthorTyped: true},
			},
			want: "Á. Nagy",
		},
		{
			name:        "empty list",
			authorships: nil,
			want:        "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthorString(tt.authorships, subject))
		})
	}
}

func TestAuthorStringStableForEqualPositions(t *testing.T) {
	authorships := []mtmt.Authorship{
		{GivenName: "Anna", FamilyName: "Kiss", ListPosition: intp(1), AuthorTyped: true},
		{GivenName: "Bela", FamilyName: "Nagy", ListPosition: intp(1), AuthorTyped: true},
	}
	assert.Equal(t, "A. Kiss, B. Nagy", AuthorString(authorships, 0))
}
