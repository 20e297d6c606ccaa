// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mtmt

// MTMT API JSON structures. Every field is optional on the wire; nested
// objects are pointers so that an absent substructure is distinguishable
// from a present-but-empty one.

// Record is one publication as returned by the MTMT publication endpoint.
type Record struct {
	MTID                  int64        `json:"mtid"`
	Title                 string       `json:"title"`
	PublishedYear         int          `json:"publishedYear"`
	CitingPubCount        int          `json:"citingPubCount"`
	Volume                string       `json:"volume"`
	Issue                 string       `json:"issue"`
	FirstPage             string       `json:"firstPage"`
	LastPage              string       `json:"lastPage"`
	Identifiers           []Identifier `json:"identifiers"`
	Authorships           []Authorship `json:"authorships"`
	Journal               *Journal     `json:"journal"`
	Book                  *Book        `json:"book"`
	Type                  *TypeRef     `json:"type"`
	SubType               *SubType     `json:"subType"`
	ConferencePublication bool         `json:"conferencePublication"`
}

// Identifier links a record to an external registry entry (DOI, Scopus, ...).
type Identifier struct {
	Source  *IdentifierSource `json:"source"`
	RealURL string            `json:"realUrl"`
}

// IdentifierSource describes the registry an identifier belongs to.
type IdentifierSource struct {
	Type *TypeRef `json:"type"`
}

// TypeRef is MTMT's generic labeled-type reference.
type TypeRef struct {
	Label string `json:"label"`
}

// SubType carries the English sub-type name used for classification.
type SubType struct {
	NameEng string `json:"nameEng"`
}

// Authorship links a record to one contributing author.
type Authorship struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`

	// ListPosition is the 1-based author order. Absent positions sort
	// after all positioned authors.
	ListPosition *int `json:"listPosition"`

	// AuthorTyped marks counted authors; uncounted contributors
	// (editors, supervisors) are excluded from the author line.
	AuthorTyped bool `json:"authorTyped"`

	Author *AuthorRef `json:"author"`
}

// Position returns the list position, or the last-place sentinel when the
// record carries none.
func (a Authorship) Position() int {
	if a.ListPosition == nil {
		return 999
	}
	return *a.ListPosition
}

// AuthorRef identifies the author entity behind an authorship. MTID is the
// service-wide numeric author identifier; matching on it (never on the
// display name) decides subject-author emphasis.
type AuthorRef struct {
	MTID int64 `json:"mtid"`
}

// Journal describes the journal a record appeared in.
type Journal struct {
	Title string `json:"title"`
	Label string `json:"label"`
}

// Book describes the parent book or proceedings volume of a record.
type Book struct {
	Title       string  `json:"title"`
	PublishedAt []Place `json:"publishedAt"`
}

// Place is a publication location entry.
type Place struct {
	Label  string `json:"label"`
	PartOf *Place `json:"partOf"`
}
