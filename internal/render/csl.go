package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/mbalogh/pubsite/internal/mtmt"
	"github.com/mbalogh/pubsite/internal/pubs"
	"github.com/mbalogh/pubsite/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes the records as a CSL-YAML list to w. Records without a
// published year are skipped, matching the HTML pipeline.
func FormatCSL(recs []mtmt.Record, w io.Writer) error {
	var items []CSLItem
	for _, rec := range recs {
		if rec.PublishedYear == 0 {
			continue
		}
		items = append(items, toCSLItem(rec))
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts one raw record to a CSLItem.
func toCSLItem(rec mtmt.Record) CSLItem {
	item := CSLItem{
		Type:   "paper-conference",
		Title:  rec.Title,
		Volume: rec.Volume,
		Issue:  rec.Issue,
	}
	if pubs.Classify(rec) == types.TypeJournal {
		item.Type = "article-journal"
	}

	// Prefer the bare DOI as the item ID; fall back to the MTMT record ID.
	doi := strings.TrimPrefix(pubs.DOI(rec), "https://doi.org/")
	if strings.HasPrefix(doi, "10.") {
		item.ID = doi
		item.DOI = doi
	} else {
		item.ID = fmt.Sprintf("mtmt-%d", rec.MTID)
	}

	if rec.Journal != nil && rec.Journal.Title != "" {
		item.ContainerTitle = pubs.CleanJournalTitle(rec.Journal.Title)
	} else if rec.Book != nil {
		item.ContainerTitle = rec.Book.Title
	}

	if rec.FirstPage != "" && rec.LastPage != "" && rec.FirstPage != rec.LastPage {
		item.Page = rec.FirstPage + "-" + rec.LastPage
	} else if rec.FirstPage != "" {
		item.Page = rec.FirstPage
	}

	item.Author = cslAuthors(rec.Authorships)
	item.Issued = &CSLDate{DateParts: [][]int{{rec.PublishedYear}}}
	return item
}

// cslAuthors converts the counted authorships to CSL names in list order.
func cslAuthors(authorships []mtmt.Authorship) []CSLName {
	var counted []mtmt.Authorship
	for _, a := range authorships {
		if a.AuthorTyped {
			counted = append(counted, a)
		}
	}
	sort.SliceStable(counted, func(i, j int) bool {
		return counted[i].Position() < counted[j].Position()
	})

	names := make([]CSLName, 0, len(counted))
	for _, a := range counted {
		names = append(names, CSLName{Family: a.FamilyName, Given: a.GivenName})
	}
	return names
}
