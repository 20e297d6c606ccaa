package pubs

import (
	"strings"

	"github.com/mbalogh/pubsite/internal/mtmt"
	"github.com/mbalogh/pubsite/pkg/types"
)

// classifyRule decides the publication type for records it recognizes.
// Rules are tried in order and the first match wins, which keeps the
// precedence auditable: journal detection always beats the book fallback.
type classifyRule struct {
	name  string
	apply func(rec mtmt.Record) (types.PubType, bool)
}

var classifyRules = []classifyRule{
	{
		name: "journal-label-or-object",
		apply: func(rec mtmt.Record) (types.PubType, bool) {
			if strings.Contains(mainTypeLabel(rec), "journal") || rec.Journal != nil {
				return types.TypeJournal, true
			}
			return "", false
		},
	},
	{
		name: "conference-subtype-or-flag",
		apply: func(rec mtmt.Record) (types.PubType, bool) {
			if strings.Contains(subTypeName(rec), "conference") || rec.ConferencePublication {
				return types.TypeConference, true
			}
			return "", false
		},
	},
	{
		name: "book-chapter",
		apply: func(rec mtmt.Record) (types.PubType, bool) {
			if !strings.Contains(mainTypeLabel(rec), "book") {
				return "", false
			}
			if strings.Contains(subTypeName(rec), "conference") {
				return types.TypeConference, true
			}
			return types.TypeJournal, true
		},
	},
}

// Classify maps a record to its display type. Records no rule recognizes
// default to conference.
func Classify(rec mtmt.Record) types.PubType {
	for _, rule := range classifyRules {
		if t, ok := rule.apply(rec); ok {
			return t
		}
	}
	return types.TypeConference
}

func mainTypeLabel(rec mtmt.Record) string {
	if rec.Type == nil {
		return ""
	}
	return strings.ToLower(rec.Type.Label)
}

func subTypeName(rec mtmt.Record) string {
	if rec.SubType == nil {
		return ""
	}
	return strings.ToLower(rec.SubType.NameEng)
}
