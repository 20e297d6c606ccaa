package render

import (
	"encoding/json"
	"io"

	"github.com/mbalogh/pubsite/pkg/types"
)

// FormatJSON writes the normalized publications as indented JSON to w.
func FormatJSON(publications []types.Publication, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(publications)
}
