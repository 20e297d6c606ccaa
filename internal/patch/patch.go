// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package patch regenerates the marker-bounded region of the site document.
package patch

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMarkersNotFound reports that the target document does not contain the
// expected marker pair. The document is left untouched in that case.
var ErrMarkersNotFound = errors.New("publication markers not found")

// closingIndent re-indents the end marker to its position in the document.
const closingIndent = "        "

// Replace substitutes the region between the first start marker and the
// following end marker (markers inclusive, both re-emitted unchanged) with
// the rendered fragment. Exactly one replacement is made per call.
func Replace(doc, markerStart, markerEnd, fragment string) (string, error) {
	start := strings.Index(doc, markerStart)
	if start < 0 {
		return "", fmt.Errorf("%w: %s ... %s", ErrMarkersNotFound, markerStart, markerEnd)
	}

	rest := start + len(markerStart)
	end := strings.Index(doc[rest:], markerEnd)
	if end < 0 {
		return "", fmt.Errorf("%w: %s ... %s", ErrMarkersNotFound, markerStart, markerEnd)
	}
	after := rest + end + len(markerEnd)

	replacement := markerStart + "\n" + fragment + "\n" + closingIndent + markerEnd
	return doc[:start] + replacement + doc[after:], nil
}

// UpdateFile applies Replace to the document at path. The file is written
// only after the replacement succeeds in memory, so a missing marker pair
// never causes a partial write.
func UpdateFile(path, markerStart, markerEnd, fragment string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated, err := Replace(string(data), markerStart, markerEnd, fragment)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
