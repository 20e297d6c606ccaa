// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package patch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	start = "<!-- PUBLICATIONS_START -->"
	end   = "<!-- PUBLICATIONS_END -->"
)

func TestReplace(t *testing.T) {
	doc := "<html>\n" + start + "\nold content\n" + end + "\n</html>\n"

	got, err := Replace(doc, start, end, "fragment")
	require.NoError(t, err)
	assert.Equal(t, "<html>\n"+start+"\nfragment\n        "+end+"\n</html>\n", got)
}

func TestReplaceIdempotent(t *testing.T) {
	doc := "a\n" + start + "\nstale\n" + end + "\nb\n"

	once, err := Replace(doc, start, end, "fresh")
	require.NoError(t, err)
	twice, err := Replace(once, start, end, "fresh")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestReplaceMissingMarkers(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no markers at all", "<html>no region</html>"},
		{"start only", "x " + start + " y"},
		{"end only", "x " + end + " y"},
		{"end before start", end + " middle " + start},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Replace(tt.doc, start, end, "fragment")
			assert.ErrorIs(t, err, ErrMarkersNotFound)
		})
	}
}

func TestReplaceOnlyFirstPair(t *testing.T) {
	doc := start + "\none\n" + end + "\nmiddle\n" + start + "\ntwo\n" + end

	got, err := Replace(doc, start, end, "new")
	require.NoError(t, err)
	// Only the first pair is rewritten; the second region is untouched.
	assert.Contains(t, got, start+"\nnew\n        "+end)
	assert.Contains(t, got, start+"\ntwo\n"+end)
}

func TestUpdateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	doc := "<body>\n" + start + "\nstale\n" + end + "\n</body>\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	require.NoError(t, UpdateFile(path, start, end, "fresh"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<body>\n"+start+"\nfresh\n        "+end+"\n</body>\n", string(data))
}

func TestUpdateFileMissingMarkersLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	original := "<body>nothing to see</body>"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	err := UpdateFile(path, start, end, "fresh")
	require.ErrorIs(t, err, ErrMarkersNotFound)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data), "file must be byte-for-byte unchanged")
}

func TestUpdateFileMissingFile(t *testing.T) {
	err := UpdateFile(filepath.Join(t.TempDir(), "absent.html"), start, end, "x")
	assert.Error(t, err)
}
