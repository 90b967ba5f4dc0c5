package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesTitleCaseInsensitive(t *testing.T) {
	got := Search("harry")
	require.NotEmpty(t, got)
	for _, e := range got {
		hit := strings.Contains(strings.ToLower(e.Title), "harry") ||
			strings.Contains(strings.ToLower(e.Author), "harry")
		assert.True(t, hit, "entry %q/%q does not match", e.Title, e.Author)
	}
}

func TestSearchMatchesAuthor(t *testing.T) {
	got := Search("Orwell")
	require.Len(t, got, 1)
	assert.Equal(t, "1984", got[0].Title)
}

func TestSearchTrimsAndLowercasesQuery(t *testing.T) {
	assert.Equal(t, Search("tolkien"), Search("  TOLKIEN "))
}

func TestSearchFallbackOnNoMatch(t *testing.T) {
	got := Search("zzz_no_match")
	require.Len(t, got, fallbackSize)
	// Fallback is the fixed leading subset of the catalog.
	assert.Equal(t, "book1", got[0].ID)
	assert.Equal(t, "book4", got[3].ID)
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	before := len(entries)
	_ = Search("a")
	_ = Search("zzz_no_match")
	assert.Equal(t, before, len(entries))
}
