package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesVersionOne(t *testing.T) {
	doc := New("doc-1", Payload{
		URL:     "https://docs.example.com/intro",
		Title:   "Intro",
		Content: Content{Text: "hello world"},
	})

	require.Len(t, doc.Versions, 1)
	assert.Equal(t, 1, doc.Versions[0].Number)
	assert.Equal(t, "hello world", doc.Content.Text)
	assert.False(t, doc.Versions[0].Timestamp.IsZero())
}

func TestNew_DefaultsMissingFields(t *testing.T) {
	doc := New("doc-1", Payload{})

	assert.Empty(t, doc.URL)
	assert.Empty(t, doc.Title)
	require.Len(t, doc.Versions, 1)
	assert.Empty(t, doc.Versions[0].Content.Text)
}

func TestAddVersion_NumbersAreSequential(t *testing.T) {
	doc := New("doc-1", Payload{Content: Content{Text: "v1"}})

	assert.Equal(t, 2, doc.AddVersion(Content{Text: "v2"}))
	assert.Equal(t, 3, doc.AddVersion(Content{Text: "v3"}))

	require.Len(t, doc.Versions, 3)
	for i, v := range doc.Versions {
		assert.Equal(t, i+1, v.Number)
	}
}

func TestAddVersion_ContentTracksLatest(t *testing.T) {
	doc := New("doc-1", Payload{Content: Content{Text: "v1"}})
	doc.AddVersion(Content{Text: "v2"})

	assert.Equal(t, "v2", doc.Content.Text)
	v1, ok := doc.Version(1)
	require.True(t, ok)
	assert.Equal(t, "v1", v1.Content.Text)
}

func TestAddVersion_CopiesContent(t *testing.T) {
	content := Content{
		Text:     "original",
		Headings: []Heading{{Text: "Setup"}},
		Extra:    map[string]any{"lang": "en"},
	}
	doc := New("doc-1", Payload{Content: content})

	// Mutating the caller's payload must not leak into the stored version.
	content.Headings[0].Text = "changed"
	content.Extra["lang"] = "fr"

	assert.Equal(t, "Setup", doc.Content.Headings[0].Text)
	assert.Equal(t, "en", doc.Content.Extra["lang"])
}

func TestVersion_OutOfRange(t *testing.T) {
	doc := New("doc-1", Payload{Content: Content{Text: "v1"}})

	_, ok := doc.Version(0)
	assert.False(t, ok)
	_, ok = doc.Version(2)
	assert.False(t, ok)
	_, ok = doc.Version(-3)
	assert.False(t, ok)
}

func TestLatestVersion_MatchesVersionCount(t *testing.T) {
	doc := New("doc-1", Payload{Content: Content{Text: "v1"}})
	doc.AddVersion(Content{Text: "v2"})
	doc.AddVersion(Content{Text: "v3"})

	latest, ok := doc.LatestVersion()
	require.True(t, ok)
	assert.Equal(t, len(doc.Versions), latest.Number)
	assert.Equal(t, "v3", latest.Content.Text)
}

func TestSnapshot_DoesNotAliasDocument(t *testing.T) {
	doc := New("doc-1", Payload{
		URL:     "https://docs.example.com/intro",
		Title:   "Intro",
		Content: Content{Text: "body", Extra: map[string]any{"difficulty": "easy"}},
	})

	snapshot := doc.Snapshot()
	snapshot.Content.Extra["difficulty"] = "hard"

	assert.Equal(t, "easy", doc.Content.Extra["difficulty"])
}
