package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_UnmarshalJSON_KnownFields(t *testing.T) {
	var c Content
	err := json.Unmarshal([]byte(`{
		"text": "getting started with the api",
		"headings": [{"text": "Getting Started", "level": 2}]
	}`), &c)
	require.NoError(t, err)

	assert.Equal(t, "getting started with the api", c.Text)
	require.Len(t, c.Headings, 1)
	assert.Equal(t, "Getting Started", c.Headings[0].Text)
	assert.Equal(t, float64(2), c.Headings[0].Attrs["level"])
	assert.Nil(t, c.Extra)
}

func TestContent_UnmarshalJSON_PreservesExtensionFields(t *testing.T) {
	var c Content
	err := json.Unmarshal([]byte(`{
		"text": "body",
		"code_blocks": ["fmt.Println"],
		"difficulty": "beginner"
	}`), &c)
	require.NoError(t, err)

	assert.Equal(t, "body", c.Text)
	assert.Equal(t, "beginner", c.Extra["difficulty"])
	assert.Equal(t, []any{"fmt.Println"}, c.Extra["code_blocks"])
}

func TestContent_UnmarshalJSON_MalformedFieldsDegrade(t *testing.T) {
	var c Content
	err := json.Unmarshal([]byte(`{"text": 42, "headings": "nope"}`), &c)
	require.NoError(t, err)

	// Non-string text and non-list headings are kept as extension fields
	// rather than failing the decode.
	assert.Empty(t, c.Text)
	assert.Nil(t, c.Headings)
	assert.Equal(t, float64(42), c.Extra["text"])
	assert.Equal(t, "nope", c.Extra["headings"])
}

func TestContent_UnmarshalJSON_NonObjectDegrades(t *testing.T) {
	var c Content
	err := json.Unmarshal([]byte(`"just a string"`), &c)
	require.NoError(t, err)
	assert.Equal(t, Content{}, c)
}

func TestContent_JSONRoundTrip(t *testing.T) {
	original := []byte(`{"text":"body","headings":[{"text":"Install","anchor":"#install"}],"source":"scraper-v2"}`)

	var c Content
	require.NoError(t, json.Unmarshal(original, &c))
	encoded, err := json.Marshal(c)
	require.NoError(t, err)

	var got, want map[string]any
	require.NoError(t, json.Unmarshal(encoded, &got))
	require.NoError(t, json.Unmarshal(original, &want))
	assert.Equal(t, want, got)
}

func TestContent_Clone_DeepCopies(t *testing.T) {
	c := Content{
		Text:     "body",
		Headings: []Heading{{Text: "Install", Attrs: map[string]any{"level": 1}}},
		Extra:    map[string]any{"tags": []any{"go", "docs"}, "meta": map[string]any{"lang": "en"}},
	}

	cp := c.Clone()
	cp.Headings[0].Text = "Removed"
	cp.Headings[0].Attrs["level"] = 6
	cp.Extra["tags"].([]any)[0] = "rust"
	cp.Extra["meta"].(map[string]any)["lang"] = "de"

	assert.Equal(t, "Install", c.Headings[0].Text)
	assert.Equal(t, 1, c.Headings[0].Attrs["level"])
	assert.Equal(t, "go", c.Extra["tags"].([]any)[0])
	assert.Equal(t, "en", c.Extra["meta"].(map[string]any)["lang"])
}

func TestContent_Clone_Empty(t *testing.T) {
	cp := Content{}.Clone()
	assert.Empty(t, cp.Text)
	assert.Nil(t, cp.Headings)
	assert.Nil(t, cp.Extra)
}
