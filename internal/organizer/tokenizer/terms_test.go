package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setOf(terms ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}
	return set
}

func TestExtractTerms_RemovesStopWords(t *testing.T) {
	terms := ExtractTerms("Intro to Foo", "foo is great")
	assert.Equal(t, setOf("intro", "foo", "great"), terms)
}

func TestExtractTerms_UnionsAllFields(t *testing.T) {
	terms := ExtractTerms("Guide", "installing the toolchain", "Getting Started", "Troubleshooting")
	assert.Equal(t,
		setOf("guide", "installing", "toolchain", "getting", "started", "troubleshooting"),
		terms,
	)
}

func TestExtractTerms_Deduplicates(t *testing.T) {
	terms := ExtractTerms("foo foo", "foo and more foo")
	assert.Equal(t, setOf("foo", "more"), terms)
}

func TestExtractTerms_EmptyFields(t *testing.T) {
	assert.Empty(t, ExtractTerms("", ""))
	assert.Empty(t, ExtractTerms())
}

func TestExtractTerms_AllStopWords(t *testing.T) {
	assert.Empty(t, ExtractTerms("the and of", "to be or from"))
}
