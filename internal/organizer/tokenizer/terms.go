package tokenizer

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"with": {}, "by": {}, "about": {}, "against": {}, "between": {},
	"into": {}, "through": {}, "during": {}, "before": {}, "after": {},
	"above": {}, "below": {}, "from": {}, "up": {}, "down": {}, "of": {},
}

// ExtractTerms tokenizes every field, unions the tokens, and drops
// stop-words. The result is the deduplicated term set used for both the
// search index and similarity scoring.
func ExtractTerms(fields ...string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, field := range fields {
		for _, token := range Tokenize(field) {
			if _, stop := stopWords[token]; stop {
				continue
			}
			terms[token] = struct{}{}
		}
	}
	return terms
}
