package keywords

import "strings"

// DefaultMaxTerms is the number of terms a search query is truncated to.
const DefaultMaxTerms = 7

const punctuation = `.,!?;:"`

// stopWords are common English function words and pronouns that carry no
// search value. Filtering them keeps the query focused on content words.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "can": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {},
}

// Extract derives a search query from free text. It lower-cases the text,
// splits on whitespace, strips leading/trailing punctuation from each token,
// drops stop-words and tokens of 2 characters or fewer, and joins the first
// maxTerms survivors with single spaces. Returns "" when everything is
// filtered out.
func Extract(text string, maxTerms int) string {
	var terms []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, punctuation)
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		terms = append(terms, word)
		if len(terms) == maxTerms {
			break
		}
	}
	return strings.Join(terms, " ")
}
