package search

import (
	"context"
)

// Result is one contextual source returned by the search backend. Fields
// missing from the backend response stay empty strings.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Searcher is the capability the pipeline needs from a search backend: a
// query in, up to num ranked results out, in backend relevance order.
type Searcher interface {
	Search(ctx context.Context, query string, num int) ([]Result, error)
}
