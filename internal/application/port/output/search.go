package output

import "context"

type SearchResult struct {
	Title   string
	Snippet string
	URL     string
}

type SearchPort interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}
