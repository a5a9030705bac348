package search

import (
	"context"
	"fmt"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleClient issues queries against the Google Custom Search JSON API.
type GoogleClient struct {
	service  *customsearch.Service
	engineID string
}

func NewGoogleClient(ctx context.Context, apiKey string, engineID string) (*GoogleClient, error) {
	service, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search service: %w", err)
	}
	return &GoogleClient{
		service:  service,
		engineID: engineID,
	}, nil
}

func (c *GoogleClient) Search(ctx context.Context, query string, num int) ([]Result, error) {
	resp, err := c.service.Cse.List().
		Cx(c.engineID).
		Q(query).
		Num(int64(num)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	// Zero items is a normal outcome, not an error.
	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}
