package jira

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-querystring/query"
)

// SearchOptions controls paging and field selection for JQL searches.
type SearchOptions struct {
	// StartAt is the index of the first issue to return.
	StartAt int `url:"startAt"`
	// MaxResults is the maximum number of issues per page (50 by default).
	MaxResults int `url:"maxResults"`
	// Fields restricts which issue fields are included in the results.
	Fields []string `url:"fields,comma,omitempty"`
	// Expand requests extra information inside each resource.
	Expand string `url:"expand,omitempty"`
}

// SearchResult is one page of a JQL search.
type SearchResult struct{ *Resource }

// StartAt returns the index of the first issue in this page.
func (s SearchResult) StartAt() int { return int(s.Get("startAt").Int()) }

// MaxResults returns the page size the server applied.
func (s SearchResult) MaxResults() int { return int(s.Get("maxResults").Int()) }

// Total returns the total number of matching issues.
func (s SearchResult) Total() int { return int(s.Get("total").Int()) }

// Issues returns the issues of this page in server order.
func (s SearchResult) Issues() []Issue { return issues(s.Get("issues")) }

// defaultMaxResults matches the JIRA server default page size.
const defaultMaxResults = 50

// Search returns one page of issues matching a JQL search string.
func (c *Client) Search(ctx context.Context, jql string, opts *SearchOptions) (SearchResult, error) {
	if strings.TrimSpace(jql) == "" {
		return SearchResult{}, fmt.Errorf("missing JQL query")
	}

	o := SearchOptions{MaxResults: defaultMaxResults}
	if opts != nil {
		o = *opts
		if o.MaxResults <= 0 {
			o.MaxResults = defaultMaxResults
		}
	}

	params, err := query.Values(o)
	if err != nil {
		return SearchResult{}, fmt.Errorf("encode search options: %w", err)
	}
	params.Set("jql", jql)

	res, err := c.get(ctx, "search", params)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{res}, nil
}

// SearchAll follows the startAt/maxResults/total counters and returns all
// issues matching a JQL search string, page by page, in server order.
func (c *Client) SearchAll(ctx context.Context, jql string, opts *SearchOptions) ([]Issue, error) {
	o := SearchOptions{MaxResults: defaultMaxResults}
	if opts != nil {
		o = *opts
		if o.MaxResults <= 0 {
			o.MaxResults = defaultMaxResults
		}
	}

	var all []Issue
	for {
		page, err := c.Search(ctx, jql, &o)
		if err != nil {
			return nil, err
		}
		got := page.Issues()
		if len(got) == 0 {
			return all, nil // empty page, stop even if total disagrees
		}
		all = append(all, got...)

		next, ok := nextPageStart(page, len(got))
		if !ok {
			return all, nil
		}
		o.StartAt = next
	}
}

// nextPageStart computes the start of the next search window and whether to
// continue, tolerating missing or bad counters.
func nextPageStart(page SearchResult, pageLen int) (next int, ok bool) {
	start := page.StartAt()
	limit := page.MaxResults()
	total := page.Total()

	if limit <= 0 {
		limit = pageLen // ensure progress even with bad counters
	}

	next = start + limit
	if total > 0 && next >= total {
		return 0, false
	}
	return next, true
}
