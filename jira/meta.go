package jira

import (
	"context"
	"net/url"
	"strconv"
)

// ServerInfo returns information about the JIRA instance.
func (c *Client) ServerInfo(ctx context.Context) (*Resource, error) {
	return c.get(ctx, "serverInfo", nil)
}

// Fields returns all issue fields, including custom fields.
func (c *Client) Fields(ctx context.Context) ([]*Resource, error) {
	res, err := c.get(ctx, "field", nil)
	if err != nil {
		return nil, err
	}
	return res.Slice(), nil
}

// Priorities returns all priorities that can be set on an issue.
func (c *Client) Priorities(ctx context.Context) ([]*Resource, error) {
	res, err := c.get(ctx, "priority", nil)
	if err != nil {
		return nil, err
	}
	return res.Slice(), nil
}

// Priority fetches a priority by ID.
func (c *Client) Priority(ctx context.Context, id string) (*Resource, error) {
	return c.get(ctx, "priority/"+url.PathEscape(id), nil)
}

// Resolutions returns all issue resolutions.
func (c *Client) Resolutions(ctx context.Context) ([]*Resource, error) {
	res, err := c.get(ctx, "resolution", nil)
	if err != nil {
		return nil, err
	}
	return res.Slice(), nil
}

// Statuses returns all issue statuses.
func (c *Client) Statuses(ctx context.Context) ([]*Resource, error) {
	res, err := c.get(ctx, "status", nil)
	if err != nil {
		return nil, err
	}
	return res.Slice(), nil
}

// IssueTypes returns all issue types.
func (c *Client) IssueTypes(ctx context.Context) ([]*Resource, error) {
	res, err := c.get(ctx, "issuetype", nil)
	if err != nil {
		return nil, err
	}
	return res.Slice(), nil
}

// Dashboards returns dashboards, optionally filtered by "favourite" or "my".
func (c *Client) Dashboards(ctx context.Context, filter string, startAt, maxResults int) ([]*Resource, error) {
	if maxResults <= 0 {
		maxResults = 20
	}
	params := url.Values{
		"startAt":    {strconv.Itoa(startAt)},
		"maxResults": {strconv.Itoa(maxResults)},
	}
	if filter != "" {
		params.Set("filter", filter)
	}
	res, err := c.get(ctx, "dashboard", params)
	if err != nil {
		return nil, err
	}
	return res.Get("dashboards").Slice(), nil
}

// Dashboard fetches a dashboard by ID.
func (c *Client) Dashboard(ctx context.Context, id string) (*Resource, error) {
	return c.get(ctx, "dashboard/"+url.PathEscape(id), nil)
}

// Filter fetches an issue navigator filter by ID.
func (c *Client) Filter(ctx context.Context, id string) (*Resource, error) {
	return c.get(ctx, "filter/"+url.PathEscape(id), nil)
}

// FavouriteFilters returns the favourite filters of the authenticated user.
func (c *Client) FavouriteFilters(ctx context.Context) ([]*Resource, error) {
	res, err := c.get(ctx, "filter/favourite", nil)
	if err != nil {
		return nil, err
	}
	return res.Slice(), nil
}
