package jira

import (
	"context"
	"net/url"
	"strconv"
)

// User fetches a user by username.
func (c *Client) User(ctx context.Context, username string) (User, error) {
	params := url.Values{"username": {username}}
	res, err := c.get(ctx, "user", params)
	if err != nil {
		return User{}, err
	}
	return User{res}, nil
}

// SearchUsers returns users whose name matches the search string.
func (c *Client) SearchUsers(ctx context.Context, search string, startAt, maxResults int) ([]User, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	params := url.Values{
		"username":   {search},
		"startAt":    {strconv.Itoa(startAt)},
		"maxResults": {strconv.Itoa(maxResults)},
	}
	res, err := c.get(ctx, "user/search", params)
	if err != nil {
		return nil, err
	}
	return users(res), nil
}

// AssignableUsers returns users matching the search string that can be
// assigned issues in the given project.
func (c *Client) AssignableUsers(ctx context.Context, search, projectKey string, startAt, maxResults int) ([]User, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	params := url.Values{
		"username":   {search},
		"project":    {projectKey},
		"startAt":    {strconv.Itoa(startAt)},
		"maxResults": {strconv.Itoa(maxResults)},
	}
	res, err := c.get(ctx, "user/assignable/search", params)
	if err != nil {
		return nil, err
	}
	return users(res), nil
}

// Myself returns the session information of the authenticated user.
func (c *Client) Myself(ctx context.Context) (User, error) {
	res, err := c.get(ctx, "/rest/auth/1/session", nil)
	if err != nil {
		return User{}, err
	}
	return User{res}, nil
}
