package jira

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// IssueOptions narrows or expands what an issue fetch returns.
type IssueOptions struct {
	// Fields is a comma-separated list of issue fields to include.
	Fields string
	// Expand requests extra information inside the resource.
	Expand string
}

// Issue fetches an issue by ID or key.
func (c *Client) Issue(ctx context.Context, key string, opts *IssueOptions) (Issue, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Fields != "" {
			params.Set("fields", opts.Fields)
		}
		if opts.Expand != "" {
			params.Set("expand", opts.Expand)
		}
	}
	res, err := c.get(ctx, "issue/"+url.PathEscape(key), params)
	if err != nil {
		return Issue{}, err
	}
	return Issue{res}, nil
}

// CreateIssue creates a new issue from a field map and returns the created
// issue. The server responds with id/key/self only; refetch with Issue for
// the full resource.
func (c *Client) CreateIssue(ctx context.Context, fields map[string]any) (Issue, error) {
	res, err := c.post(ctx, "issue", nil, map[string]any{"fields": fields})
	if err != nil {
		return Issue{}, err
	}
	return Issue{res}, nil
}

// UpdateIssue updates fields on an existing issue.
func (c *Client) UpdateIssue(ctx context.Context, key string, fields map[string]any) error {
	return c.put(ctx, "issue/"+url.PathEscape(key), nil, map[string]any{"fields": fields})
}

// DeleteIssue deletes an issue. If the issue has subtasks, deleteSubtasks
// must be true for the call to succeed.
func (c *Client) DeleteIssue(ctx context.Context, key string, deleteSubtasks bool) error {
	params := url.Values{"deleteSubtasks": {strconv.FormatBool(deleteSubtasks)}}
	return c.delete(ctx, "issue/"+url.PathEscape(key), params)
}

// AssignIssue assigns an issue to a user.
func (c *Client) AssignIssue(ctx context.Context, key, assignee string) error {
	return c.put(ctx, "issue/"+url.PathEscape(key)+"/assignee", nil, map[string]any{"name": assignee})
}

// Comments returns all comments on an issue.
func (c *Client) Comments(ctx context.Context, key string) ([]Comment, error) {
	res, err := c.get(ctx, "issue/"+url.PathEscape(key)+"/comment", nil)
	if err != nil {
		return nil, err
	}
	elems := res.Get("comments").Slice()
	out := make([]Comment, len(elems))
	for i, e := range elems {
		out[i] = Comment{e}
	}
	return out, nil
}

// Comment fetches a single comment on an issue.
func (c *Client) Comment(ctx context.Context, key, id string) (Comment, error) {
	res, err := c.get(ctx, "issue/"+url.PathEscape(key)+"/comment/"+url.PathEscape(id), nil)
	if err != nil {
		return Comment{}, err
	}
	return Comment{res}, nil
}

// AddComment adds a comment from the authenticated user to an issue.
func (c *Client) AddComment(ctx context.Context, key, body string) (Comment, error) {
	res, err := c.post(ctx, "issue/"+url.PathEscape(key)+"/comment", nil, map[string]any{"body": body})
	if err != nil {
		return Comment{}, err
	}
	return Comment{res}, nil
}

// Worklogs returns all worklog entries on an issue.
func (c *Client) Worklogs(ctx context.Context, key string) ([]Worklog, error) {
	res, err := c.get(ctx, "issue/"+url.PathEscape(key)+"/worklog", nil)
	if err != nil {
		return nil, err
	}
	elems := res.Get("worklogs").Slice()
	out := make([]Worklog, len(elems))
	for i, e := range elems {
		out[i] = Worklog{e}
	}
	return out, nil
}

// Worklog fetches a single worklog entry on an issue.
func (c *Client) Worklog(ctx context.Context, key, id string) (Worklog, error) {
	res, err := c.get(ctx, "issue/"+url.PathEscape(key)+"/worklog/"+url.PathEscape(id), nil)
	if err != nil {
		return Worklog{}, err
	}
	return Worklog{res}, nil
}

// AddWorklog creates a worklog entry on an issue with the given time spent,
// e.g. "2d".
func (c *Client) AddWorklog(ctx context.Context, key, timeSpent string) (Worklog, error) {
	res, err := c.post(ctx, "issue/"+url.PathEscape(key)+"/worklog", nil, map[string]any{"timeSpent": timeSpent})
	if err != nil {
		return Worklog{}, err
	}
	return Worklog{res}, nil
}

// Votes returns the vote information of an issue.
func (c *Client) Votes(ctx context.Context, key string) (*Resource, error) {
	return c.get(ctx, "issue/"+url.PathEscape(key)+"/votes", nil)
}

// AddVote registers a vote for the authenticated user on an issue.
func (c *Client) AddVote(ctx context.Context, key string) error {
	_, err := c.post(ctx, "issue/"+url.PathEscape(key)+"/votes", nil, nil)
	return err
}

// RemoveVote removes the authenticated user's vote from an issue.
func (c *Client) RemoveVote(ctx context.Context, key string) error {
	return c.delete(ctx, "issue/"+url.PathEscape(key)+"/votes", nil)
}

// Watchers returns the watcher information of an issue.
func (c *Client) Watchers(ctx context.Context, key string) ([]User, error) {
	res, err := c.get(ctx, "issue/"+url.PathEscape(key)+"/watchers", nil)
	if err != nil {
		return nil, err
	}
	return users(res.Get("watchers")), nil
}

// AddWatcher adds a user to an issue's watchers list.
func (c *Client) AddWatcher(ctx context.Context, key, username string) error {
	_, err := c.post(ctx, "issue/"+url.PathEscape(key)+"/watchers", nil, username)
	return err
}

// RemoveWatcher removes a user from an issue's watchers list.
func (c *Client) RemoveWatcher(ctx context.Context, key, username string) error {
	params := url.Values{"username": {username}}
	return c.delete(ctx, "issue/"+url.PathEscape(key)+"/watchers", params)
}

// Transitions returns the transitions available on an issue to the
// authenticated user.
func (c *Client) Transitions(ctx context.Context, key string) ([]*Resource, error) {
	res, err := c.get(ctx, "issue/"+url.PathEscape(key)+"/transitions", nil)
	if err != nil {
		return nil, err
	}
	return res.Get("transitions").Slice(), nil
}

// TransitionIssue performs a transition on an issue, optionally setting
// fields as part of the transition.
func (c *Client) TransitionIssue(ctx context.Context, key, transitionID string, fields map[string]any) error {
	payload := map[string]any{
		"transition": map[string]any{"id": transitionID},
	}
	if len(fields) > 0 {
		payload["fields"] = fields
	}
	_, err := c.post(ctx, "issue/"+url.PathEscape(key)+"/transitions", nil, payload)
	return err
}

// CreateIssueLink creates a link of the named type between two issues.
func (c *Client) CreateIssueLink(ctx context.Context, linkType, inwardKey, outwardKey string) error {
	payload := map[string]any{
		"type":         map[string]any{"name": linkType},
		"inwardIssue":  map[string]any{"key": inwardKey},
		"outwardIssue": map[string]any{"key": outwardKey},
	}
	_, err := c.post(ctx, "issueLink", nil, payload)
	return err
}

// IssueLink fetches an issue link by ID.
func (c *Client) IssueLink(ctx context.Context, id string) (*Resource, error) {
	return c.get(ctx, "issueLink/"+url.PathEscape(id), nil)
}

// IssueLinkTypes returns all issue link types.
func (c *Client) IssueLinkTypes(ctx context.Context) ([]*Resource, error) {
	res, err := c.get(ctx, "issueLinkType", nil)
	if err != nil {
		return nil, err
	}
	return res.Get("issueLinkTypes").Slice(), nil
}

// EditMeta returns the edit metadata for an issue.
func (c *Client) EditMeta(ctx context.Context, key string) (*Resource, error) {
	return c.get(ctx, "issue/"+url.PathEscape(key)+"/editmeta", nil)
}

// CreateMeta returns the metadata required to create issues, optionally
// filtered by comma-separated project keys.
func (c *Client) CreateMeta(ctx context.Context, projectKeys string) (*Resource, error) {
	params := url.Values{}
	if strings.TrimSpace(projectKeys) != "" {
		params.Set("projectKeys", projectKeys)
	}
	return c.get(ctx, "issue/createmeta", params)
}
