package jira

import (
	"context"
	"net/url"
)

// Projects returns all projects visible to the authenticated user.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	res, err := c.get(ctx, "project", nil)
	if err != nil {
		return nil, err
	}
	return projects(res), nil
}

// Project fetches a project by ID or key.
func (c *Client) Project(ctx context.Context, key string) (Project, error) {
	res, err := c.get(ctx, "project/"+url.PathEscape(key), nil)
	if err != nil {
		return Project{}, err
	}
	return Project{res}, nil
}

// ProjectComponents returns the components of a project.
func (c *Client) ProjectComponents(ctx context.Context, key string) ([]Component, error) {
	res, err := c.get(ctx, "project/"+url.PathEscape(key)+"/components", nil)
	if err != nil {
		return nil, err
	}
	elems := res.Slice()
	out := make([]Component, len(elems))
	for i, e := range elems {
		out[i] = Component{e}
	}
	return out, nil
}

// ProjectVersions returns the versions of a project.
func (c *Client) ProjectVersions(ctx context.Context, key string) ([]Version, error) {
	res, err := c.get(ctx, "project/"+url.PathEscape(key)+"/versions", nil)
	if err != nil {
		return nil, err
	}
	elems := res.Slice()
	out := make([]Version, len(elems))
	for i, e := range elems {
		out[i] = Version{e}
	}
	return out, nil
}

// ProjectRoles returns a map of role names to resource locations for a
// project.
func (c *Client) ProjectRoles(ctx context.Context, key string) (*Resource, error) {
	return c.get(ctx, "project/"+url.PathEscape(key)+"/role", nil)
}

// ComponentOptions holds the optional fields for CreateComponent.
type ComponentOptions struct {
	Description  string
	LeadUserName string
	AssigneeType string
}

// CreateComponent creates an issue component inside a project.
func (c *Client) CreateComponent(ctx context.Context, name, projectKey string, opts *ComponentOptions) (Component, error) {
	payload := map[string]any{
		"name":    name,
		"project": projectKey,
	}
	if opts != nil {
		if opts.Description != "" {
			payload["description"] = opts.Description
		}
		if opts.LeadUserName != "" {
			payload["leadUserName"] = opts.LeadUserName
		}
		if opts.AssigneeType != "" {
			payload["assigneeType"] = opts.AssigneeType
		}
	}
	res, err := c.post(ctx, "component", nil, payload)
	if err != nil {
		return Component{}, err
	}
	return Component{res}, nil
}

// Component fetches a component by ID.
func (c *Client) Component(ctx context.Context, id string) (Component, error) {
	res, err := c.get(ctx, "component/"+url.PathEscape(id), nil)
	if err != nil {
		return Component{}, err
	}
	return Component{res}, nil
}

// VersionOptions holds the optional fields for CreateVersion.
type VersionOptions struct {
	Description string
	ReleaseDate string
}

// CreateVersion creates a version in a project.
func (c *Client) CreateVersion(ctx context.Context, name, projectKey string, opts *VersionOptions) (Version, error) {
	payload := map[string]any{
		"name":    name,
		"project": projectKey,
	}
	if opts != nil {
		if opts.Description != "" {
			payload["description"] = opts.Description
		}
		if opts.ReleaseDate != "" {
			payload["releaseDate"] = opts.ReleaseDate
		}
	}
	res, err := c.post(ctx, "version", nil, payload)
	if err != nil {
		return Version{}, err
	}
	return Version{res}, nil
}

// Version fetches a version by ID.
func (c *Client) Version(ctx context.Context, id string) (Version, error) {
	res, err := c.get(ctx, "version/"+url.PathEscape(id), nil)
	if err != nil {
		return Version{}, err
	}
	return Version{res}, nil
}

// MoveVersion moves a version within a project's ordered version list to an
// absolute position: one of "First", "Last", "Earlier" or "Later".
func (c *Client) MoveVersion(ctx context.Context, id, position string) (Version, error) {
	res, err := c.post(ctx, "version/"+url.PathEscape(id)+"/move", nil, map[string]any{"position": position})
	if err != nil {
		return Version{}, err
	}
	return Version{res}, nil
}
