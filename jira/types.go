package jira

// The typed views below wrap a Resource and name the fields the
// corresponding JIRA endpoint is expected to return. They only add
// convenience; the full payload stays reachable through the embedded
// Resource.

// Issue is a JIRA issue.
type Issue struct{ *Resource }

// Key returns the issue key, e.g. "JRA-9".
func (i Issue) Key() string { return i.Get("key").Str() }

// ID returns the internal issue ID.
func (i Issue) ID() string { return i.Get("id").Str() }

// Self returns the issue's URL on the server.
func (i Issue) Self() string { return i.Get("self").Str() }

// Fields returns the issue's field container.
func (i Issue) Fields() *Resource { return i.Get("fields") }

// Summary returns the issue summary.
func (i Issue) Summary() string { return i.Path("fields.summary").Str() }

// Status returns the issue status name.
func (i Issue) Status() string { return i.Path("fields.status.name").Str() }

// Assignee returns the issue assignee. Absent if unassigned.
func (i Issue) Assignee() User { return User{i.Path("fields.assignee")} }

// Reporter returns the issue reporter.
func (i Issue) Reporter() User { return User{i.Path("fields.reporter")} }

// Project is a JIRA project.
type Project struct{ *Resource }

// Key returns the project key, e.g. "JRA".
func (p Project) Key() string { return p.Get("key").Str() }

// ID returns the internal project ID.
func (p Project) ID() string { return p.Get("id").Str() }

// Name returns the project name.
func (p Project) Name() string { return p.Get("name").Str() }

// User is a JIRA user, e.g. an assignee or reporter.
type User struct{ *Resource }

// Name returns the username.
func (u User) Name() string { return u.Get("name").Str() }

// DisplayName returns the user's display name.
func (u User) DisplayName() string { return u.Get("displayName").Str() }

// EmailAddress returns the user's email address.
func (u User) EmailAddress() string { return u.Get("emailAddress").Str() }

// Comment is an issue comment.
type Comment struct{ *Resource }

// ID returns the comment ID.
func (c Comment) ID() string { return c.Get("id").Str() }

// Body returns the comment text.
func (c Comment) Body() string { return c.Get("body").Str() }

// Author returns the comment author.
func (c Comment) Author() User { return User{c.Get("author")} }

// Worklog is a worklog entry on an issue.
type Worklog struct{ *Resource }

// ID returns the worklog ID.
func (w Worklog) ID() string { return w.Get("id").Str() }

// TimeSpent returns the logged time, e.g. "2d".
func (w Worklog) TimeSpent() string { return w.Get("timeSpent").Str() }

// Author returns the worklog author.
func (w Worklog) Author() User { return User{w.Get("author")} }

// Version is a project version.
type Version struct{ *Resource }

// ID returns the version ID.
func (v Version) ID() string { return v.Get("id").Str() }

// Name returns the version name.
func (v Version) Name() string { return v.Get("name").Str() }

// Component is a project component.
type Component struct{ *Resource }

// ID returns the component ID.
func (c Component) ID() string { return c.Get("id").Str() }

// Name returns the component name.
func (c Component) Name() string { return c.Get("name").Str() }

// issues converts a Resource array into Issue views.
func issues(r *Resource) []Issue {
	elems := r.Slice()
	out := make([]Issue, len(elems))
	for i, e := range elems {
		out[i] = Issue{e}
	}
	return out
}

// projects converts a Resource array into Project views.
func projects(r *Resource) []Project {
	elems := r.Slice()
	out := make([]Project, len(elems))
	for i, e := range elems {
		out[i] = Project{e}
	}
	return out
}

// users converts a Resource array into User views.
func users(r *Resource) []User {
	elems := r.Slice()
	out := make([]User, len(elems))
	for i, e := range elems {
		out[i] = User{e}
	}
	return out
}
