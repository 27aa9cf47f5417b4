// Package jira is a thin client for the JIRA REST API.
//
// A Client is constructed from Options and exposes one method per supported
// JIRA operation. Every call is a stateless request/response round trip: the
// client sends an authenticated HTTP request, parses the JSON response into a
// Resource and returns it. Resources keep the full payload, so fields the
// typed views do not know about stay reachable through Get and Path.
//
//	c, err := jira.New(jira.Options{
//		Server:   "https://jira.example.com",
//		Email:    "me@example.com",
//		APIToken: "env:JIRA_TOKEN",
//	})
//	if err != nil {
//		...
//	}
//	issue, err := c.Issue(ctx, "JRA-9", nil)
//	fmt.Println(issue.Path("fields.project.key").Str())
//
// Failures surface to the caller verbatim as *HTTPError (non-2xx response),
// *DecodeError (malformed JSON) or ConfigError (bad Options). There are no
// retries and no local recovery.
package jira
