package jira

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/containeroo/resolver"
)

// Default option values. The server default matches the instance started by
// the Atlassian Plugin SDK (atlas-run) for local development.
const (
	defaultServer     = "http://localhost:2990/jira"
	defaultRESTPath   = "api"
	defaultAPIVersion = "2"
	defaultTimeout    = 15 * time.Second
)

// Options configures a Client. It is read once by New; changing an Options
// value afterwards has no effect on an existing Client.
type Options struct {
	// Server is the server address and context path, e.g.
	// "https://jira.example.com". Required.
	Server string

	// RESTPath is the root REST path ("api" by default, where the JIRA REST
	// resources live).
	RESTPath string

	// APIVersion is the REST API version under RESTPath ("2" by default).
	APIVersion string

	// Email and APIToken enable basic authentication. BearerToken enables
	// bearer authentication and wins over Email/APIToken. All three support
	// indirection, e.g. "env:JIRA_TOKEN" or "file:/run/secrets/jira".
	Email       string
	APIToken    string
	BearerToken string

	// Auth overrides the credential fields with a custom AuthFunc, e.g.
	// NewTokenSourceAuth for OAuth2.
	Auth AuthFunc

	// Timeout is the hard per-request cap (15s by default).
	Timeout time.Duration

	// SkipTLSVerify disables TLS certificate verification. Dev only.
	SkipTLSVerify bool

	// Logger receives debug logs. Discarded if nil.
	Logger *slog.Logger
}

// DefaultOptions returns Options pointing at the local Atlassian SDK
// instance, connecting anonymously.
func DefaultOptions() Options {
	return Options{
		Server:     defaultServer,
		RESTPath:   defaultRESTPath,
		APIVersion: defaultAPIVersion,
		Timeout:    defaultTimeout,
	}
}

// serverURL validates the server URL and returns it with a trailing slash,
// context path included, so relative references resolve below it.
func (o Options) serverURL() (*url.URL, error) {
	server := strings.TrimRight(strings.TrimSpace(o.Server), "/")
	if server == "" {
		return nil, ConfigError("missing server URL")
	}

	u, err := url.Parse(server + "/")
	if err != nil {
		return nil, ConfigError(fmt.Sprintf("invalid server URL %q: %v", o.Server, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ConfigError(fmt.Sprintf("invalid server URL %q: scheme must be http or https", o.Server))
	}
	return u, nil
}

// apiBase builds the REST API base under the server URL, e.g.
// "https://jira.example.com/jira/rest/api/2/".
func (o Options) apiBase() (*url.URL, error) {
	server, err := o.serverURL()
	if err != nil {
		return nil, err
	}

	restPath := o.RESTPath
	if restPath == "" {
		restPath = defaultRESTPath
	}
	version := o.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}

	base, err := url.Parse(server.String() + "rest/" + restPath + "/" + version + "/")
	if err != nil {
		return nil, ConfigError(fmt.Sprintf("invalid REST path: %v", err))
	}
	return base, nil
}

// resolveAuth resolves credential indirections and picks the auth method.
// Without any credentials the client connects anonymously.
func (o Options) resolveAuth() (auth AuthFunc, method string, err error) {
	if o.Auth != nil {
		return o.Auth, "Custom", nil
	}

	bearer, err := resolveSecret(o.BearerToken)
	if err != nil {
		return nil, "", ConfigError(fmt.Sprintf("resolve bearer token: %v", err))
	}
	email, err := resolveSecret(o.Email)
	if err != nil {
		return nil, "", ConfigError(fmt.Sprintf("resolve email: %v", err))
	}
	token, err := resolveSecret(o.APIToken)
	if err != nil {
		return nil, "", ConfigError(fmt.Sprintf("resolve api token: %v", err))
	}

	if bearer == "" && email == "" && token == "" {
		return NewAnonymousAuth(), "Anonymous", nil
	}

	auth, method, err = ResolveAuth(bearer, email, token)
	if err != nil {
		return nil, "", ConfigError(err.Error())
	}
	return auth, method, nil
}

// resolveSecret resolves env:/file:/... indirections in a credential value.
// Plain values are returned unchanged.
func resolveSecret(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	return resolver.ResolveVariable(v)
}

// timeout returns the configured timeout or the default.
func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return defaultTimeout
	}
	return o.Timeout
}

// logger returns the configured logger or a discarding one.
func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
