package jira

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// AuthFunc applies authentication to an outgoing request.
type AuthFunc func(*http.Request)

// NewBasicAuth returns an AuthFunc that sets HTTP basic auth, typically an
// email address and an API token.
func NewBasicAuth(username, password string) AuthFunc {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	return func(r *http.Request) {
		r.SetBasicAuth(username, password)
	}
}

// NewBearerAuth returns an AuthFunc that sets a Bearer token header
// (personal access tokens on JIRA Data Center).
func NewBearerAuth(token string) AuthFunc {
	token = strings.TrimSpace(token)
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// NewTokenSourceAuth returns an AuthFunc backed by an OAuth2 token source.
// If the source cannot produce a token the request goes out unauthenticated
// and the server's 401 surfaces as an HTTPError.
func NewTokenSourceAuth(ts oauth2.TokenSource) AuthFunc {
	return func(r *http.Request) {
		tok, err := ts.Token()
		if err != nil {
			return
		}
		tok.SetAuthHeader(r)
	}
}

// NewAnonymousAuth returns an AuthFunc that leaves the request untouched.
func NewAnonymousAuth() AuthFunc {
	return func(r *http.Request) {}
}

// ResolveAuth returns the appropriate AuthFunc based on provided credentials.
// It supports either Bearer token or Basic (email + API token) authentication.
func ResolveAuth(bearerToken, email, token string) (auth AuthFunc, method string, err error) {
	switch {
	case bearerToken != "":
		return NewBearerAuth(bearerToken), "Bearer", nil
	case email != "" && token != "":
		return NewBasicAuth(email, token), "Basic", nil
	default:
		return nil, "", fmt.Errorf("no valid auth method configured: must provide either bearer token or email+token")
	}
}

// authorizationHeader returns the "Authorization" header value the given
// AuthFunc would set on a request.
func authorizationHeader(auth AuthFunc) string {
	req, _ := http.NewRequest(http.MethodGet, "https://dummy", nil)
	auth(req)
	return req.Header.Get("Authorization")
}

// ObfuscateAuthorization returns an obfuscated Authorization header,
// showing only the auth scheme, first 2 and last 2 characters of the token.
// All middle characters are replaced with '*', preserving original token length.
// Example: "Basic dZ*********X1" or "Bearer ab******yz"
func ObfuscateAuthorization(auth string) string {
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 {
		return "[invalid header]"
	}

	scheme := parts[0]
	token := strings.TrimSpace(parts[1])
	n := len(token)

	if n <= 4 {
		return scheme + " " + strings.Repeat("*", n)
	}

	prefix := token[:2]
	suffix := token[n-2:]
	stars := strings.Repeat("*", n-4)

	return scheme + " " + prefix + stars + suffix
}
