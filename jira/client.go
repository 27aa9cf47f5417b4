package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// Client handles communication with the JIRA REST API. It is safe for
// concurrent use: it holds no mutable state beyond the immutable
// configuration captured at construction.
type Client struct {
	apiURL *url.URL     // base API URL, e.g. https://host/jira/rest/api/2/
	server *url.URL     // server base with context path, for non-API endpoints like /rest/auth
	http   *http.Client // underlying HTTP client
	auth   AuthFunc
	logger *slog.Logger
}

// New constructs a Client from the given options.
func New(opts Options) (*Client, error) {
	server, err := opts.serverURL()
	if err != nil {
		return nil, err
	}
	apiURL, err := opts.apiBase()
	if err != nil {
		return nil, err
	}

	auth, method, err := opts.resolveAuth()
	if err != nil {
		return nil, err
	}

	logger := opts.logger()
	logger.Debug("jira auth",
		"method", method,
		"header", ObfuscateAuthorization(authorizationHeader(auth)),
	)

	return &Client{
		apiURL: apiURL,
		server: server,
		http:   newHTTPClient(opts.timeout(), opts.SkipTLSVerify),
		auth:   auth,
		logger: logger,
	}, nil
}

// Find fetches a Resource for any addressable resource on the server. The
// format is a relative resource path with fmt verbs for IDs, e.g.
// "issue/%s/remotelink/%s". It is intended for endpoints that have no
// dedicated method on the Client.
func (c *Client) Find(ctx context.Context, format string, ids ...any) (*Resource, error) {
	return c.get(ctx, fmt.Sprintf(format, ids...), nil)
}

// get performs a GET against an API path and decodes the response.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*Resource, error) {
	body, _, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeBody(body)
}

// post performs a POST with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, query url.Values, payload any) (*Resource, error) {
	body, _, err := c.do(ctx, http.MethodPost, path, query, payload)
	if err != nil {
		return nil, err
	}
	return decodeBody(body)
}

// put performs a PUT with a JSON body, discarding the response.
func (c *Client) put(ctx context.Context, path string, query url.Values, payload any) error {
	_, _, err := c.do(ctx, http.MethodPut, path, query, payload)
	return err
}

// delete performs a DELETE, discarding the response.
func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	_, _, err := c.do(ctx, http.MethodDelete, path, query, nil)
	return err
}

// do performs an authenticated HTTP request against a path relative to the
// API base URL and returns response body, status, and error. Paths starting
// with "/" are resolved against the server base instead, context path
// included, for endpoints outside /rest/api such as /rest/auth/1/session.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (response []byte, statusCode int, err error) {
	var bodyReader io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	base := c.apiURL
	if len(path) > 0 && path[0] == '/' {
		base = c.server
		path = path[1:] // keep the reference relative so the context path survives
	}
	relURL, err := url.Parse(path)
	if err != nil {
		return nil, 0, fmt.Errorf("parse path: %w", err)
	}
	u := base.ResolveReference(relURL)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	c.auth(req) // apply authentication

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("jira request", "method", method, "url", u.Redacted())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return respBody, resp.StatusCode, &HTTPError{
			StatusCode: resp.StatusCode,
			Method:     method,
			URL:        u.Redacted(),
			Body:       respBody,
		}
	}
	return respBody, resp.StatusCode, nil
}

// decodeBody maps a response body into a Resource. Empty bodies (204 No
// Content) become an empty success marker.
func decodeBody(body []byte) (*Resource, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Wrap(nil), nil
	}
	return Decode(body)
}
