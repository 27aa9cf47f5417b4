package jira

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// newHTTPTransport returns a tuned Transport with optional TLS skipping.
func newHTTPTransport(skipVerify bool) *http.Transport {
	// use sane pooling so paginated searches aren't penalized
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,

		// reasonable connection pooling defaults
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,

		// TCP settings
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,

		// TLS (respect options)
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: skipVerify, // NOTE: intended for dev only
		},

		// timeouts on TLS handshake / expect-continue can help with slow remotes
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// newHTTPClient builds an http.Client with transport + request timeout.
func newHTTPClient(timeout time.Duration, skipVerify bool) *http.Client {
	return &http.Client{
		Timeout:   timeout,                      // hard per-request cap
		Transport: newHTTPTransport(skipVerify), // pooled transport
	}
}
