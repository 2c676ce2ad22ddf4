// ABOUTME: Hardened HTTP client construction shared by all remote calls.
// ABOUTME: Bounded handshake and header timeouts keep a stalled review server from hanging the prompt.

package http

import (
	"net/http"
	"time"
)

// SecureHTTPClient creates an HTTP client with bounded timeouts.
func SecureHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
		},
	}
}
