package integrations

import (
	"errors"
	"net"
	"net/http"
	"time"
)

// Default transport timeouts for registry requests.
const (
	// DefaultConnectTimeout bounds TCP connection establishment.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReadTimeout bounds the wait for response headers once connected.
	DefaultReadTimeout = 30 * time.Second
)

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// non-2xx responses, undecodable bodies).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client for registry requests.
//
// The connect timeout applies to dialing, the read timeout to waiting for
// response headers. The overall client timeout is their sum, so a stalled
// body read is bounded too. Zero values fall back to the defaults.
func NewHTTPClient(connect, read time.Duration) *http.Client {
	if connect <= 0 {
		connect = DefaultConnectTimeout
	}
	if read <= 0 {
		read = DefaultReadTimeout
	}
	return &http.Client{
		Timeout: connect + read,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   connect,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   connect,
			ResponseHeaderTimeout: read,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}
