package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRequestIDs makes every request carry [RequestIDHeader]. The id stored
// in the request context by [WithRequestID] is used when present; otherwise
// gen produces a fresh one.
func (c *HTTPClient) WithRequestIDs(gen *UUIDGenerator) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := GetRequestIDFromContext(req.Context())
		if !ok {
			id = gen.Generate()
		}
		req.SetHeader(RequestIDHeader, id)
		return nil
	})
	return c
}
