package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	// Do performs a single request. A non-nil body is serialized to JSON and
	// sent with a Content-Type: application/json header.
	Do(ctx context.Context, method, url string, headers map[string]string, body any) (Response, error)
}
