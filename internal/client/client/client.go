package client

import "context"

// Response is the outcome of a request that reached the server, whatever its
// status code.
type Response struct {
	StatusCode int
	// Reason is the status text, e.g. "Not Found".
	Reason string
	Body   []byte
}

// Client is the transport contract the rest of the CLI depends on.
type Client interface {
	// Fetch performs one GET with the given Accept header ("" means
	// application/json). Network failures return an error wrapping
	// common.ErrTransport; HTTP error statuses are not errors here.
	Fetch(ctx context.Context, url string, accept string) (*Response, error)
}
