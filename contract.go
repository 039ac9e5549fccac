//go:generate mockgen -destination mocks.go -package powerdns . Transport
package powerdns

import (
	"context"
)

// Transport performs one authenticated HTTP exchange per call.
//
// Paths are relative to the API base URL and already contain the query string.
// A nil body is not sent at all. A nil out discards the response body;
// a *string out receives the raw response text; any other out is JSON-decoded.
// An empty response body leaves out untouched.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}
