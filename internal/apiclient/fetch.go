package apiclient

import (
	"context"

	"github.com/proyectoslancha/pattymoda/pkg/api"
)

// Requester is the retrieval operation endpoint services depend on.
// *Client satisfies it; tests substitute their own.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
}

// Fetch retrieves path through r and returns the decoded envelope.
// Errors from r are returned as-is.
func Fetch[T any](ctx context.Context, r Requester, path string) (*api.Response[T], error) {
	var resp api.Response[T]
	if err := r.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
