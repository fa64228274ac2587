// Package memotools exposes Memos API operations as tools. Each operation
// validates its arguments locally and issues exactly one API request. The
// exported methods decode the response into typed values; the tool handlers
// return the response body as the API sent it.
package memotools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openclaw/memos-mcp/pkg/memos"
)

const memosPath = "/api/v1/memos"

// Validation errors. They are returned before any request is sent.
var (
	ErrEmptyContent      = errors.New("content must not be empty")
	ErrEmptyID           = errors.New("id must not be empty")
	ErrNoUpdateFields    = errors.New("at least one field to update is required")
	ErrInvalidVisibility = fmt.Errorf("visibility must be one of %s", joinVisibilities())
	ErrNegativePageSize  = errors.New("pageSize must not be negative")
)

// Requester sends one request to the Memos API. *memos.Client implements it.
type Requester interface {
	Request(ctx context.Context, path string, opts *memos.RequestOptions, out any) error
}

// Memos implements the memo tools on top of a Requester.
type Memos struct {
	client Requester
}

// New creates a Memos backed by client.
func New(client Requester) *Memos {
	return &Memos{client: client}
}

// memoPath returns the resource path of the memo with the given id. The id is
// appended as given.
func memoPath(id string) string {
	return memosPath + "/" + id
}

// emptyObject is the tool result for a 2xx response without a body.
var emptyObject = json.RawMessage(`{}`)

// passthrough runs send with a raw destination and returns the body
// unchanged. A 204 leaves the destination empty and yields emptyObject.
func passthrough(send func(out any) error) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := send(&raw); err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return emptyObject, nil
	}

	return raw, nil
}

func checkVisibility(v memos.Visibility) error {
	if !v.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidVisibility, v)
	}
	return nil
}

func joinVisibilities() string {
	names := make([]string, 0, len(memos.Visibilities))
	for _, v := range memos.Visibilities {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}
