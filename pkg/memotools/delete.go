package memotools

import (
	"context"
	"net/http"

	"github.com/openclaw/memos-mcp/pkg/memos"
)

// DeleteMemoArgs are the arguments of memos_delete.
type DeleteMemoArgs struct {
	ID string `json:"id" jsonschema:"Memo ID to delete"`
}

// DeleteResult reports a successful deletion.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// DeleteMemo deletes a memo by id. The response body is discarded.
func (m *Memos) DeleteMemo(ctx context.Context, args DeleteMemoArgs) (DeleteResult, error) {
	if args.ID == "" {
		return DeleteResult{}, ErrEmptyID
	}

	err := m.client.Request(ctx, memoPath(args.ID), &memos.RequestOptions{Method: http.MethodDelete}, nil)
	if err != nil {
		return DeleteResult{}, err
	}

	return DeleteResult{Deleted: true}, nil
}
