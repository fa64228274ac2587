package memotools

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/openclaw/memos-mcp/pkg/memos"
)

// CreateMemoArgs are the arguments of memos_create.
type CreateMemoArgs struct {
	Content    string           `json:"content" jsonschema:"Memo body in Markdown format"`
	Visibility memos.Visibility `json:"visibility,omitempty" jsonschema:"Access level (default: PRIVATE)"`
}

type createBody struct {
	Content    string           `json:"content"`
	Visibility memos.Visibility `json:"visibility"`
	State      memos.State      `json:"state"`
}

// CreateMemo creates a memo in the NORMAL state. Visibility defaults to
// PRIVATE.
func (m *Memos) CreateMemo(ctx context.Context, args CreateMemoArgs) (memos.Memo, error) {
	var memo memos.Memo
	if err := m.create(ctx, args, &memo); err != nil {
		return memos.Memo{}, err
	}

	return memo, nil
}

func (m *Memos) createTool(ctx context.Context, args CreateMemoArgs) (json.RawMessage, error) {
	return passthrough(func(out any) error { return m.create(ctx, args, out) })
}

func (m *Memos) create(ctx context.Context, args CreateMemoArgs, out any) error {
	if args.Content == "" {
		return ErrEmptyContent
	}

	visibility := args.Visibility
	if visibility == "" {
		visibility = memos.VisibilityPrivate
	}
	if err := checkVisibility(visibility); err != nil {
		return err
	}

	return m.client.Request(ctx, memosPath, &memos.RequestOptions{
		Method: http.MethodPost,
		Body: createBody{
			Content:    args.Content,
			Visibility: visibility,
			State:      memos.StateNormal,
		},
	}, out)
}
