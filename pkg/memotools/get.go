package memotools

import (
	"context"
	"encoding/json"

	"github.com/openclaw/memos-mcp/pkg/memos"
)

// GetMemoArgs are the arguments of memos_get.
type GetMemoArgs struct {
	ID string `json:"id" jsonschema:"Memo ID (the part after \"memos/\" in the resource name)"`
}

// GetMemo fetches a single memo by id.
func (m *Memos) GetMemo(ctx context.Context, args GetMemoArgs) (memos.Memo, error) {
	var memo memos.Memo
	if err := m.get(ctx, args, &memo); err != nil {
		return memos.Memo{}, err
	}

	return memo, nil
}

func (m *Memos) getTool(ctx context.Context, args GetMemoArgs) (json.RawMessage, error) {
	return passthrough(func(out any) error { return m.get(ctx, args, out) })
}

func (m *Memos) get(ctx context.Context, args GetMemoArgs, out any) error {
	if args.ID == "" {
		return ErrEmptyID
	}

	return m.client.Request(ctx, memoPath(args.ID), nil, out)
}
