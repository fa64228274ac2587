package memotools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/openclaw/memos-mcp/pkg/memos"
)

// UpdateMemoArgs are the arguments of memos_update. Nil fields are left
// unchanged on the server.
type UpdateMemoArgs struct {
	ID         string            `json:"id" jsonschema:"Memo ID"`
	Content    *string           `json:"content,omitempty" jsonschema:"New content in Markdown"`
	Visibility *memos.Visibility `json:"visibility,omitempty" jsonschema:"New visibility"`
	Pinned     *bool             `json:"pinned,omitempty" jsonschema:"Pin or unpin the memo"`
}

// updateBody field order is the order of the update mask.
type updateBody struct {
	Content    *string           `json:"content,omitempty"`
	Visibility *memos.Visibility `json:"visibility,omitempty"`
	Pinned     *bool             `json:"pinned,omitempty"`
}

// UpdateMemo applies a partial update. Only the supplied fields are sent, and
// the updateMask names exactly those fields.
func (m *Memos) UpdateMemo(ctx context.Context, args UpdateMemoArgs) (memos.Memo, error) {
	var memo memos.Memo
	if err := m.update(ctx, args, &memo); err != nil {
		return memos.Memo{}, err
	}

	return memo, nil
}

func (m *Memos) updateTool(ctx context.Context, args UpdateMemoArgs) (json.RawMessage, error) {
	return passthrough(func(out any) error { return m.update(ctx, args, out) })
}

func (m *Memos) update(ctx context.Context, args UpdateMemoArgs, out any) error {
	if args.ID == "" {
		return ErrEmptyID
	}

	var (
		body   updateBody
		fields []string
	)

	if args.Content != nil {
		body.Content = args.Content
		fields = append(fields, "content")
	}
	if args.Visibility != nil {
		if err := checkVisibility(*args.Visibility); err != nil {
			return err
		}
		body.Visibility = args.Visibility
		fields = append(fields, "visibility")
	}
	if args.Pinned != nil {
		body.Pinned = args.Pinned
		fields = append(fields, "pinned")
	}

	if len(fields) == 0 {
		return ErrNoUpdateFields
	}

	path := memoPath(args.ID) + "?updateMask=" + url.QueryEscape(strings.Join(fields, ","))

	return m.client.Request(ctx, path, &memos.RequestOptions{
		Method: http.MethodPatch,
		Body:   body,
	}, out)
}
