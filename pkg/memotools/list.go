package memotools

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/openclaw/memos-mcp/pkg/memos"
)

const defaultPageSize = 20

// ListMemosArgs are the arguments of memos_list. PageSize is any JSON
// number; it is sent in its shortest decimal form.
type ListMemosArgs struct {
	PageSize  *float64 `json:"pageSize,omitempty" jsonschema:"Results per page (default: 20)"`
	PageToken string   `json:"pageToken,omitempty" jsonschema:"Pagination cursor"`
	Filter    string   `json:"filter,omitempty" jsonschema:"CEL filter expression, e.g. tag == \"work\""`
}

// ListMemos returns one page of memos.
func (m *Memos) ListMemos(ctx context.Context, args ListMemosArgs) (memos.MemoList, error) {
	var list memos.MemoList
	if err := m.list(ctx, args, &list); err != nil {
		return memos.MemoList{}, err
	}

	return list, nil
}

func (m *Memos) listTool(ctx context.Context, args ListMemosArgs) (json.RawMessage, error) {
	return passthrough(func(out any) error { return m.list(ctx, args, out) })
}

func (m *Memos) list(ctx context.Context, args ListMemosArgs, out any) error {
	pageSize := float64(defaultPageSize)
	if args.PageSize != nil {
		pageSize = *args.PageSize
	}
	if pageSize < 0 {
		return ErrNegativePageSize
	}

	return m.client.Request(ctx, memosPath+"?"+listQuery(pageSize, args), nil, out)
}

// listQuery form-encodes the list parameters in the order pageSize,
// pageToken, filter. Empty optional values are left out.
func listQuery(pageSize float64, args ListMemosArgs) string {
	var b strings.Builder

	b.WriteString("pageSize=")
	b.WriteString(strconv.FormatFloat(pageSize, 'f', -1, 64))

	if args.PageToken != "" {
		b.WriteString("&pageToken=")
		b.WriteString(url.QueryEscape(args.PageToken))
	}
	if args.Filter != "" {
		b.WriteString("&filter=")
		b.WriteString(url.QueryEscape(args.Filter))
	}

	return b.String()
}
