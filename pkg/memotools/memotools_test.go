package memotools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/openclaw/memos-mcp/pkg/memos"
	"github.com/stretchr/testify/require"
)

// call is one recorded Request invocation.
type call struct {
	path string
	opts *memos.RequestOptions
}

// fakeRequester records requests and decodes a canned JSON response into out.
type fakeRequester struct {
	calls    []call
	response string
	err      error
}

func (f *fakeRequester) Request(_ context.Context, path string, opts *memos.RequestOptions, out any) error {
	f.calls = append(f.calls, call{path: path, opts: opts})

	if f.err != nil {
		return f.err
	}
	if out == nil || f.response == "" {
		return nil
	}

	return json.Unmarshal([]byte(f.response), out)
}

func newFake(response string) (*Memos, *fakeRequester) {
	f := &fakeRequester{response: response}
	return New(f), f
}

// bodyJSON returns the request body exactly as the client would encode it.
func bodyJSON(t *testing.T, c call) string {
	t.Helper()

	require.NotNil(t, c.opts)
	data, err := json.Marshal(c.opts.Body)
	require.NoError(t, err)

	return string(data)
}

func ptr[T any](v T) *T { return &v }
