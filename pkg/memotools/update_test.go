package memotools

import (
	"context"
	"net/http"
	"testing"

	"github.com/openclaw/memos-mcp/pkg/memos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMemo_ContentOnly(t *testing.T) {
	m, f := newFake(`{"name":"memos/abc","content":"updated"}`)

	memo, err := m.UpdateMemo(context.Background(), UpdateMemoArgs{ID: "abc", Content: ptr("updated")})
	require.NoError(t, err)

	require.Len(t, f.calls, 1)
	assert.Equal(t, "/api/v1/memos/abc?updateMask=content", f.calls[0].path)
	assert.Equal(t, http.MethodPatch, f.calls[0].opts.Method)
	assert.Equal(t, `{"content":"updated"}`, bodyJSON(t, f.calls[0]))
	assert.Equal(t, "updated", memo.Content)
}

func TestUpdateMemo_AllFields(t *testing.T) {
	m, f := newFake(`{"name":"memos/abc"}`)

	_, err := m.UpdateMemo(context.Background(), UpdateMemoArgs{
		ID:         "abc",
		Content:    ptr("new content"),
		Visibility: ptr(memos.VisibilityPublic),
		Pinned:     ptr(true),
	})
	require.NoError(t, err)

	require.Len(t, f.calls, 1)
	assert.Equal(t, "/api/v1/memos/abc?updateMask=content%2Cvisibility%2Cpinned", f.calls[0].path)
	assert.Equal(t, `{"content":"new content","visibility":"PUBLIC","pinned":true}`, bodyJSON(t, f.calls[0]))
}

func TestUpdateMemo_UnpinOnly(t *testing.T) {
	m, f := newFake(`{}`)

	_, err := m.UpdateMemo(context.Background(), UpdateMemoArgs{ID: "abc", Pinned: ptr(false)})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/memos/abc?updateMask=pinned", f.calls[0].path)
	assert.Equal(t, `{"pinned":false}`, bodyJSON(t, f.calls[0]))
}

func TestUpdateMemo_EmptyContentIsAField(t *testing.T) {
	m, f := newFake(`{}`)

	_, err := m.UpdateMemo(context.Background(), UpdateMemoArgs{ID: "abc", Content: ptr("")})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/memos/abc?updateMask=content", f.calls[0].path)
	assert.Equal(t, `{"content":""}`, bodyJSON(t, f.calls[0]))
}

func TestUpdateMemo_EmptyID(t *testing.T) {
	m, f := newFake(`{}`)

	_, err := m.UpdateMemo(context.Background(), UpdateMemoArgs{Content: ptr("x")})
	assert.EqualError(t, err, "id must not be empty")
	assert.Empty(t, f.calls)
}

func TestUpdateMemo_NoFields(t *testing.T) {
	m, f := newFake(`{}`)

	_, err := m.UpdateMemo(context.Background(), UpdateMemoArgs{ID: "abc"})
	assert.EqualError(t, err, "at least one field to update is required")
	assert.Empty(t, f.calls)
}

func TestUpdateMemo_InvalidVisibility(t *testing.T) {
	m, f := newFake(`{}`)

	_, err := m.UpdateMemo(context.Background(), UpdateMemoArgs{ID: "abc", Visibility: ptr(memos.Visibility("nope"))})
	require.ErrorIs(t, err, ErrInvalidVisibility)
	assert.Empty(t, f.calls)
}
