package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/openclaw/memos-mcp/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewToolBox_UsesDotEnv(t *testing.T) {
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"name":"memos/abc"}`))
	}))
	defer srv.Close()

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("MEMOS_API_URL="+srv.URL+"/\nMEMOS_TOKEN=from-dotenv\n"), 0o600))

	var logs bytes.Buffer
	tb := newToolBox(newLogger(&logs, false), config.Options{
		LookupEnv: func(string) (string, bool) { return "", false },
		EnvFile:   envPath,
	})

	_, err := tb.Dispatch(context.Background(), "memos_get", map[string]any{"id": "abc"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer from-dotenv", auth)
	assert.Contains(t, logs.String(), "tool=memos_get")
}

func TestNewToolBox_MissingConfigFailsOnCall(t *testing.T) {
	var logs bytes.Buffer
	tb := newToolBox(newLogger(&logs, false), config.Options{
		LookupEnv: func(string) (string, bool) { return "", false },
	})

	assert.Len(t, tb.Tools(), 5)

	_, err := tb.Dispatch(context.Background(), "memos_list", map[string]any{})
	assert.EqualError(t, err, "MEMOS_API_URL is required. Set it as an environment variable or in .env")
	assert.Contains(t, logs.String(), "tool finished with error")
}
