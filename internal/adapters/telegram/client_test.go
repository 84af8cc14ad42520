package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second)
	require.NoError(t, c.SendMessage(context.Background(), 42, "hello"))

	assert.Equal(t, "/botTOKEN/sendMessage", gotPath)
	assert.EqualValues(t, 42, gotBody["chat_id"])
	assert.Equal(t, "hello", gotBody["text"])
}

func TestClient_SendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "bot was blocked by the user"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second)
	err := c.SendMessage(context.Background(), 42, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot was blocked by the user")
}

func TestClient_SendMessage_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second)
	assert.Error(t, c.SendMessage(context.Background(), 42, "hello"))
}

func TestClient_SetWebhook(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second)
	require.NoError(t, c.SetWebhook(context.Background(), "https://example.com/hook"))

	assert.Equal(t, "/botTOKEN/setWebhook", gotPath)
	assert.Equal(t, "https://example.com/hook", gotBody["url"])
}
