package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyoez/portfolio-resolver/types"
)

var ctx = context.Background()

func TestNotifier_Disabled(t *testing.T) {
	n, err := New("", nil)
	require.NoError(t, err)
	assert.False(t, n.Enabled())
	assert.NoError(t, n.Send(ctx, &Notification{Type: "info"}))

	var nilNotifier *Notifier
	assert.False(t, nilNotifier.Enabled())
}

func TestNotifier_InvalidURL(t *testing.T) {
	_, err := New("ftp://example.com/hook", nil)
	assert.Error(t, err)
}

func TestNotifier_Send(t *testing.T) {
	var (
		got     Notification
		headers http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	n, err := New(srv.URL, srv.Client())
	require.NoError(t, err)
	n.SetHeader("X-Hook-Token", "secret")

	require.NoError(t, n.Send(ctx, ResolveFailed(types.CategoryResume, "req-1", errors.New("github request failed: 403 Forbidden"))))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "secret", headers.Get("X-Hook-Token"))
	assert.Equal(t, EventResolveFailed, got.Type)
	assert.Equal(t, "resume", got.Data["category"])
	assert.Equal(t, "req-1", got.Data["requestId"])
	assert.Equal(t, "github request failed: 403 Forbidden", got.Data["error"])
}

func TestNotifier_SendStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	n, err := New(srv.URL, srv.Client())
	require.NoError(t, err)
	err = n.Send(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestResolveFailed_NilCause(t *testing.T) {
	n := ResolveFailed(types.CategoryAchievements, "", nil)
	assert.Equal(t, "unknown error", n.Data["error"])
	assert.Contains(t, n.Message, "achievements")
}
