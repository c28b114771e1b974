package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"showmyshop/config"
	"showmyshop/internal/errors"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(name string) *Client {
	return New(Options{
		Name:      name,
		UserAgent: "showmyshop-test",
		Timeout:   time.Second,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			FailureRatio: 0.5,
			MinRequests:  2,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_GetJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "showmyshop-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, newTestClient("get").GetJSON(context.Background(), srv.URL, &out))
	assert.True(t, out.OK)
}

func TestClient_PostFormJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "hello", r.PostForm.Get("data"))
		_, _ = w.Write([]byte(`{"echo":"hello"}`))
	}))
	defer srv.Close()

	var out struct {
		Echo string `json:"echo"`
	}
	err := newTestClient("post").PostFormJSON(context.Background(), srv.URL, url.Values{"data": {"hello"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Echo)
}

func TestClient_StatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient("status")
	for range 3 {
		err := c.GetJSON(context.Background(), srv.URL, &struct{}{})
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	}

	// 4xx responses do not trip the breaker.
	assert.Equal(t, gobreaker.StateClosed, c.State())
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient("breaker")
	for range 2 {
		require.Error(t, c.GetJSON(context.Background(), srv.URL, &struct{}{}))
	}
	assert.Equal(t, gobreaker.StateOpen, c.State())

	err := c.GetJSON(context.Background(), srv.URL, &struct{}{})
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	err := newTestClient("json").GetJSON(context.Background(), srv.URL, &struct{}{})
	assert.Error(t, err)
}

func TestClient_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestClient("cancel").GetJSON(ctx, "http://127.0.0.1:1", &struct{}{})
	assert.Error(t, err)
}
