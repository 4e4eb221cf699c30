package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSourceCachesUntilExpiry(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, secret, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "id", id)
		assert.Equal(t, "secret", secret)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":60}`))
	}))
	defer ts.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	src := NewTokenSource(ts.URL, "id", "secret", ts.Client())
	src.now = func() time.Time { return now }

	tok, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	now = now.Add(20 * time.Second)
	_, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// 60s lifetime minus the renewal margin has passed
	now = now.Add(15 * time.Second)
	_, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	src.Invalidate()
	_, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestTokenSourceErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"rejected", http.StatusBadRequest, `{"error":"invalid_client"}`, "catalog status 400"},
		{"empty token", http.StatusOK, `{"access_token":""}`, "empty access token"},
		{"bad json", http.StatusOK, `{`, "decoding token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			src := NewTokenSource(ts.URL, "id", "secret", ts.Client())
			_, err := src.Token(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTokenLifetime(t *testing.T) {
	tests := []struct {
		expiresIn int
		want      time.Duration
	}{
		{3600, 3570 * time.Second},
		{61, 31 * time.Second},
		{60, 30 * time.Second},
		{20, 10 * time.Second},
		{1, 500 * time.Millisecond},
		{0, 0},
		{-5, -2500 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenLifetime(tt.expiresIn), "expires_in=%d", tt.expiresIn)
	}
}

func TestTokenSourceReusesShortLivedToken(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"access_token":"short","token_type":"Bearer","expires_in":20}`))
	}))
	defer ts.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	src := NewTokenSource(ts.URL, "id", "secret", ts.Client())
	src.now = func() time.Time { return now }

	_, err := src.Token(context.Background())
	require.NoError(t, err)

	now = now.Add(5 * time.Second)
	_, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	now = now.Add(6 * time.Second)
	_, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
