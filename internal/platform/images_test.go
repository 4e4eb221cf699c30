package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newImageServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/text":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>"))
		case "/slow":
			time.Sleep(50 * time.Millisecond)
			fallthrough
		default:
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(pngHeader)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestImageCacheFetch(t *testing.T) {
	var hits int32
	ts := newImageServer(t, &hits)
	cache := NewImageCache(ts.Client(), 0)

	res, err := cache.Fetch(context.Background(), ts.URL+"/a.png")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(res.Content()) != string(pngHeader) {
		t.Errorf("unexpected content %v", res.Content())
	}
	if res.Name() != ts.URL+"/a.png" {
		t.Errorf("expected resource named after its URL, got %s", res.Name())
	}

	// second fetch is served from memory
	if _, err := cache.Fetch(context.Background(), ts.URL+"/a.png"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected 1 request, got %d", got)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 cached image, got %d", cache.Len())
	}
}

func TestImageCacheSharesConcurrentDownloads(t *testing.T) {
	var hits int32
	ts := newImageServer(t, &hits)
	cache := NewImageCache(ts.Client(), 0)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Fetch(context.Background(), ts.URL+"/slow"); err != nil {
				t.Errorf("Fetch: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected concurrent fetches to share 1 request, got %d", got)
	}
}

func TestImageCacheErrors(t *testing.T) {
	var hits int32
	ts := newImageServer(t, &hits)
	cache := NewImageCache(ts.Client(), 0)

	for _, path := range []string{"/missing", "/text"} {
		if _, err := cache.Fetch(context.Background(), ts.URL+path); err == nil {
			t.Errorf("expected error for %s", path)
		}
	}
	if _, err := cache.Fetch(context.Background(), "://bad"); err == nil {
		t.Error("expected error for invalid URL")
	}
	if cache.Len() != 0 {
		t.Errorf("failed fetches should not be cached, got %d", cache.Len())
	}
}

func TestImageCacheCapacity(t *testing.T) {
	var hits int32
	ts := newImageServer(t, &hits)
	cache := NewImageCache(ts.Client(), 1)

	for _, path := range []string{"/a", "/b"} {
		if _, err := cache.Fetch(context.Background(), ts.URL+path); err != nil {
			t.Fatalf("Fetch %s: %v", path, err)
		}
	}

	if cache.Len() != 1 {
		t.Errorf("expected cache capped at 1, got %d", cache.Len())
	}
	if _, ok := cache.Cached(ts.URL + "/a"); !ok {
		t.Error("first image should stay cached")
	}
}

func TestImageCacheCancelledContext(t *testing.T) {
	var hits int32
	ts := newImageServer(t, &hits)
	cache := NewImageCache(ts.Client(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Fetch(ctx, ts.URL+"/slow"); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
