package platform

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"golang.org/x/sync/singleflight"
)

// Image fetch limits
const (
	DefaultImageTimeout = 10 * time.Second
	DefaultImageEntries = 128
	MaxImageBytes       = 4 << 20
)

// ImageCache downloads images over HTTP and keeps them in memory as Fyne
// resources. Concurrent requests for one URL share a single download. Once
// the cache holds maxEntries images, further images are served but not kept.
type ImageCache struct {
	client     *http.Client
	maxEntries int
	group      singleflight.Group

	mu      sync.RWMutex
	entries map[string]fyne.Resource
}

// NewImageCache creates an image cache. A nil client gets one with
// DefaultImageTimeout; maxEntries <= 0 takes DefaultImageEntries.
func NewImageCache(client *http.Client, maxEntries int) *ImageCache {
	if client == nil {
		client = &http.Client{Timeout: DefaultImageTimeout}
	}
	if maxEntries <= 0 {
		maxEntries = DefaultImageEntries
	}
	return &ImageCache{
		client:     client,
		maxEntries: maxEntries,
		entries:    make(map[string]fyne.Resource),
	}
}

// Cached returns the resource for uri without fetching it
func (c *ImageCache) Cached(uri string) (fyne.Resource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[uri]
	return res, ok
}

// Len returns the number of cached images
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Fetch returns the image at uri, downloading it on first use. The download
// outlives a cancelled ctx so other waiters still get it.
func (c *ImageCache) Fetch(ctx context.Context, uri string) (fyne.Resource, error) {
	if res, ok := c.Cached(uri); ok {
		return res, nil
	}

	ch := c.group.DoChan(uri, func() (any, error) {
		return c.download(context.WithoutCancel(ctx), uri)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(fyne.Resource), nil
	}
}

func (c *ImageCache) download(ctx context.Context, uri string) (fyne.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("building image request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image %s: status %d", uri, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("fetching image %s: unexpected content type %q", uri, ct)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", uri, err)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image %s exceeds %d bytes", uri, MaxImageBytes)
	}

	res := fyne.NewStaticResource(uri, data)

	c.mu.Lock()
	if len(c.entries) < c.maxEntries {
		c.entries[uri] = res
	} else {
		log.Printf("Image cache full (%d), not keeping %s", c.maxEntries, uri)
	}
	c.mu.Unlock()

	return res, nil
}
