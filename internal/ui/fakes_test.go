package ui

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/mockcatalog"
)

// queuePoster collects posted funcs so tests run them on their own goroutine
type queuePoster struct {
	mu  sync.Mutex
	fns []func()
}

func (q *queuePoster) post(fn func()) {
	q.mu.Lock()
	q.fns = append(q.fns, fn)
	q.mu.Unlock()
}

// drain runs the queued funcs and returns how many ran
func (q *queuePoster) drain() int {
	q.mu.Lock()
	fns := q.fns
	q.fns = nil
	q.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// loadCall is one ImageLoader.Load invocation
type loadCall struct {
	uri    string
	target *canvas.Image
}

// recordingLoader records Load calls without fetching anything
type recordingLoader struct {
	calls []loadCall
}

func (l *recordingLoader) Load(uri string, target *canvas.Image) {
	l.calls = append(l.calls, loadCall{uri: uri, target: target})
}

func (l *recordingLoader) last() loadCall {
	if len(l.calls) == 0 {
		return loadCall{}
	}
	return l.calls[len(l.calls)-1]
}

// fakeFetcher serves resources from maps
type fakeFetcher struct {
	mu      sync.Mutex
	cached  map[string]fyne.Resource
	remote  map[string]fyne.Resource
	fetched []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		cached: make(map[string]fyne.Resource),
		remote: make(map[string]fyne.Resource),
	}
}

func (f *fakeFetcher) Cached(uri string) (fyne.Resource, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.cached[uri]
	return res, ok
}

func (f *fakeFetcher) Fetch(ctx context.Context, uri string) (fyne.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, uri)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, ok := f.remote[uri]
	if !ok {
		return nil, errors.New("not found")
	}
	return res, nil
}

// recordingNotifier records window feedback
type recordingNotifier struct {
	loading int
	shown   int
	hidden  int
	toasts  []string
}

func (n *recordingNotifier) ShowLoading() {
	n.loading++
	n.shown++
}

func (n *recordingNotifier) HideLoading() {
	if n.loading > 0 {
		n.loading--
	}
	n.hidden++
}

func (n *recordingNotifier) ShowToast(message string) {
	n.toasts = append(n.toasts, message)
}

func (n *recordingNotifier) lastToast() string {
	if len(n.toasts) == 0 {
		return ""
	}
	return n.toasts[len(n.toasts)-1]
}

// newMockCatalog starts the mock catalog and returns a client for it
func newMockCatalog(t *testing.T) catalog.Catalog {
	t.Helper()

	srv := httptest.NewServer(mockcatalog.NewServer(mockcatalog.DefaultFixtures()).Router())
	t.Cleanup(srv.Close)

	return catalog.NewClient(catalog.Options{BaseURL: srv.URL + "/v1", RateLimit: 1000})
}

func resource(name string) fyne.Resource {
	return fyne.NewStaticResource(name, []byte(name))
}
