package ui

import (
	"context"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/spotify-streamer/internal/browse"
)

// ImageLoader overlays a remote image onto a canvas image once it arrives.
// Binding a target to a new URI, or to "", abandons the previous load.
type ImageLoader interface {
	Load(uri string, target *canvas.Image)
}

// ImageFetcher fetches an image resource, as platform.ImageCache does
type ImageFetcher interface {
	Cached(uri string) (fyne.Resource, bool)
	Fetch(ctx context.Context, uri string) (fyne.Resource, error)
}

// AsyncImageLoader loads images on background goroutines and assigns them on
// the UI goroutine through a Poster.
type AsyncImageLoader struct {
	fetcher ImageFetcher
	post    browse.Poster
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu    sync.Mutex
	bound map[*canvas.Image]string
}

// NewAsyncImageLoader creates a loader over fetcher
func NewAsyncImageLoader(fetcher ImageFetcher, post browse.Poster) *AsyncImageLoader {
	if post == nil {
		post = browse.Immediate
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &AsyncImageLoader{
		fetcher: fetcher,
		post:    post,
		ctx:     ctx,
		cancel:  cancel,
		bound:   make(map[*canvas.Image]string),
	}
}

// Load binds target to uri and starts fetching it. Cached images are
// assigned immediately.
func (l *AsyncImageLoader) Load(uri string, target *canvas.Image) {
	if target == nil {
		return
	}

	l.mu.Lock()
	if uri == "" {
		delete(l.bound, target)
		l.mu.Unlock()
		return
	}
	l.bound[target] = uri
	l.mu.Unlock()

	if res, ok := l.fetcher.Cached(uri); ok {
		setImage(target, res)
		return
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		res, err := l.fetcher.Fetch(l.ctx, uri)
		if err != nil {
			if l.ctx.Err() == nil {
				log.Printf("Image load failed for %s: %v", uri, err)
			}
			return
		}

		l.post(func() {
			if !l.isBound(target, uri) {
				return
			}
			setImage(target, res)
		})
	}()
}

// Wait blocks until started loads have finished
func (l *AsyncImageLoader) Wait() {
	l.wg.Wait()
}

// Stop cancels pending loads
func (l *AsyncImageLoader) Stop() {
	l.cancel()
}

func (l *AsyncImageLoader) isBound(target *canvas.Image, uri string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bound[target] == uri
}

func setImage(target *canvas.Image, res fyne.Resource) {
	target.Resource = res
	target.File = ""
	target.Image = nil
	target.Refresh()
}
