package browse

import (
	"context"
	"log"
	"sync"

	"github.com/ytget/spotify-streamer/internal/model"
)

// flow is the fetch loop shared by the artist and track flows
type flow[T any] struct {
	name  string
	view  LoadingView
	apply func([]T)
	post  Poster
	gen   *Generation

	wg sync.WaitGroup

	mu     sync.Mutex
	status model.FetchStatus
}

func newFlow[T any](name string, view LoadingView, apply func([]T), post Poster) *flow[T] {
	if post == nil {
		post = Immediate
	}
	return &flow[T]{
		name:   name,
		view:   view,
		apply:  apply,
		post:   post,
		gen:    NewGeneration(),
		status: model.FetchStatusIdle,
	}
}

// start shows the indicator and runs fetch on a new goroutine. It must be
// called on the UI goroutine.
func (f *flow[T]) start(subject string, fetch func(ctx context.Context) ([]T, error)) bool {
	tok, ctx, ok := f.gen.Next()
	if !ok {
		return false
	}

	f.setStatus(model.FetchStatusLoading)
	f.view.ShowLoading()
	log.Printf("%s %s started for %s", f.name, tok.RequestID, subject)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()

		items, err := fetch(ctx)

		f.post(func() {
			if !f.gen.IsCurrent(tok) {
				log.Printf("%s %s for %s discarded", f.name, tok.RequestID, subject)
				return
			}

			f.view.HideLoading()

			switch {
			case err != nil:
				log.Printf("%s %s for %s failed: %v", f.name, tok.RequestID, subject, err)
				f.setStatus(model.FetchStatusError)
			case len(items) == 0:
				log.Printf("%s %s for %s returned no results", f.name, tok.RequestID, subject)
				f.setStatus(model.FetchStatusEmpty)
				f.view.ShowNoResults()
			default:
				log.Printf("%s %s for %s returned %d results", f.name, tok.RequestID, subject, len(items))
				f.setStatus(model.FetchStatusLoaded)
				f.apply(items)
			}
		})
	}()

	return true
}

func (f *flow[T]) close() {
	f.gen.Close()
	f.setStatus(model.FetchStatusClosed)
}

func (f *flow[T]) setStatus(s model.FetchStatus) {
	f.mu.Lock()
	f.status = s
	f.mu.Unlock()
}

func (f *flow[T]) getStatus() model.FetchStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}
