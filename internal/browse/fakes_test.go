package browse

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/model"
)

// mockCatalog is a testify mock of catalog.Catalog
type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) SearchArtists(ctx context.Context, query string) ([]catalog.Artist, error) {
	args := m.Called(ctx, query)
	artists, _ := args.Get(0).([]catalog.Artist)
	return artists, args.Error(1)
}

func (m *mockCatalog) TopTracks(ctx context.Context, artistID, country string) ([]catalog.Track, error) {
	args := m.Called(ctx, artistID, country)
	tracks, _ := args.Get(0).([]catalog.Track)
	return tracks, args.Error(1)
}

// gatedCatalog blocks each call until its query or artist id is released
type gatedCatalog struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
	calls chan string

	artists map[string][]catalog.Artist
	tracks  map[string][]catalog.Track
}

func newGatedCatalog() *gatedCatalog {
	return &gatedCatalog{
		gates:   make(map[string]chan struct{}),
		calls:   make(chan string, 16),
		artists: make(map[string][]catalog.Artist),
		tracks:  make(map[string][]catalog.Track),
	}
}

func (g *gatedCatalog) gate(key string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[key]
	if !ok {
		ch = make(chan struct{})
		g.gates[key] = ch
	}
	return ch
}

func (g *gatedCatalog) release(key string) {
	close(g.gate(key))
}

func (g *gatedCatalog) wait(ctx context.Context, key string) error {
	g.calls <- key
	select {
	case <-g.gate(key):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *gatedCatalog) SearchArtists(ctx context.Context, query string) ([]catalog.Artist, error) {
	if err := g.wait(ctx, query); err != nil {
		return nil, err
	}
	return g.artists[query], nil
}

func (g *gatedCatalog) TopTracks(ctx context.Context, artistID, country string) ([]catalog.Track, error) {
	if err := g.wait(ctx, artistID); err != nil {
		return nil, err
	}
	return g.tracks[artistID], nil
}

// recordingView records what a flow asked the screen to do
type recordingView struct {
	mu         sync.Mutex
	shown      int
	hidden     int
	noResults  int
	artistSets [][]model.Artist
	trackSets  [][]model.Track
	artists    []model.Artist
	tracks     []model.Track
}

func (v *recordingView) ShowLoading()   { v.mu.Lock(); v.shown++; v.mu.Unlock() }
func (v *recordingView) HideLoading()   { v.mu.Lock(); v.hidden++; v.mu.Unlock() }
func (v *recordingView) ShowNoResults() { v.mu.Lock(); v.noResults++; v.mu.Unlock() }

func (v *recordingView) SetArtists(artists []model.Artist) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.artistSets = append(v.artistSets, artists)
	v.artists = artists
}

func (v *recordingView) SetTracks(tracks []model.Track) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.trackSets = append(v.trackSets, tracks)
	v.tracks = tracks
}

// serialPoster runs posted functions one at a time, like the UI goroutine
func serialPoster() Poster {
	var mu sync.Mutex
	return func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}
}

func images(urls ...string) []model.Image {
	out := make([]model.Image, 0, len(urls))
	width := 640
	for _, u := range urls {
		out = append(out, model.Image{Width: width, Height: width, URL: "https://i.example/" + u})
		width /= 2
	}
	return out
}
