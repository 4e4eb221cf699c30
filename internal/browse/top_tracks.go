package browse

import (
	"context"

	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/model"
)

// TopTracks loads an artist's top tracks for the tracks screen
type TopTracks struct {
	catalog catalog.Catalog
	flow    *flow[model.Track]
}

// NewTopTracks creates a lookup flow that delivers results to view
func NewTopTracks(c catalog.Catalog, view TrackView, post Poster) *TopTracks {
	return &TopTracks{
		catalog: c,
		flow:    newFlow("Top tracks", view, view.SetTracks, post),
	}
}

// Load starts a lookup for the artist in the given market. An empty market
// means the catalog default. It returns false for an empty artist id or a
// closed flow.
func (t *TopTracks) Load(artistID, country string) bool {
	if artistID == "" {
		return false
	}

	subject := artistID + " (" + country + ")"
	return t.flow.start(subject, func(ctx context.Context) ([]model.Track, error) {
		found, err := t.catalog.TopTracks(ctx, artistID, country)
		if err != nil {
			return nil, err
		}
		return TracksFromCatalog(found), nil
	})
}

// Status returns the state of the latest lookup
func (t *TopTracks) Status() model.FetchStatus {
	return t.flow.getStatus()
}

// Wait blocks until every started lookup has delivered its result
func (t *TopTracks) Wait() {
	t.flow.wg.Wait()
}

// Close cancels the in-flight lookup and ignores later results
func (t *TopTracks) Close() {
	t.flow.close()
}
