package browse

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/model"
)

// ArtistSearch runs artist-name searches for the search screen
type ArtistSearch struct {
	catalog catalog.Catalog
	flow    *flow[model.Artist]
}

// NewArtistSearch creates a search flow that delivers results to view
func NewArtistSearch(c catalog.Catalog, view ArtistView, post Poster) *ArtistSearch {
	return &ArtistSearch{
		catalog: c,
		flow:    newFlow("Artist search", view, view.SetArtists, post),
	}
}

// NormalizeQuery trims white space and converts the query to NFC
func NormalizeQuery(query string) string {
	return norm.NFC.String(strings.TrimSpace(query))
}

// Submit starts a search. Blank queries and searches on a closed flow do
// nothing and return false.
func (s *ArtistSearch) Submit(query string) bool {
	query = NormalizeQuery(query)
	if query == "" {
		return false
	}

	return s.flow.start(query, func(ctx context.Context) ([]model.Artist, error) {
		found, err := s.catalog.SearchArtists(ctx, query)
		if err != nil {
			return nil, err
		}
		return ArtistsFromCatalog(found), nil
	})
}

// Status returns the state of the latest search
func (s *ArtistSearch) Status() model.FetchStatus {
	return s.flow.getStatus()
}

// Wait blocks until every started search has delivered its result
func (s *ArtistSearch) Wait() {
	s.flow.wg.Wait()
}

// Close cancels the in-flight search and ignores later results
func (s *ArtistSearch) Close() {
	s.flow.close()
}
