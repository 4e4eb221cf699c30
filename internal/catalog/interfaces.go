package catalog

import (
	"context"

	"github.com/ytget/spotify-streamer/internal/model"
)

// DefaultMarket is used when no country preference is set
const DefaultMarket = "US"

// Artist is an artist summary as returned by search
type Artist struct {
	ID     string
	Name   string
	Images []model.Image
}

// Album is the album summary embedded in a track
type Album struct {
	Name   string
	Images []model.Image
}

// Track is a track summary as returned by the top-tracks lookup
type Track struct {
	Name       string
	Album      Album
	PreviewURL string // empty when the catalog has no preview
}

// Catalog defines the interface for the catalog service.
type Catalog interface {
	// SearchArtists returns the first page of artists matching query
	SearchArtists(ctx context.Context, query string) ([]Artist, error)

	// TopTracks returns an artist's most popular tracks in a market
	TopTracks(ctx context.Context, artistID, country string) ([]Track, error)
}
