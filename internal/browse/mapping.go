package browse

import (
	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/model"
)

// ArtistFromCatalog maps a search result, picking the photo with
// model.SelectArtistPhoto.
func ArtistFromCatalog(a catalog.Artist) model.Artist {
	photo := ""
	if img, ok := model.SelectArtistPhoto(a.Images); ok {
		photo = img.URL
	}
	return model.NewArtist(a.ID, a.Name, photo)
}

// ArtistsFromCatalog maps search results in order
func ArtistsFromCatalog(in []catalog.Artist) []model.Artist {
	out := make([]model.Artist, 0, len(in))
	for _, a := range in {
		out = append(out, ArtistFromCatalog(a))
	}
	return out
}

// TrackFromCatalog maps a top-tracks result
func TrackFromCatalog(t catalog.Track) model.Track {
	return model.NewTrack(t.Name, t.Album.Name, t.Album.Images, t.PreviewURL)
}

// TracksFromCatalog maps top-tracks results in order
func TracksFromCatalog(in []catalog.Track) []model.Track {
	out := make([]model.Track, 0, len(in))
	for _, t := range in {
		out = append(out, TrackFromCatalog(t))
	}
	return out
}
