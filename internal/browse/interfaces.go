package browse

import (
	"github.com/ytget/spotify-streamer/internal/model"
)

// Poster runs fn on the UI goroutine. The app passes fyne.Do.
type Poster func(fn func())

// Immediate is a Poster that runs fn on the calling goroutine
func Immediate(fn func()) {
	fn()
}

// LoadingView is the part of a screen a flow drives while it fetches.
// ShowLoading may be called again while the indicator is already visible.
type LoadingView interface {
	ShowLoading()
	HideLoading()
	ShowNoResults()
}

// ArtistView receives artist search results
type ArtistView interface {
	LoadingView
	SetArtists(artists []model.Artist)
}

// TrackView receives top-tracks results
type TrackView interface {
	LoadingView
	SetTracks(tracks []model.Track)
}
