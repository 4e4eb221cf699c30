package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-streamer/internal/browse"
	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/model"
	"github.com/ytget/spotify-streamer/internal/parcel"
	"github.com/ytget/spotify-streamer/internal/session"
)

// TracksScreen shows the top tracks of the artist it was opened with
type TracksScreen struct {
	localization *Localization
	notifier     Notifier
	presenter    *TrackListPresenter
	tracks       *browse.TopTracks
	country      func() string

	payload []byte
	artist  model.Artist

	subtitle *widget.Label
	content  fyne.CanvasObject
}

// NewTracksScreen creates a tracks screen from an encoded artist. country is
// read each time tracks are loaded.
func NewTracksScreen(c catalog.Catalog, deps ScreenDeps, payload []byte, country func() string) (*TracksScreen, error) {
	artist, err := parcel.DecodeArtist(payload)
	if err != nil {
		return nil, fmt.Errorf("opening tracks screen: %w", err)
	}

	s := &TracksScreen{
		localization: deps.Localization,
		notifier:     deps.Notifier,
		country:      country,
		payload:      payload,
		artist:       artist,
	}
	s.presenter = NewTrackListPresenter(deps.Loader, s.onTrackSelected)
	s.tracks = browse.NewTopTracks(c, s, deps.Post)

	s.subtitle = widget.NewLabel(s.localization.GetText(KeyTopTracksTitle))
	s.subtitle.TextStyle = fyne.TextStyle{Italic: true}
	s.content = container.NewBorder(s.subtitle, nil, nil, nil, s.presenter.Widget())
	return s, nil
}

// Start shows the tracks saved in restored, or loads them when there are
// none.
func (s *TracksScreen) Start(restored *session.Bundle) {
	if restored != nil {
		tracks, err := restored.Tracks()
		switch {
		case err == nil && len(tracks) > 0:
			s.presenter.SetTracks(tracks)
			return
		case err != nil && !errors.Is(err, session.ErrNoEntry):
			log.Printf("Tracks screen: discarding saved tracks: %v", err)
		}
	}
	s.Reload()
}

// Reload looks up the artist's top tracks for the current country
func (s *TracksScreen) Reload() bool {
	country := ""
	if s.country != nil {
		country = s.country()
	}
	return s.tracks.Load(s.artist.ID, country)
}

// Artist returns the artist the screen was opened with
func (s *TracksScreen) Artist() model.Artist {
	return s.artist
}

// Presenter returns the track list presenter
func (s *TracksScreen) Presenter() *TrackListPresenter {
	return s.presenter
}

// Status returns the state of the latest lookup
func (s *TracksScreen) Status() model.FetchStatus {
	return s.tracks.Status()
}

// Wait blocks until started lookups have delivered their results
func (s *TracksScreen) Wait() {
	s.tracks.Wait()
}

// ShowLoading implements browse.TrackView
func (s *TracksScreen) ShowLoading() {
	s.notifier.ShowLoading()
}

// HideLoading implements browse.TrackView
func (s *TracksScreen) HideLoading() {
	s.notifier.HideLoading()
}

// ShowNoResults implements browse.TrackView
func (s *TracksScreen) ShowNoResults() {
	s.notifier.ShowToast(s.localization.GetText(KeyNoTracks))
}

// SetTracks implements browse.TrackView
func (s *TracksScreen) SetTracks(tracks []model.Track) {
	s.presenter.SetTracks(tracks)
}

func (s *TracksScreen) onTrackSelected(t model.Track) {
	msg := fmt.Sprintf(s.localization.GetText(KeyNowPlayingTrack), t.Name)
	if t.PreviewURL == nil {
		msg += MiddleDotSeparator + s.localization.GetText(KeyNoPreview)
	}
	s.notifier.ShowToast(msg)
}

// Title implements Screen
func (s *TracksScreen) Title() string {
	return s.artist.Name
}

// Content implements Screen
func (s *TracksScreen) Content() fyne.CanvasObject {
	return s.content
}

// SaveState implements Screen
func (s *TracksScreen) SaveState(b *session.Bundle) {
	b.PutArtist(s.payload)
	b.PutTracks(s.presenter.Tracks())
}

// RefreshTexts implements Screen
func (s *TracksScreen) RefreshTexts() {
	s.subtitle.SetText(s.localization.GetText(KeyTopTracksTitle))
}

// Close implements Screen. A lookup still in flight is cancelled and its
// loading indicator dismissed.
func (s *TracksScreen) Close() {
	if s.tracks.Status().IsActive() {
		s.notifier.HideLoading()
	}
	s.tracks.Close()
	s.presenter.Release()
}
