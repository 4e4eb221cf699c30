package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-streamer/internal/browse"
	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/model"
	"github.com/ytget/spotify-streamer/internal/parcel"
	"github.com/ytget/spotify-streamer/internal/session"
)

// SearchScreen lets the user search artists by name and pick one
type SearchScreen struct {
	localization *Localization
	notifier     Notifier
	presenter    *ArtistListPresenter
	search       *browse.ArtistSearch
	onArtist     func(payload []byte)

	entry     *widget.Entry
	searchBtn *widget.Button
	content   fyne.CanvasObject
}

// NewSearchScreen creates the search screen. onArtist receives the encoded
// artist when a result is tapped.
func NewSearchScreen(c catalog.Catalog, deps ScreenDeps, onArtist func(payload []byte)) *SearchScreen {
	s := &SearchScreen{
		localization: deps.Localization,
		notifier:     deps.Notifier,
		onArtist:     onArtist,
	}
	s.presenter = NewArtistListPresenter(deps.Loader, s.onArtistSelected)
	s.search = browse.NewArtistSearch(c, s, deps.Post)

	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder(s.localization.GetText(KeySearchHint))
	// Trigger search when user presses Enter in the search field
	s.entry.OnSubmitted = func(text string) {
		s.Submit(text)
	}

	s.searchBtn = widget.NewButtonWithIcon("", theme.SearchIcon(), func() {
		s.Submit(s.entry.Text)
	})
	s.searchBtn.Importance = widget.HighImportance

	top := container.NewBorder(nil, nil, nil, s.searchBtn, s.entry)
	s.content = container.NewBorder(top, nil, nil, nil, s.presenter.Widget())
	return s
}

// Submit searches for query. It returns false when nothing was started.
func (s *SearchScreen) Submit(query string) bool {
	return s.search.Submit(query)
}

// Presenter returns the artist list presenter
func (s *SearchScreen) Presenter() *ArtistListPresenter {
	return s.presenter
}

// Status returns the state of the latest search
func (s *SearchScreen) Status() model.FetchStatus {
	return s.search.Status()
}

// Wait blocks until started searches have delivered their results
func (s *SearchScreen) Wait() {
	s.search.Wait()
}

// Restore shows the artists saved in b. A damaged entry is dropped and the
// screen starts empty.
func (s *SearchScreen) Restore(b *session.Bundle) {
	if b == nil {
		return
	}
	artists, err := b.Artists()
	switch {
	case errors.Is(err, session.ErrNoEntry):
		return
	case err != nil:
		log.Printf("Search screen: discarding saved artists: %v", err)
		return
	}
	s.presenter.SetArtists(artists)
}

// ShowLoading implements browse.ArtistView
func (s *SearchScreen) ShowLoading() {
	s.notifier.ShowLoading()
}

// HideLoading implements browse.ArtistView
func (s *SearchScreen) HideLoading() {
	s.notifier.HideLoading()
}

// ShowNoResults implements browse.ArtistView
func (s *SearchScreen) ShowNoResults() {
	s.notifier.ShowToast(s.localization.GetText(KeyNoArtists))
}

// SetArtists implements browse.ArtistView
func (s *SearchScreen) SetArtists(artists []model.Artist) {
	s.presenter.SetArtists(artists)
}

func (s *SearchScreen) onArtistSelected(a model.Artist) {
	log.Printf("Artist selected: %s (%s)", a.Name, a.ID)
	if s.onArtist != nil {
		s.onArtist(parcel.EncodeArtist(a))
	}
}

// Title implements Screen
func (s *SearchScreen) Title() string {
	return s.localization.GetText(KeyAppTitle)
}

// Content implements Screen
func (s *SearchScreen) Content() fyne.CanvasObject {
	return s.content
}

// SaveState implements Screen
func (s *SearchScreen) SaveState(b *session.Bundle) {
	b.PutArtists(s.presenter.Artists())
}

// RefreshTexts implements Screen
func (s *SearchScreen) RefreshTexts() {
	s.entry.SetPlaceHolder(s.localization.GetText(KeySearchHint))
}

// Close implements Screen
func (s *SearchScreen) Close() {
	if s.search.Status().IsActive() {
		s.notifier.HideLoading()
	}
	s.search.Close()
	s.presenter.Release()
}
