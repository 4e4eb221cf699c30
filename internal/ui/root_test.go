package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/spotify-streamer/internal/config"
	"github.com/ytget/spotify-streamer/internal/model"
	"github.com/ytget/spotify-streamer/internal/session"
)

type rootFixture struct {
	app   fyne.App
	ui    *RootUI
	queue *queuePoster
}

func newRootFixture(t *testing.T, restored *session.Bundle) *rootFixture {
	t.Helper()

	app := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	q := &queuePoster{}
	ui := NewRootUI(w, app, Options{
		Catalog:  newMockCatalog(t),
		Loader:   &recordingLoader{},
		Post:     q.post,
		Restored: restored,
	})
	t.Cleanup(ui.Close)

	return &rootFixture{app: app, ui: ui, queue: q}
}

// openArtist opens the tracks screen and waits for its tracks
func (f *rootFixture) openArtist(t *testing.T, id, name string) *TracksScreen {
	t.Helper()

	f.ui.OpenArtist(artistPayload(id, name))
	screen, ok := f.ui.Top().(*TracksScreen)
	require.True(t, ok)
	screen.Wait()
	f.queue.drain()
	return screen
}

func TestRootUIStartsOnSearch(t *testing.T) {
	f := newRootFixture(t, nil)

	assert.Equal(t, 1, f.ui.Depth())
	assert.Same(t, f.ui.Search(), f.ui.Top())
	assert.False(t, f.ui.Back())
	assert.False(t, f.ui.backBtn.Visible())
	assert.Equal(t, "Spotify Streamer", f.ui.titleLabel.Text)
}

func TestRootUINavigation(t *testing.T) {
	f := newRootFixture(t, nil)

	f.ui.OpenArtist(artistPayload(duranDuranID, "Duran Duran"))
	assert.True(t, f.ui.IsLoading())

	screen := f.ui.Top().(*TracksScreen)
	screen.Wait()
	f.queue.drain()

	assert.False(t, f.ui.IsLoading())
	assert.Equal(t, 2, f.ui.Depth())
	assert.Equal(t, "Duran Duran", f.ui.titleLabel.Text)
	assert.True(t, f.ui.backBtn.Visible())
	assert.Equal(t, 4, screen.Presenter().Len())

	assert.True(t, f.ui.Back())
	assert.Equal(t, 1, f.ui.Depth())
	assert.Equal(t, model.FetchStatusClosed, screen.Status())
	assert.Equal(t, "Spotify Streamer", f.ui.titleLabel.Text)
}

func TestRootUIBackWhileLoading(t *testing.T) {
	f := newRootFixture(t, nil)

	f.ui.OpenArtist(artistPayload(duranDuranID, "Duran Duran"))
	screen := f.ui.Top().(*TracksScreen)
	require.True(t, f.ui.IsLoading())

	f.ui.Back()
	assert.False(t, f.ui.IsLoading())

	screen.Wait()
	f.queue.drain()
	assert.Equal(t, 0, screen.Presenter().Len())
	assert.False(t, f.ui.IsLoading())
}

func TestRootUIEscapeGoesBack(t *testing.T) {
	f := newRootFixture(t, nil)
	f.openArtist(t, duranDuranID, "Duran Duran")

	f.ui.window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.Equal(t, 1, f.ui.Depth())
}

func TestRootUIOpenArtistBadPayload(t *testing.T) {
	f := newRootFixture(t, nil)

	f.ui.OpenArtist([]byte{0x01})

	assert.Equal(t, 1, f.ui.Depth())
}

func TestRootUISaveAndRestore(t *testing.T) {
	f := newRootFixture(t, nil)
	f.ui.Search().Submit("duran")
	f.ui.Search().Wait()
	f.queue.drain()
	f.openArtist(t, duranDuranID, "Duran Duran")

	b := f.ui.SaveState()
	assert.ElementsMatch(t, []string{session.KeyArtists, session.KeyArtist, session.KeyTracks}, b.Keys())

	decoded, err := session.DecodeBundle(b.Encode())
	require.NoError(t, err)

	restored := newRootFixture(t, decoded)
	require.Equal(t, 2, restored.ui.Depth())

	screen := restored.ui.Top().(*TracksScreen)
	assert.Equal(t, duranDuranID, screen.Artist().ID)
	assert.Equal(t, model.FetchStatusIdle, screen.Status())
	assert.Equal(t, 4, screen.Presenter().Len())
	assert.Equal(t, 3, restored.ui.Search().Presenter().Len())
	assert.False(t, restored.ui.IsLoading())

	assert.True(t, restored.ui.Back())
	assert.Same(t, restored.ui.Search(), restored.ui.Top())
}

func TestRootUIRestoreWithoutTracks(t *testing.T) {
	b := session.NewBundle()
	b.PutArtist(artistPayload(duranDuranID, "Duran Duran"))

	f := newRootFixture(t, b)
	require.Equal(t, 2, f.ui.Depth())

	screen := f.ui.Top().(*TracksScreen)
	screen.Wait()
	f.queue.drain()

	assert.Equal(t, model.FetchStatusLoaded, screen.Status())
	assert.Equal(t, 4, screen.Presenter().Len())
}

func TestRootUICountryChangeReloads(t *testing.T) {
	f := newRootFixture(t, nil)
	screen := f.openArtist(t, duranDuranID, "Duran Duran")

	settings := config.NewSettings(f.app)
	require.NoError(t, settings.SetCountry("GB"))
	f.ui.onSettingsSaved(true, false)

	assert.Equal(t, model.FetchStatusLoading, screen.Status())
	screen.Wait()
	f.queue.drain()
	assert.Equal(t, model.FetchStatusLoaded, screen.Status())
	assert.Equal(t, "Settings saved", f.ui.LastToast())
}

func TestRootUILanguageChange(t *testing.T) {
	f := newRootFixture(t, nil)

	settings := config.NewSettings(f.app)
	settings.SetLanguage("ru")
	f.ui.onSettingsSaved(false, true)

	assert.Equal(t, "ru", f.ui.localization.GetCurrentLanguage())
	assert.Equal(t, f.ui.localization.GetText(KeySearchHint), f.ui.Search().entry.PlaceHolder)
	assert.Equal(t, f.ui.localization.GetText(KeySettingsSaved), f.ui.LastToast())
}

func TestRootUIMenuLanguageChange(t *testing.T) {
	f := newRootFixture(t, nil)

	f.ui.onLanguageChange("pt")

	assert.Equal(t, "pt", f.ui.localization.GetCurrentLanguage())
	assert.Equal(t, "pt", config.NewSettings(f.app).GetLanguage())
}

func TestRootUILoadingIsIdempotent(t *testing.T) {
	f := newRootFixture(t, nil)

	f.ui.ShowLoading()
	f.ui.ShowLoading()
	assert.True(t, f.ui.IsLoading())

	f.ui.HideLoading()
	assert.False(t, f.ui.IsLoading())
	f.ui.HideLoading()
	assert.False(t, f.ui.IsLoading())
}

func TestRootUIToast(t *testing.T) {
	f := newRootFixture(t, nil)

	f.ui.ShowToast("first")
	f.ui.ShowToast("second")

	assert.Equal(t, "second", f.ui.LastToast())
	assert.True(t, f.ui.toastPopup.Visible())
}
