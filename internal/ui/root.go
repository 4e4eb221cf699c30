package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-streamer/internal/browse"
	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/config"
	"github.com/ytget/spotify-streamer/internal/session"
)

// Options are the collaborators NewRootUI wires into the screens
type Options struct {
	Catalog catalog.Catalog
	Loader  ImageLoader
	// Post hands fetch results to the UI goroutine; fyne.Do when nil
	Post browse.Poster
	// Restored is the session saved when the app last stopped, if any
	Restored *session.Bundle
}

// RootUI represents the main UI structure: a header above a stack of
// screens, of which only the top one is shown.
type RootUI struct {
	window       fyne.Window
	catalog      catalog.Catalog
	settings     *config.Settings
	localization *Localization
	loader       ImageLoader
	post         browse.Poster

	screens []Screen
	search  *SearchScreen

	// Header
	titleLabel  *widget.Label
	backBtn     *widget.Button
	settingsBtn *widget.Button
	body        *fyne.Container

	// Loading indicator
	loadingPopup *widget.PopUp
	loadingLabel *widget.Label

	// Toast notification
	toastPopup *widget.PopUp
	toastTimer *time.Timer
	lastToast  string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts Options) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	post := opts.Post
	if post == nil {
		post = fyne.Do
	}

	ui := &RootUI{
		window:       window,
		catalog:      opts.Catalog,
		settings:     settings,
		localization: localization,
		loader:       opts.Loader,
		post:         post,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	ui.search = NewSearchScreen(ui.catalog, ui.screenDeps(), ui.OpenArtist)
	ui.push(ui.search)
	ui.restore(opts.Restored)

	log.Printf("RootUI initialized, language=%s country=%s", localization.GetCurrentLanguage(), settings.GetCountry())
	return ui
}

func (ui *RootUI) screenDeps() ScreenDeps {
	return ScreenDeps{
		Localization: ui.localization,
		Notifier:     ui,
		Loader:       ui.loader,
		Post:         ui.post,
	}
}

// setupUI creates the header and the screen area
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ui.backBtn = widget.NewButton(IconBack, func() { ui.Back() })
	ui.backBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, ui.backBtn, ui.settingsBtn, ui.titleLabel)
	swipeHeader := NewSwipeArea(header, func(g GestureType) {
		if g == GestureSwipeRight {
			ui.Back()
		}
	})

	ui.body = container.NewStack()
	content := container.NewBorder(
		container.NewVBox(swipeHeader, widget.NewSeparator()), // top
		nil, // bottom
		nil, // left
		nil, // right
		ui.body,
	)
	ui.window.SetContent(content)

	// Escape on desktop, the back key on mobile
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape || ev.Name == mobile.KeyBack {
			ui.Back()
		}
	})
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// restore rebuilds the screens saved in b
func (ui *RootUI) restore(b *session.Bundle) {
	if b == nil {
		return
	}
	ui.search.Restore(b)

	payload, ok := b.Get(session.KeyArtist)
	if !ok {
		return
	}
	if err := ui.openTracks(payload, b); err != nil {
		log.Printf("Restore: %v", err)
	}
}

// OpenArtist pushes a tracks screen for an encoded artist
func (ui *RootUI) OpenArtist(payload []byte) {
	if err := ui.openTracks(payload, nil); err != nil {
		log.Printf("Open artist: %v", err)
	}
}

func (ui *RootUI) openTracks(payload []byte, restored *session.Bundle) error {
	screen, err := NewTracksScreen(ui.catalog, ui.screenDeps(), payload, ui.settings.GetCountry)
	if err != nil {
		return err
	}
	ui.push(screen)
	screen.Start(restored)
	return nil
}

// Back closes the top screen. It returns false on the search screen.
func (ui *RootUI) Back() bool {
	if len(ui.screens) <= 1 {
		return false
	}

	top := ui.screens[len(ui.screens)-1]
	top.Close()
	ui.screens = ui.screens[:len(ui.screens)-1]
	ui.showTop()
	return true
}

// Top returns the visible screen
func (ui *RootUI) Top() Screen {
	return ui.screens[len(ui.screens)-1]
}

// Search returns the search screen at the bottom of the stack
func (ui *RootUI) Search() *SearchScreen {
	return ui.search
}

// Depth returns the number of stacked screens
func (ui *RootUI) Depth() int {
	return len(ui.screens)
}

func (ui *RootUI) push(s Screen) {
	ui.screens = append(ui.screens, s)
	ui.showTop()
}

func (ui *RootUI) showTop() {
	top := ui.Top()
	ui.body.Objects = []fyne.CanvasObject{top.Content()}
	ui.body.Refresh()
	ui.titleLabel.SetText(top.Title())
	if len(ui.screens) > 1 {
		ui.backBtn.Show()
	} else {
		ui.backBtn.Hide()
	}
}

// SaveState captures every open screen into a bundle
func (ui *RootUI) SaveState() *session.Bundle {
	b := session.NewBundle()
	for _, s := range ui.screens {
		s.SaveState(b)
	}
	return b
}

// Close shuts every screen down; pending results are dropped
func (ui *RootUI) Close() {
	for i := len(ui.screens) - 1; i >= 0; i-- {
		ui.screens[i].Close()
	}
	if ui.toastTimer != nil {
		ui.toastTimer.Stop()
	}
}

// ShowLoading shows the blocking loading indicator if it is not up already
func (ui *RootUI) ShowLoading() {
	if ui.loadingPopup == nil {
		ui.loadingLabel = widget.NewLabel(ui.localization.GetText(KeyLoading))
		ui.loadingLabel.Alignment = fyne.TextAlignCenter
		content := container.NewVBox(ui.loadingLabel, widget.NewProgressBarInfinite())
		ui.loadingPopup = widget.NewModalPopUp(content, ui.window.Canvas())
		ui.loadingPopup.Resize(fyne.NewSize(LoadingWidth, LoadingHeight))
	}
	if ui.loadingPopup.Visible() {
		return
	}
	ui.loadingLabel.SetText(ui.localization.GetText(KeyLoading))
	ui.loadingPopup.Show()
}

// HideLoading dismisses the loading indicator
func (ui *RootUI) HideLoading() {
	if ui.loadingPopup != nil {
		ui.loadingPopup.Hide()
	}
}

// IsLoading reports whether the loading indicator is visible
func (ui *RootUI) IsLoading() bool {
	return ui.loadingPopup != nil && ui.loadingPopup.Visible()
}

// ShowToast shows a short message near the bottom of the window, replacing
// any toast still visible.
func (ui *RootUI) ShowToast(message string) {
	if ui.toastPopup != nil {
		ui.toastPopup.Hide()
	}
	if ui.toastTimer != nil {
		ui.toastTimer.Stop()
	}

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	label.Alignment = fyne.TextAlignCenter

	toastPopup := widget.NewPopUp(container.NewPadded(label), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	if canvasSize.Width > 0 && canvasSize.Width-2*ToastMargin < toastSize.Width {
		toastSize.Width = canvasSize.Width - 2*ToastMargin
	}
	toastPos := fyne.NewPos((canvasSize.Width-toastSize.Width)/2, canvasSize.Height-toastSize.Height-ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	ui.toastPopup = toastPopup
	ui.lastToast = message
	log.Printf("Toast: %s", message)

	// Auto-hide after configured time
	ui.toastTimer = time.AfterFunc(ToastAutoHide, func() {
		ui.post(func() { toastPopup.Hide() })
	})
}

// LastToast returns the most recent toast message
func (ui *RootUI) LastToast() string {
	return ui.lastToast
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved(countryChanged, languageChanged bool) {
	if languageChanged {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}
	if countryChanged {
		if tracks, ok := ui.Top().(*TracksScreen); ok {
			tracks.Reload()
		}
	}
	ui.ShowToast(ui.localization.GetText(KeySettingsSaved))
}

// onLanguageChange handles language change from the menu
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	for _, s := range ui.screens {
		s.RefreshTexts()
	}
	ui.titleLabel.SetText(ui.Top().Title())
}
