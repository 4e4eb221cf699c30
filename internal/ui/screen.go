package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/spotify-streamer/internal/browse"
	"github.com/ytget/spotify-streamer/internal/session"
)

// Screen is one page of the navigation stack
type Screen interface {
	Title() string
	Content() fyne.CanvasObject
	SaveState(b *session.Bundle)
	RefreshTexts()
	Close()
}

// Notifier is the window-level feedback shared by screens
type Notifier interface {
	ShowLoading()
	HideLoading()
	ShowToast(message string)
}

// ScreenDeps are the collaborators every screen is built with
type ScreenDeps struct {
	Localization *Localization
	Notifier     Notifier
	Loader       ImageLoader
	Post         browse.Poster
}
