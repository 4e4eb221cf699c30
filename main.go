package main

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/spotify-streamer/internal/catalog"
	"github.com/ytget/spotify-streamer/internal/config"
	"github.com/ytget/spotify-streamer/internal/platform"
	"github.com/ytget/spotify-streamer/internal/session"
	"github.com/ytget/spotify-streamer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.spotify-streamer"
	AppName = "Spotify Streamer"

	WindowWidth  = 420
	WindowHeight = 720
)

func main() {
	// Log version information
	fmt.Printf("Spotify Streamer v%s starting...\n", version)

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewStreamerTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	}

	// Initialize services
	client := catalog.NewClient(env.CatalogOptions())
	images := platform.NewImageCache(nil, env.ImageCacheSize)
	loader := ui.NewAsyncImageLoader(images, fyne.Do)

	store := session.NewStore(myApp.Storage())
	restored, err := store.Restore()
	if err != nil && !errors.Is(err, session.ErrNoSnapshot) {
		log.Printf("Discarding saved session: %v", err)
	}

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, ui.Options{
		Catalog:  client,
		Loader:   loader,
		Post:     fyne.Do,
		Restored: restored,
	})

	// Save while backgrounded or stopped; an explicit quit drops the session
	keeper := session.NewKeeper(store, root.SaveState)
	saveSession := func() {
		if err := keeper.Save(); err != nil {
			log.Printf("Saving session: %v", err)
		}
	}
	myApp.Lifecycle().SetOnExitedForeground(saveSession)
	myApp.Lifecycle().SetOnStopped(func() {
		saveSession()
		root.Close()
		loader.Stop()
	})
	myWindow.SetCloseIntercept(func() {
		if err := keeper.Quit(); err != nil {
			log.Printf("Quit: %v", err)
		}
		myWindow.Close()
	})

	// Show and run
	myWindow.ShowAndRun()
}
