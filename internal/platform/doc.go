// Package platform holds integration with the outside world that the UI
// builds on: fetching and caching remote images as Fyne resources.
package platform
