// Package ui contains the Fyne user interface: a search screen listing
// artists and a tracks screen listing an artist's top tracks, stacked on one
// window with a shared header, loading indicator and toast. All UI strings are
// localized via Localization.
package ui
