package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func newThumbnail(placeholder fyne.Resource) *canvas.Image {
	img := canvas.NewImageFromResource(placeholder)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(ThumbnailSize, ThumbnailSize))
	return img
}

// ArtistRow shows an artist photo next to the artist name
type ArtistRow struct {
	widget.BaseWidget

	thumb *canvas.Image
	name  *widget.Label
}

// NewArtistRow creates an empty artist row
func NewArtistRow(placeholder fyne.Resource) *ArtistRow {
	r := &ArtistRow{
		thumb: newThumbnail(placeholder),
		name:  widget.NewLabel(""),
	}
	r.name.Truncation = fyne.TextTruncateEllipsis
	r.ExtendBaseWidget(r)
	return r
}

// Name returns the displayed artist name
func (r *ArtistRow) Name() string {
	return r.name.Text
}

// Thumbnail returns the row's image
func (r *ArtistRow) Thumbnail() *canvas.Image {
	return r.thumb
}

// CreateRenderer creates the widget renderer
func (r *ArtistRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, r.thumb, nil, container.NewVBox(layoutSpacer(), r.name))
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows tall enough to tap
func (r *ArtistRow) MinSize() fyne.Size {
	return r.BaseWidget.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// TrackRow shows album art next to the track and album names
type TrackRow struct {
	widget.BaseWidget

	thumb *canvas.Image
	name  *widget.Label
	album *widget.Label
}

// NewTrackRow creates an empty track row
func NewTrackRow(placeholder fyne.Resource) *TrackRow {
	r := &TrackRow{
		thumb: newThumbnail(placeholder),
		name:  widget.NewLabel(""),
		album: widget.NewLabel(""),
	}
	r.name.TextStyle = fyne.TextStyle{Bold: true}
	r.name.Truncation = fyne.TextTruncateEllipsis
	r.album.Truncation = fyne.TextTruncateEllipsis
	r.ExtendBaseWidget(r)
	return r
}

// Name returns the displayed track name
func (r *TrackRow) Name() string {
	return r.name.Text
}

// Album returns the displayed album name
func (r *TrackRow) Album() string {
	return r.album.Text
}

// Thumbnail returns the row's image
func (r *TrackRow) Thumbnail() *canvas.Image {
	return r.thumb
}

// CreateRenderer creates the widget renderer
func (r *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, r.thumb, nil, container.NewVBox(r.name, r.album))
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows tall enough to tap
func (r *TrackRow) MinSize() fyne.Size {
	return r.BaseWidget.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// layoutSpacer nudges a single label towards the vertical middle of a row
func layoutSpacer() fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, ThumbnailSize/4))
	return spacer
}
