package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-streamer/internal/model"
)

// TrackListPresenter owns the ordered top tracks and renders them as list
// rows.
type TrackListPresenter struct {
	tracks      []model.Track
	loader      ImageLoader
	placeholder fyne.Resource
	onSelect    func(model.Track)
	list        *widget.List
	rows        []*TrackRow
}

// NewTrackListPresenter creates an empty presenter. onSelect runs when a row
// is tapped.
func NewTrackListPresenter(loader ImageLoader, onSelect func(model.Track)) *TrackListPresenter {
	p := &TrackListPresenter{
		loader:      loader,
		placeholder: theme.MediaMusicIcon(),
		onSelect:    onSelect,
	}

	p.list = widget.NewList(
		p.Len,
		func() fyne.CanvasObject { return p.newRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { p.RenderRow(id, obj) },
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		p.list.Unselect(id)
		if id >= 0 && id < len(p.tracks) && p.onSelect != nil {
			p.onSelect(p.tracks[id])
		}
	}
	return p
}

// SetTracks replaces the whole collection
func (p *TrackListPresenter) SetTracks(tracks []model.Track) {
	p.tracks = append([]model.Track(nil), tracks...)
	p.list.ScrollToOffset(0)
	p.list.Refresh()
}

// Tracks returns a copy of the collection
func (p *TrackListPresenter) Tracks() []model.Track {
	return append([]model.Track(nil), p.tracks...)
}

// Len returns the number of tracks
func (p *TrackListPresenter) Len() int {
	return len(p.tracks)
}

// Widget returns the list widget
func (p *TrackListPresenter) Widget() *widget.List {
	return p.list
}

// RenderRow binds track i to recycled, or to a new row when recycled is not
// a track row. The album art is reset to the placeholder before the image
// loader is asked for the small art.
func (p *TrackListPresenter) RenderRow(i int, recycled fyne.CanvasObject) fyne.CanvasObject {
	row, ok := recycled.(*TrackRow)
	if !ok {
		row = p.newRow()
	}

	setImage(row.thumb, p.placeholder)
	if i < 0 || i >= len(p.tracks) {
		row.name.SetText("")
		row.album.SetText("")
		p.loader.Load("", row.thumb)
		return row
	}

	t := p.tracks[i]
	row.name.SetText(t.Name)
	row.album.SetText(t.AlbumName)
	p.loader.Load(model.URIString(t.AlbumImageSmall), row.thumb)
	return row
}

func (p *TrackListPresenter) newRow() *TrackRow {
	row := NewTrackRow(p.placeholder)
	p.rows = append(p.rows, row)
	return row
}

// Release unbinds every row from the image loader. The presenter must not
// be rendered afterwards.
func (p *TrackListPresenter) Release() {
	for _, row := range p.rows {
		p.loader.Load("", row.thumb)
	}
	p.rows = nil
}
