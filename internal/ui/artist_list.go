package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-streamer/internal/model"
)

// ArtistListPresenter owns the ordered artist results and renders them as
// list rows.
type ArtistListPresenter struct {
	artists     []model.Artist
	loader      ImageLoader
	placeholder fyne.Resource
	onSelect    func(model.Artist)
	list        *widget.List
	rows        []*ArtistRow
}

// NewArtistListPresenter creates an empty presenter. onSelect runs when a row
// is tapped.
func NewArtistListPresenter(loader ImageLoader, onSelect func(model.Artist)) *ArtistListPresenter {
	p := &ArtistListPresenter{
		loader:      loader,
		placeholder: theme.AccountIcon(),
		onSelect:    onSelect,
	}

	p.list = widget.NewList(
		p.Len,
		func() fyne.CanvasObject { return p.newRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { p.RenderRow(id, obj) },
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		p.list.Unselect(id)
		if id >= 0 && id < len(p.artists) && p.onSelect != nil {
			p.onSelect(p.artists[id])
		}
	}
	return p
}

// SetArtists replaces the whole collection
func (p *ArtistListPresenter) SetArtists(artists []model.Artist) {
	p.artists = append([]model.Artist(nil), artists...)
	p.list.ScrollToOffset(0)
	p.list.Refresh()
}

// Artists returns a copy of the collection
func (p *ArtistListPresenter) Artists() []model.Artist {
	return append([]model.Artist(nil), p.artists...)
}

// Len returns the number of artists
func (p *ArtistListPresenter) Len() int {
	return len(p.artists)
}

// Widget returns the list widget
func (p *ArtistListPresenter) Widget() *widget.List {
	return p.list
}

// RenderRow binds artist i to recycled, or to a new row when recycled is not
// an artist row. The photo is reset to the placeholder before the image
// loader is asked for the real one.
func (p *ArtistListPresenter) RenderRow(i int, recycled fyne.CanvasObject) fyne.CanvasObject {
	row, ok := recycled.(*ArtistRow)
	if !ok {
		row = p.newRow()
	}

	setImage(row.thumb, p.placeholder)
	if i < 0 || i >= len(p.artists) {
		row.name.SetText("")
		p.loader.Load("", row.thumb)
		return row
	}

	a := p.artists[i]
	row.name.SetText(a.Name)
	p.loader.Load(a.PhotoString(), row.thumb)
	return row
}

func (p *ArtistListPresenter) newRow() *ArtistRow {
	row := NewArtistRow(p.placeholder)
	p.rows = append(p.rows, row)
	return row
}

// Release unbinds every row from the image loader. The presenter must not
// be rendered afterwards.
func (p *ArtistListPresenter) Release() {
	for _, row := range p.rows {
		p.loader.Load("", row.thumb)
	}
	p.rows = nil
}
