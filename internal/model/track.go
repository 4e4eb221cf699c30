package model

import (
	"net/url"
)

// Track is one entry of an artist's top tracks
type Track struct {
	Name            string
	AlbumName       string
	AlbumImageSmall *url.URL // ~200px wide, nil if the album has no art
	AlbumImageLarge *url.URL // ~640px wide, nil if the album has no art
	PreviewURL      *url.URL // 30 second clip, nil if the catalog has none
}

// NewTrack builds a Track from the catalog's album image list, picking the
// small and large art with SelectImage.
func NewTrack(name, albumName string, albumImages []Image, preview string) Track {
	t := Track{
		Name:       name,
		AlbumName:  albumName,
		PreviewURL: ParseURI(preview),
	}

	if small, match := SelectImage(albumImages, SmallImageWidth); match != MatchNone {
		t.AlbumImageSmall = ParseURI(small.URL)
	}
	if large, match := SelectImage(albumImages, LargeImageWidth); match != MatchNone {
		t.AlbumImageLarge = ParseURI(large.URL)
	}

	return t
}

// HasThumbnail reports whether there is small album art to load
func (t Track) HasThumbnail() bool {
	return t.AlbumImageSmall != nil
}

// String returns "name, album albumName"
func (t Track) String() string {
	return t.Name + ", album " + t.AlbumName
}
