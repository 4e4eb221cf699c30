package model

import (
	"net/url"
)

// Artist is a single artist search result
type Artist struct {
	ID    string
	Name  string
	Photo *url.URL // nil when the catalog has no picture
}

// NewArtist builds an Artist from raw strings. An empty or unparsable photo
// leaves Photo nil.
func NewArtist(id, name, photo string) Artist {
	return Artist{
		ID:    id,
		Name:  name,
		Photo: ParseURI(photo),
	}
}

// HasPhoto reports whether the artist has a picture to load
func (a Artist) HasPhoto() bool {
	return a.Photo != nil
}

// PhotoString returns the photo URL or "" when absent
func (a Artist) PhotoString() string {
	return URIString(a.Photo)
}

// String returns the display name
func (a Artist) String() string {
	return a.Name
}

// ParseURI parses an absolute URI. It returns nil for "" and for anything that
// is not an absolute URI, so callers can treat the result as optional.
func ParseURI(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// URIString is the inverse of ParseURI: nil becomes "".
func URIString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}
