package parcel

import (
	"fmt"

	"github.com/ytget/spotify-streamer/internal/model"
)

// Payload kinds, written as the first byte of every top-level payload
const (
	kindArtist     byte = 'a'
	kindTrack      byte = 't'
	kindArtistList byte = 'A'
	kindTrackList  byte = 'T'
)

// maxListLen bounds decoded list counts
const maxListLen = 10000

// WriteArtist appends the artist fields: id, name, photo ("" when absent)
func WriteArtist(w *Writer, a model.Artist) {
	w.WriteString(a.ID)
	w.WriteString(a.Name)
	w.WriteString(model.URIString(a.Photo))
}

// ReadArtist reads fields written by WriteArtist
func ReadArtist(r *Reader) (model.Artist, error) {
	var (
		a     model.Artist
		photo string
		err   error
	)
	if a.ID, err = r.ReadString(); err != nil {
		return model.Artist{}, fmt.Errorf("artist id: %w", err)
	}
	if a.Name, err = r.ReadString(); err != nil {
		return model.Artist{}, fmt.Errorf("artist name: %w", err)
	}
	if photo, err = r.ReadString(); err != nil {
		return model.Artist{}, fmt.Errorf("artist photo: %w", err)
	}
	a.Photo = model.ParseURI(photo)
	return a, nil
}

// WriteTrack appends the track fields: name, album, small art, large art,
// preview. Absent URIs are written as "".
func WriteTrack(w *Writer, t model.Track) {
	w.WriteString(t.Name)
	w.WriteString(t.AlbumName)
	w.WriteString(model.URIString(t.AlbumImageSmall))
	w.WriteString(model.URIString(t.AlbumImageLarge))
	w.WriteString(model.URIString(t.PreviewURL))
}

// ReadTrack reads fields written by WriteTrack
func ReadTrack(r *Reader) (model.Track, error) {
	fields := make([]string, 5)
	names := []string{"name", "album name", "small image", "large image", "preview"}
	for i := range fields {
		s, err := r.ReadString()
		if err != nil {
			return model.Track{}, fmt.Errorf("track %s: %w", names[i], err)
		}
		fields[i] = s
	}

	return model.Track{
		Name:            fields[0],
		AlbumName:       fields[1],
		AlbumImageSmall: model.ParseURI(fields[2]),
		AlbumImageLarge: model.ParseURI(fields[3]),
		PreviewURL:      model.ParseURI(fields[4]),
	}, nil
}

// EncodeArtist encodes a single artist, as used for the screen handoff
func EncodeArtist(a model.Artist) []byte {
	w := NewWriter()
	_ = w.WriteByte(kindArtist)
	WriteArtist(w, a)
	return w.Bytes()
}

// DecodeArtist decodes a payload produced by EncodeArtist
func DecodeArtist(payload []byte) (model.Artist, error) {
	r := NewReader(payload)
	if err := expectKind(r, kindArtist); err != nil {
		return model.Artist{}, err
	}
	a, err := ReadArtist(r)
	if err != nil {
		return model.Artist{}, err
	}
	return a, r.expectEnd()
}

// EncodeTrack encodes a single track
func EncodeTrack(t model.Track) []byte {
	w := NewWriter()
	_ = w.WriteByte(kindTrack)
	WriteTrack(w, t)
	return w.Bytes()
}

// DecodeTrack decodes a payload produced by EncodeTrack
func DecodeTrack(payload []byte) (model.Track, error) {
	r := NewReader(payload)
	if err := expectKind(r, kindTrack); err != nil {
		return model.Track{}, err
	}
	t, err := ReadTrack(r)
	if err != nil {
		return model.Track{}, err
	}
	return t, r.expectEnd()
}

// EncodeArtists encodes an ordered artist list
func EncodeArtists(artists []model.Artist) []byte {
	w := NewWriter()
	_ = w.WriteByte(kindArtistList)
	w.WriteUvarint(uint64(len(artists)))
	for _, a := range artists {
		WriteArtist(w, a)
	}
	return w.Bytes()
}

// DecodeArtists decodes a payload produced by EncodeArtists
func DecodeArtists(payload []byte) ([]model.Artist, error) {
	r := NewReader(payload)
	if err := expectKind(r, kindArtistList); err != nil {
		return nil, err
	}
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}

	artists := make([]model.Artist, 0, n)
	for i := 0; i < n; i++ {
		a, err := ReadArtist(r)
		if err != nil {
			return nil, fmt.Errorf("artist %d: %w", i, err)
		}
		artists = append(artists, a)
	}
	return artists, r.expectEnd()
}

// EncodeTracks encodes an ordered track list
func EncodeTracks(tracks []model.Track) []byte {
	w := NewWriter()
	_ = w.WriteByte(kindTrackList)
	w.WriteUvarint(uint64(len(tracks)))
	for _, t := range tracks {
		WriteTrack(w, t)
	}
	return w.Bytes()
}

// DecodeTracks decodes a payload produced by EncodeTracks
func DecodeTracks(payload []byte) ([]model.Track, error) {
	r := NewReader(payload)
	if err := expectKind(r, kindTrackList); err != nil {
		return nil, err
	}
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}

	tracks := make([]model.Track, 0, n)
	for i := 0; i < n; i++ {
		t, err := ReadTrack(r)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, r.expectEnd()
}

func expectKind(r *Reader, want byte) error {
	got, err := r.ReadByte()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: payload kind %q, expected %q", ErrMalformed, got, want)
	}
	return nil
}

func readCount(r *Reader) (int, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if n > maxListLen {
		return 0, fmt.Errorf("%w: list length %d exceeds %d", ErrMalformed, n, maxListLen)
	}
	return int(n), nil
}
