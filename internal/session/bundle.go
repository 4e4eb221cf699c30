package session

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ytget/spotify-streamer/internal/model"
	"github.com/ytget/spotify-streamer/internal/parcel"
)

// Fixed bundle keys
const (
	KeyArtists = "artists" // search screen results
	KeyTracks  = "tracks"  // tracks screen results
	KeyArtist  = "artist"  // artist shown by the tracks screen
)

// maxEntries bounds the entry count read from a payload
const maxEntries = 64

// ErrNoEntry is returned when a bundle has no value for a key
var ErrNoEntry = errors.New("no bundle entry")

// Bundle maps keys to encoded payloads
type Bundle struct {
	entries map[string][]byte
}

// NewBundle creates an empty bundle
func NewBundle() *Bundle {
	return &Bundle{entries: make(map[string][]byte)}
}

// Put stores a payload under key, replacing any previous one
func (b *Bundle) Put(key string, payload []byte) {
	b.entries[key] = payload
}

// Get returns the payload stored under key
func (b *Bundle) Get(key string) ([]byte, bool) {
	p, ok := b.entries[key]
	return p, ok
}

// Keys returns the keys in sorted order
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries
func (b *Bundle) Len() int {
	return len(b.entries)
}

// PutArtists stores the search results
func (b *Bundle) PutArtists(artists []model.Artist) {
	b.Put(KeyArtists, parcel.EncodeArtists(artists))
}

// Artists decodes the search results
func (b *Bundle) Artists() ([]model.Artist, error) {
	p, ok := b.Get(KeyArtists)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEntry, KeyArtists)
	}
	return parcel.DecodeArtists(p)
}

// PutTracks stores the top-tracks results
func (b *Bundle) PutTracks(tracks []model.Track) {
	b.Put(KeyTracks, parcel.EncodeTracks(tracks))
}

// Tracks decodes the top-tracks results
func (b *Bundle) Tracks() ([]model.Track, error) {
	p, ok := b.Get(KeyTracks)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEntry, KeyTracks)
	}
	return parcel.DecodeTracks(p)
}

// PutArtist stores the artist handed to the tracks screen
func (b *Bundle) PutArtist(payload []byte) {
	b.Put(KeyArtist, payload)
}

// Encode writes the entry count followed by key and payload pairs in key
// order.
func (b *Bundle) Encode() []byte {
	w := parcel.NewWriter()
	keys := b.Keys()
	w.WriteUvarint(uint64(len(keys)))
	for _, k := range keys {
		w.WriteString(k)
		w.WriteBytes(b.entries[k])
	}
	return w.Bytes()
}

// DecodeBundle reads a payload written by Bundle.Encode
func DecodeBundle(payload []byte) (*Bundle, error) {
	r := parcel.NewReader(payload)

	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if n > maxEntries {
		return nil, fmt.Errorf("%w: %d bundle entries", parcel.ErrMalformed, n)
	}

	b := NewBundle()
	for i := uint64(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		value, err := r.ReadBytes()
		if err != nil {
			return nil, err
		}
		b.Put(key, value)
	}

	if rest := r.Remaining(); rest != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", parcel.ErrMalformed, rest)
	}
	return b, nil
}
