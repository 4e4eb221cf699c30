package session

import (
	"bytes"
	"errors"
	"io"
	"net/url"
	"sort"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/spotify-streamer/internal/model"
	"github.com/ytget/spotify-streamer/internal/parcel"
)

// memStorage keeps files in memory
type memStorage struct {
	mu       sync.Mutex
	files    map[string][]byte
	failSave bool
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

type memWriter struct {
	bytes.Buffer
	name string
	s    *memStorage
}

func (w *memWriter) Close() error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.files[w.name] = w.Bytes()
	return nil
}

func (w *memWriter) URI() fyne.URI { return storage.NewFileURI("/mem/" + w.name) }

type memReader struct {
	io.Reader
	name string
}

func (r *memReader) Close() error  { return nil }
func (r *memReader) URI() fyne.URI { return storage.NewFileURI("/mem/" + r.name) }

func (m *memStorage) Save(name string) (fyne.URIWriteCloser, error) {
	if m.failSave {
		return nil, errors.New("read-only storage")
	}
	return &memWriter{name: name, s: m}, nil
}

func (m *memStorage) Open(name string) (fyne.URIReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return &memReader{Reader: bytes.NewReader(data), name: name}, nil
}

func (m *memStorage) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, name)
	return nil
}

func (m *memStorage) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.files))
	for n := range m.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestStoreSaveRestore(t *testing.T) {
	mem := newMemStorage()
	store := NewStore(mem)

	artists := []model.Artist{
		{ID: "1", Name: "Duran Duran", Photo: mustURL(t, "https://i.example/dd")},
		{ID: "2", Name: "No Photo"},
	}
	tracks := []model.Track{
		{Name: "Rio", AlbumName: "Rio", AlbumImageSmall: mustURL(t, "https://i.example/rio300")},
	}

	b := NewBundle()
	b.PutArtists(artists)
	b.PutTracks(tracks)
	b.PutArtist(parcel.EncodeArtist(artists[0]))
	require.NoError(t, store.Save(b))

	restored, err := store.Restore()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyArtist, KeyArtists, KeyTracks}, restored.Keys())

	gotArtists, err := restored.Artists()
	require.NoError(t, err)
	assert.Equal(t, artists, gotArtists)

	gotTracks, err := restored.Tracks()
	require.NoError(t, err)
	assert.Equal(t, tracks, gotTracks)

	payload, ok := restored.Get(KeyArtist)
	require.True(t, ok)
	gotArtist, err := parcel.DecodeArtist(payload)
	require.NoError(t, err)
	assert.Equal(t, artists[0], gotArtist)

	// consumed on restore
	_, err = store.Restore()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestStoreRestoreWithoutSnapshot(t *testing.T) {
	store := NewStore(newMemStorage())

	_, err := store.Restore()
	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.NoError(t, store.Clear())
}

func TestStoreRestoreMalformed(t *testing.T) {
	mem := newMemStorage()
	mem.files[snapshotFile] = []byte{0xff}
	store := NewStore(mem)

	_, err := store.Restore()
	assert.ErrorIs(t, err, parcel.ErrMalformed)
	assert.Empty(t, mem.List())
}

func TestStoreSaveError(t *testing.T) {
	mem := newMemStorage()
	mem.failSave = true

	err := NewStore(mem).Save(NewBundle())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only storage")
}

func TestBundleMissingEntries(t *testing.T) {
	b := NewBundle()

	_, err := b.Artists()
	assert.ErrorIs(t, err, ErrNoEntry)
	_, err = b.Tracks()
	assert.ErrorIs(t, err, ErrNoEntry)
	_, ok := b.Get(KeyArtist)
	assert.False(t, ok)
}

func TestBundleEncodeIsOrdered(t *testing.T) {
	a := NewBundle()
	a.Put("b", []byte{2})
	a.Put("a", []byte{1})

	b := NewBundle()
	b.Put("a", []byte{1})
	b.Put("b", []byte{2})

	assert.Equal(t, a.Encode(), b.Encode())

	decoded, err := DecodeBundle(a.Encode())
	require.NoError(t, err)
	v, ok := decoded.Get("b")
	require.True(t, ok)
	assert.Equal(t, []byte{2}, v)
}

func TestDecodeBundleMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"truncated key", []byte{1, 5, 'a'}},
		{"missing value", []byte{1, 1, 'a'}},
		{"too many entries", []byte{0xff, 0x01}},
		{"trailing bytes", []byte{0, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBundle(tt.payload)
			assert.ErrorIs(t, err, parcel.ErrMalformed)
		})
	}
}
