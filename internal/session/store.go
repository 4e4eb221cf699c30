package session

import (
	"errors"
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
)

// snapshotFile is the storage entry holding the last saved bundle
const snapshotFile = "session.parcel"

// ErrNoSnapshot is returned by Restore when nothing was saved
var ErrNoSnapshot = errors.New("no saved session")

// Storage is the subset of fyne.Storage the store needs
type Storage interface {
	Save(name string) (fyne.URIWriteCloser, error)
	Open(name string) (fyne.URIReadCloser, error)
	Remove(name string) error
	List() []string
}

// Store saves and restores one session bundle
type Store struct {
	storage Storage
}

// NewStore creates a store over the app's storage
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Save replaces the saved snapshot with b
func (s *Store) Save(b *Bundle) error {
	w, err := s.storage.Save(snapshotFile)
	if err != nil {
		return fmt.Errorf("opening snapshot for write: %w", err)
	}

	if _, err := w.Write(b.Encode()); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}

	log.Printf("Session saved: %d entries", b.Len())
	return nil
}

// Restore reads the saved snapshot and removes it, so a snapshot is
// consumed at most once.
func (s *Store) Restore() (*Bundle, error) {
	if !s.exists() {
		return nil, ErrNoSnapshot
	}

	r, err := s.storage.Open(snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	payload, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	if err := s.Clear(); err != nil {
		log.Printf("Failed to remove consumed snapshot: %v", err)
	}

	b, err := DecodeBundle(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	log.Printf("Session restored: %d entries", b.Len())
	return b, nil
}

// Clear removes the saved snapshot if there is one
func (s *Store) Clear() error {
	if !s.exists() {
		return nil
	}
	return s.storage.Remove(snapshotFile)
}

func (s *Store) exists() bool {
	for _, name := range s.storage.List() {
		if name == snapshotFile {
			return true
		}
	}
	return false
}
