package session

import (
	"fmt"
	"sync"
)

// Keeper saves the session when the app is backgrounded or stopped, and
// drops it once the user quits, so only an interrupted run is restored.
type Keeper struct {
	store    *Store
	snapshot func() *Bundle

	mu       sync.Mutex
	quitting bool
}

// NewKeeper creates a keeper that saves what snapshot returns
func NewKeeper(store *Store, snapshot func() *Bundle) *Keeper {
	return &Keeper{store: store, snapshot: snapshot}
}

// Save stores the current snapshot. It does nothing after Quit.
func (k *Keeper) Save() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.quitting {
		return nil
	}
	return k.store.Save(k.snapshot())
}

// Quit records an explicit quit and removes any saved snapshot
func (k *Keeper) Quit() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.quitting = true
	if err := k.store.Clear(); err != nil {
		return fmt.Errorf("clearing snapshot on quit: %w", err)
	}
	return nil
}
