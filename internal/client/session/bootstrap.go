package session

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Loader yields a previously persisted user identity, or nil when none is
// stored. The credentials package provides the durable implementation.
type Loader interface {
	Load(ctx context.Context) (*User, error)
}

var restoreGroup singleflight.Group

// Restore populates the store from persisted credentials if, and only if,
// the current state is still anonymous. It is idempotent and cheap to call
// repeatedly: once a session exists the storage read is skipped entirely,
// and concurrent calls are collapsed into a single load.
//
// A loader miss (nil user) leaves the state anonymous and is not an error.
func Restore(ctx context.Context, store *Store, loader Loader) error {
	if !store.State().Anonymous() {
		return nil
	}

	_, err, _ := restoreGroup.Do("restore", func() (any, error) {
		// Re-check under the flight: another caller may have restored already.
		if !store.State().Anonymous() {
			return nil, nil
		}
		user, err := loader.Load(ctx)
		if err != nil {
			return nil, err
		}
		if user != nil {
			store.Dispatch(SetUser(*user))
		}
		return nil, nil
	})
	return err
}
