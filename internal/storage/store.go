package storage

import "errors"

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is the durable key-value persistence used for session state.
// The session layer reads it once at startup and writes it on login/logout only.
type Store interface {
	Load(key string) (string, error)
	Save(key, value string) error
	// Clear removes the key. Clearing an absent key is not an error.
	Clear(key string) error
}

// Open returns the store for the configured backend.
// "keyring" uses the OS keychain/credential manager, "file" uses
// plain files under the user config directory.
func Open(backend string) (Store, error) {
	switch backend {
	case "", "keyring":
		return NewKeyringStore(), nil
	case "file":
		return NewFileStore("")
	default:
		return nil, errors.New("unknown storage backend: " + backend)
	}
}
