package storage

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "smartlibrary-cli"

// KeyringStore persists values in the OS keychain/credential manager.
type KeyringStore struct{}

// NewKeyringStore creates a keyring-backed store.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (s *KeyringStore) Load(key string) (string, error) {
	value, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load %s from keyring: %w", key, err)
	}
	return value, nil
}

func (s *KeyringStore) Save(key, value string) error {
	if err := keyring.Set(service, key, value); err != nil {
		return fmt.Errorf("failed to save %s to keyring: %w", key, err)
	}
	return nil
}

func (s *KeyringStore) Clear(key string) error {
	if err := keyring.Delete(service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already cleared
		}
		return fmt.Errorf("failed to clear %s from keyring: %w", key, err)
	}
	return nil
}
