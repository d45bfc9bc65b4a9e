package commands

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/Nafish32/smartlibrary-cli/internal/config"
	"github.com/Nafish32/smartlibrary-cli/internal/session"
	"github.com/Nafish32/smartlibrary-cli/internal/storage"
)

// newTestEnv wires a command environment against a mock backend.
// Seed the store before calling; the session hydrates at construction.
func newTestEnv(t *testing.T, serverURL string, store *storage.MemoryStore, errOut io.Writer) *env {
	t.Helper()

	if store == nil {
		store = storage.NewMemoryStore()
	}
	if errOut == nil {
		errOut = io.Discard
	}

	cfg := &config.Config{
		API:  config.APIConfig{BaseURL: serverURL},
		Chat: config.ChatConfig{Language: "en"},
	}

	return buildEnv(cfg, store, errOut)
}

// seededStore returns a store holding a valid persisted session.
func seededStore(t *testing.T, token, username, role string) *storage.MemoryStore {
	t.Helper()

	store := storage.NewMemoryStore()
	if err := store.Save(session.TokenKey, token); err != nil {
		t.Fatalf("failed to seed token: %v", err)
	}
	blob, err := json.Marshal(session.User{Username: username, Role: role})
	if err != nil {
		t.Fatalf("failed to marshal user: %v", err)
	}
	if err := store.Save(session.UserInfoKey, string(blob)); err != nil {
		t.Fatalf("failed to seed user info: %v", err)
	}
	return store
}
