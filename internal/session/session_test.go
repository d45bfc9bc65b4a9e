package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
	"github.com/Nafish32/smartlibrary-cli/internal/storage"
)

// fakeAuthAPI substitutes the gateway in tests
type fakeAuthAPI struct {
	loginResult    gateway.Result[gateway.LoginData]
	registerResult gateway.Result[json.RawMessage]
	loginCalls     int
	registerCalls  int
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds gateway.Credentials) gateway.Result[gateway.LoginData] {
	f.loginCalls++
	return f.loginResult
}

func (f *fakeAuthAPI) Register(ctx context.Context, input gateway.RegisterInput) gateway.Result[json.RawMessage] {
	f.registerCalls++
	return f.registerResult
}

func loggedInStore(t *testing.T, token, username, role string) *storage.MemoryStore {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(TokenKey, token))
	blob, err := json.Marshal(User{Username: username, Role: role})
	require.NoError(t, err)
	require.NoError(t, store.Save(UserInfoKey, string(blob)))
	return store
}

func TestHydrate_EmptyStorageIsAnonymous(t *testing.T) {
	m := New(storage.NewMemoryStore())

	assert.False(t, m.IsLoggedIn())
	assert.False(t, m.Loading(), "loading must be cleared after hydration")
	assert.Equal(t, GuestName, m.DisplayName())
}

func TestHydrate_ValidSession(t *testing.T) {
	store := loggedInStore(t, "t1", "alice", "ROLE_USER")

	m := New(store)

	require.True(t, m.IsLoggedIn())
	assert.Equal(t, "t1", m.Token())
	assert.Equal(t, "alice", m.DisplayName())
	assert.True(t, m.IsUser())
	assert.False(t, m.IsAdmin())
}

func TestHydrate_CorruptUserInfoClearsEverything(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(TokenKey, "t1"))
	require.NoError(t, store.Save(UserInfoKey, `{broken json`))

	m := New(store)

	assert.False(t, m.IsLoggedIn())
	assert.Empty(t, m.Token())

	_, err := store.Load(TokenKey)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "token key must be cleared")
	_, err = store.Load(UserInfoKey)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "userInfo key must be cleared")
}

func TestHydrate_TokenWithoutUserInfoClearsEverything(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(TokenKey, "t1"))

	m := New(store)

	assert.False(t, m.IsLoggedIn())
	assert.Equal(t, 0, store.Len(), "storage must be fully cleared")
}

func TestLogin_Success(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAuthAPI{
		loginResult: gateway.Result[gateway.LoginData]{
			Success: true,
			Data:    gateway.LoginData{Token: "t1", Username: "alice", Role: "ROLE_USER"},
		},
	}
	m := New(store)
	m.AttachGateway(api)

	res := m.Login(context.Background(), "alice", "secret")

	require.True(t, res.Success)
	assert.False(t, m.Loading())

	token, err := store.Load(TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)

	blob, err := store.Load(UserInfoKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","role":"ROLE_USER"}`, blob)

	assert.True(t, m.IsLoggedIn())
	assert.True(t, m.IsUser())
	assert.False(t, m.IsAdmin())
	assert.Equal(t, "alice", m.DisplayName())
}

func TestLogin_AdminRole(t *testing.T) {
	api := &fakeAuthAPI{
		loginResult: gateway.Result[gateway.LoginData]{
			Success: true,
			Data:    gateway.LoginData{Token: "t2", Username: "root", Role: "ROLE_ADMIN"},
		},
	}
	m := New(storage.NewMemoryStore())
	m.AttachGateway(api)

	res := m.Login(context.Background(), "root", "secret")

	require.True(t, res.Success)
	assert.True(t, m.IsAdmin())
	assert.False(t, m.IsUser())
}

func TestLogin_GatewayFailurePropagatesUnchanged(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAuthAPI{
		loginResult: gateway.Result[gateway.LoginData]{Error: "invalid credentials"},
	}
	m := New(store)
	m.AttachGateway(api)

	res := m.Login(context.Background(), "alice", "wrong")

	require.False(t, res.Success)
	assert.Equal(t, "invalid credentials", res.Error)
	assert.False(t, m.IsLoggedIn(), "failed login must not mutate session state")
	assert.Equal(t, 0, store.Len(), "failed login must not write storage")
}

func TestLogin_MalformedPayloadYieldsFallback(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAuthAPI{
		// Success without a token: a malformed response
		loginResult: gateway.Result[gateway.LoginData]{Success: true},
	}
	m := New(store)
	m.AttachGateway(api)

	res := m.Login(context.Background(), "alice", "secret")

	require.False(t, res.Success)
	assert.Equal(t, "An unexpected error occurred during login", res.Error)
	assert.False(t, m.IsLoggedIn())
	assert.Equal(t, 0, store.Len())
}

func TestRegister_FailurePropagatesWithoutStateChange(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAuthAPI{
		registerResult: gateway.Result[json.RawMessage]{Error: "invalid admin key"},
	}
	m := New(store)
	m.AttachGateway(api)

	res := m.Register(context.Background(), gateway.RegisterInput{
		Username: "bob",
		Password: "pw1234",
		Role:     "ADMIN",
		AdminKey: "wrong",
	})

	require.False(t, res.Success)
	assert.Equal(t, "invalid admin key", res.Error)
	assert.False(t, m.IsLoggedIn())
	assert.Equal(t, 0, store.Len())
}

func TestRegister_SuccessDoesNotImplyLogin(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAuthAPI{
		registerResult: gateway.Result[json.RawMessage]{Success: true},
	}
	m := New(store)
	m.AttachGateway(api)

	res := m.Register(context.Background(), gateway.RegisterInput{Username: "bob", Password: "pw1234"})

	require.True(t, res.Success)
	assert.False(t, m.IsLoggedIn(), "registration must not log the user in")
	assert.False(t, m.Loading())
	assert.Equal(t, 0, store.Len())
}

func TestLogout_Totality(t *testing.T) {
	store := loggedInStore(t, "t1", "alice", "ROLE_USER")
	m := New(store)
	require.True(t, m.IsLoggedIn())

	m.Logout()

	assert.False(t, m.IsLoggedIn())
	assert.Empty(t, m.Token())
	assert.Nil(t, m.CurrentUser())
	assert.Equal(t, GuestName, m.DisplayName())
	assert.Equal(t, 0, store.Len(), "both storage keys must be cleared")

	// Idempotent: logging out again is a no-op
	m.Logout()
	assert.False(t, m.IsLoggedIn())
}

func TestIsLoggedIn_NeverTrueWithPartialState(t *testing.T) {
	// Any sequence of hydrate/login/logout keeps token and user in
	// lockstep; a store holding only one of the two hydrates to anonymous.
	store := storage.NewMemoryStore()
	blob, _ := json.Marshal(User{Username: "alice", Role: "ROLE_USER"})
	require.NoError(t, store.Save(UserInfoKey, string(blob)))

	m := New(store)
	assert.False(t, m.IsLoggedIn(), "user info without token must not count as logged in")
}

func TestRoleNormalization(t *testing.T) {
	tests := []struct {
		role    string
		isAdmin bool
		isUser  bool
	}{
		{"ROLE_ADMIN", true, false},
		{"ROLE_USER", false, true},
		{"ADMIN", true, false},
		{"USER", false, true},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run("role "+tt.role, func(t *testing.T) {
			m := New(loggedInStore(t, "t1", "alice", tt.role))
			assert.Equal(t, tt.isAdmin, m.IsAdmin())
			assert.Equal(t, tt.isUser, m.IsUser())
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": expiry.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	m := New(loggedInStore(t, token, "alice", "ROLE_USER"))

	got, ok := m.TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(expiry))
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	m := New(loggedInStore(t, "not-a-jwt", "alice", "ROLE_USER"))

	_, ok := m.TokenExpiry()
	assert.False(t, ok)
}
