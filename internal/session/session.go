package session

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
	"github.com/Nafish32/smartlibrary-cli/internal/storage"
)

// Storage keys. These two keys are the entire durable session surface.
const (
	TokenKey    = "token"
	UserInfoKey = "userInfo"
)

// Normalized role values. The backend sends Spring-style roles
// (ROLE_USER, ROLE_ADMIN); predicates strip the prefix.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// GuestName is the display name used when nobody is logged in.
const GuestName = "Guest"

const (
	unexpectedLoginError    = "An unexpected error occurred during login"
	unexpectedRegisterError = "An unexpected error occurred during registration"
)

// User is the identity blob persisted under UserInfoKey.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthAPI is the slice of the gateway the session manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, creds gateway.Credentials) gateway.Result[gateway.LoginData]
	Register(ctx context.Context, input gateway.RegisterInput) gateway.Result[json.RawMessage]
}

// Manager owns the authentication lifecycle: the current user identity,
// the bearer token and the loading flag. Durable storage is read once at
// construction (hydration) and written on login/logout only. The token
// and user blob are kept in lockstep; a corrupt user blob forces a full
// logout, never a half-authenticated state.
type Manager struct {
	store   storage.Store
	api     AuthAPI
	log     zerolog.Logger
	token   string
	user    *User
	loading bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for session diagnostics
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// New creates a session manager and hydrates it from durable storage.
func New(store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.hydrate()
	return m
}

// AttachGateway wires the gateway in after construction. The gateway
// reads the token from this manager, so the two are built in sequence.
func (m *Manager) AttachGateway(api AuthAPI) {
	m.api = api
}

// hydrate reconstructs the session from storage. A missing token means
// anonymous; a stored token with an unreadable or unparseable user blob
// triggers the same total teardown as Logout.
func (m *Manager) hydrate() {
	m.loading = true
	defer func() { m.loading = false }()

	token, err := m.store.Load(TokenKey)
	if err != nil || token == "" {
		return
	}

	blob, err := m.store.Load(UserInfoKey)
	if err != nil {
		m.log.Warn().Msg("Stored token has no user info, clearing session")
		m.Logout()
		return
	}

	var user User
	if err := json.Unmarshal([]byte(blob), &user); err != nil || user.Username == "" {
		m.log.Warn().Msg("Stored user info is corrupt, clearing session")
		m.Logout()
		return
	}

	m.token = token
	m.user = &user

	if expiry, ok := m.TokenExpiry(); ok && expiry.Before(time.Now()) {
		m.log.Warn().Time("expired_at", expiry).Msg("Stored token is expired")
	}
}

// Login authenticates and, on success, persists the token and user info
// together before updating in-memory state. Gateway failures propagate
// unchanged; session state is only mutated on the success path.
func (m *Manager) Login(ctx context.Context, username, password string) gateway.Result[gateway.LoginData] {
	m.loading = true
	defer func() { m.loading = false }()

	if m.api == nil {
		return gateway.Result[gateway.LoginData]{Error: unexpectedLoginError}
	}

	res := m.api.Login(ctx, gateway.Credentials{Username: username, Password: password})
	if !res.Success {
		return res
	}

	if res.Data.Token == "" || res.Data.Username == "" {
		m.log.Error().Msg("Login response is missing token or username")
		return gateway.Result[gateway.LoginData]{Error: unexpectedLoginError}
	}

	user := User{Username: res.Data.Username, Role: res.Data.Role}
	blob, err := json.Marshal(user)
	if err != nil {
		return gateway.Result[gateway.LoginData]{Error: unexpectedLoginError}
	}

	if err := m.store.Save(TokenKey, res.Data.Token); err != nil {
		m.log.Error().Err(err).Msg("Failed to persist token")
		return gateway.Result[gateway.LoginData]{Error: unexpectedLoginError}
	}
	if err := m.store.Save(UserInfoKey, string(blob)); err != nil {
		// Keep the two keys in lockstep
		_ = m.store.Clear(TokenKey)
		m.log.Error().Err(err).Msg("Failed to persist user info")
		return gateway.Result[gateway.LoginData]{Error: unexpectedLoginError}
	}

	m.token = res.Data.Token
	m.user = &user

	return res
}

// Register creates an account. A successful registration never implies a
// login: session state is untouched and the caller is expected to run
// the login flow separately.
func (m *Manager) Register(ctx context.Context, input gateway.RegisterInput) gateway.Result[json.RawMessage] {
	m.loading = true
	defer func() { m.loading = false }()

	if m.api == nil {
		return gateway.Result[json.RawMessage]{Error: unexpectedRegisterError}
	}

	return m.api.Register(ctx, input)
}

// Logout clears both storage keys and both in-memory fields. It is
// total and idempotent, and makes no network call.
func (m *Manager) Logout() {
	_ = m.store.Clear(TokenKey)
	_ = m.store.Clear(UserInfoKey)
	m.token = ""
	m.user = nil
}

// Token returns the current bearer token, or empty when anonymous.
// This is what the gateway reads at call time.
func (m *Manager) Token() string {
	return m.token
}

// Loading reports whether a hydrate/login/register call is in flight.
func (m *Manager) Loading() bool {
	return m.loading
}

// IsLoggedIn requires both the token and the user identity. Either one
// alone is treated as a corrupt session, not an authenticated one.
func (m *Manager) IsLoggedIn() bool {
	return m.token != "" && m.user != nil
}

// IsAdmin reports whether the current user holds the admin role
func (m *Manager) IsAdmin() bool {
	return m.user != nil && normalizeRole(m.user.Role) == RoleAdmin
}

// IsUser reports whether the current user holds the member role
func (m *Manager) IsUser() bool {
	return m.user != nil && normalizeRole(m.user.Role) == RoleUser
}

// DisplayName returns the current username, or the guest label
func (m *Manager) DisplayName() string {
	if m.user == nil {
		return GuestName
	}
	return m.user.Username
}

// CurrentUser returns a copy of the current user, or nil when anonymous.
// The role comes back normalized; the wire form lives only in storage.
func (m *Manager) CurrentUser() *User {
	if m.user == nil {
		return nil
	}
	user := *m.user
	user.Role = normalizeRole(user.Role)
	return &user
}

// TokenExpiry reads the expiry claim from the stored token without
// verifying the signature. Display only; expiry is enforced server-side.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	if m.token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(m.token, claims); err != nil {
		return time.Time{}, false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}

func normalizeRole(role string) string {
	return strings.ToUpper(strings.TrimPrefix(role, "ROLE_"))
}
