package gateway

import (
	"context"
	"encoding/json"
	"net/http"
)

// Login authenticates against the backend. It does not touch session
// state; the session manager owns persistence of the returned token.
func (c *Client) Login(ctx context.Context, creds Credentials) Result[LoginData] {
	return call[LoginData](c, ctx, http.MethodPost, "/api/auth/login", nil, creds, "Login failed")
}

// Register creates a new account. A successful registration does not
// imply a login; the caller is expected to log in separately.
func (c *Client) Register(ctx context.Context, input RegisterInput) Result[json.RawMessage] {
	return call[json.RawMessage](c, ctx, http.MethodPost, "/api/auth/register", nil, input, "Registration failed")
}
