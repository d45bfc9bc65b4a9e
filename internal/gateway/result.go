package gateway

// Result is the uniform shape every gateway operation returns. Failures
// carry a human-readable Error (the server-provided payload when one was
// decodable, a fixed per-operation fallback otherwise) and Success is
// false. No operation ever returns a raw transport error to the caller.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
