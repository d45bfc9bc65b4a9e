package gateway

import (
	"context"
	"encoding/json"
	"net/http"
)

// Chat forwards free text and a language tag to the library assistant
// and returns its response verbatim.
func (c *Client) Chat(ctx context.Context, message, language string) Result[json.RawMessage] {
	req := ChatRequest{Message: message, Language: language}
	return call[json.RawMessage](c, ctx, http.MethodPost, "/api/user/chat", nil, req, "Failed to send message")
}
