package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// AvailableBooks lists books with copies left to borrow
func (c *Client) AvailableBooks(ctx context.Context) Result[[]Book] {
	return callList[Book](c, ctx, http.MethodGet, "/api/user/books/available", nil, "Failed to fetch books")
}

// SearchBooks searches the catalog by title or author
func (c *Client) SearchBooks(ctx context.Context, query string) Result[[]Book] {
	q := url.Values{"query": {query}}
	return callList[Book](c, ctx, http.MethodGet, "/api/user/books/search", q, "Failed to search books")
}

// GetBook fetches a single book by id
func (c *Client) GetBook(ctx context.Context, id int64) Result[Book] {
	path := fmt.Sprintf("/api/user/books/%d", id)
	return call[Book](c, ctx, http.MethodGet, path, nil, nil, "Failed to fetch book")
}

// BorrowBook creates a booking for the current user
func (c *Client) BorrowBook(ctx context.Context, bookID int64) Result[Booking] {
	req := BookingRequest{BookID: bookID}
	return call[Booking](c, ctx, http.MethodPost, "/api/user/books/book", nil, req, "Failed to create booking")
}
