package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AllBooks lists the full catalog, including unavailable books
func (c *Client) AllBooks(ctx context.Context) Result[[]Book] {
	return callList[Book](c, ctx, http.MethodGet, "/api/admin/books", nil, "Failed to fetch books")
}

// CreateBook adds a book to the catalog
func (c *Client) CreateBook(ctx context.Context, book Book) Result[Book] {
	return call[Book](c, ctx, http.MethodPost, "/api/admin/books", nil, book, "Failed to create book")
}

// UpdateBook updates a catalog entry
func (c *Client) UpdateBook(ctx context.Context, id int64, book Book) Result[Book] {
	path := fmt.Sprintf("/api/admin/books/%d", id)
	return call[Book](c, ctx, http.MethodPut, path, nil, book, "Failed to update book")
}

// DeleteBook removes a book from the catalog
func (c *Client) DeleteBook(ctx context.Context, id int64) Result[json.RawMessage] {
	path := fmt.Sprintf("/api/admin/books/%d", id)
	return call[json.RawMessage](c, ctx, http.MethodDelete, path, nil, nil, "Failed to delete book")
}

// SetBookQuantity sets the number of copies of a book
func (c *Client) SetBookQuantity(ctx context.Context, id int64, quantity int) Result[Book] {
	path := fmt.Sprintf("/api/admin/books/%d/quantity", id)
	q := url.Values{"quantity": {strconv.Itoa(quantity)}}
	return call[Book](c, ctx, http.MethodPut, path, q, nil, "Failed to update quantity")
}

// AllUsers lists every member account
func (c *Client) AllUsers(ctx context.Context) Result[[]User] {
	return callList[User](c, ctx, http.MethodGet, "/api/admin/users", nil, "Failed to fetch users")
}

// GetUser fetches a member account by id
func (c *Client) GetUser(ctx context.Context, id int64) Result[User] {
	path := fmt.Sprintf("/api/admin/users/%d", id)
	return call[User](c, ctx, http.MethodGet, path, nil, nil, "Failed to fetch user")
}

// UpdateUser updates a member account
func (c *Client) UpdateUser(ctx context.Context, id int64, user User) Result[User] {
	path := fmt.Sprintf("/api/admin/users/%d", id)
	return call[User](c, ctx, http.MethodPut, path, nil, user, "Failed to update user")
}

// DeleteUser removes a member account
func (c *Client) DeleteUser(ctx context.Context, id int64) Result[json.RawMessage] {
	path := fmt.Sprintf("/api/admin/users/%d", id)
	return call[json.RawMessage](c, ctx, http.MethodDelete, path, nil, nil, "Failed to delete user")
}

// AllBookings lists every booking across all users
func (c *Client) AllBookings(ctx context.Context) Result[[]Booking] {
	return callList[Booking](c, ctx, http.MethodGet, "/api/admin/bookings", nil, "Failed to fetch bookings")
}

// ForceReturnBooking returns a booking on behalf of its user
func (c *Client) ForceReturnBooking(ctx context.Context, bookingID int64) Result[Booking] {
	path := fmt.Sprintf("/api/admin/bookings/%d/return", bookingID)
	return call[Booking](c, ctx, http.MethodPut, path, nil, nil, "Failed to return book")
}
