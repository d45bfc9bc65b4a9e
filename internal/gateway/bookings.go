package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// MyBookings lists every booking of the current user
func (c *Client) MyBookings(ctx context.Context) Result[[]Booking] {
	return callList[Booking](c, ctx, http.MethodGet, "/api/user/bookings", nil, "Failed to fetch bookings")
}

// ActiveBookings lists the current user's bookings that are not yet returned
func (c *Client) ActiveBookings(ctx context.Context) Result[[]Booking] {
	return callList[Booking](c, ctx, http.MethodGet, "/api/user/bookings/active", nil, "Failed to fetch active bookings")
}

// ReturnBooking returns a borrowed book
func (c *Client) ReturnBooking(ctx context.Context, bookingID int64) Result[Booking] {
	path := fmt.Sprintf("/api/user/bookings/%d/return", bookingID)
	return call[Booking](c, ctx, http.MethodPut, path, nil, nil, "Failed to return book")
}
