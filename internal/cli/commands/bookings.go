package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
)

// NewBookingsCmd creates the bookings command group
func NewBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage your borrowed books",
	}

	cmd.AddCommand(newBookingsListCmd())
	cmd.AddCommand(newBookingsReturnCmd())

	return cmd
}

func newBookingsListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runBookingsList(e, activeOnly, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only bookings not yet returned")

	return cmd
}

func newBookingsReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <booking-id>",
		Short: "Return a borrowed book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runBookingsReturn(e, args[0], cmd.OutOrStdout())
		},
	}
}

// sortBookings orders newest first. Booking dates are ISO strings, so
// lexicographic order matches chronological order.
func sortBookings(bookings []gateway.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingDate > bookings[j].BookingDate
	})
}

func runBookingsList(e *env, activeOnly bool, out io.Writer) error {
	if err := e.requireLogin(); err != nil {
		return err
	}

	var res gateway.Result[[]gateway.Booking]
	if activeOnly {
		res = e.gw.ActiveBookings(context.Background())
	} else {
		res = e.gw.MyBookings(context.Background())
	}
	if !res.Success {
		return errors.New(res.Error)
	}

	if len(res.Data) == 0 {
		fmt.Fprintln(out, "No bookings found.")
		return nil
	}

	sortBookings(res.Data)
	printBookingsTable(out, res.Data, false)
	return nil
}

func runBookingsReturn(e *env, arg string, out io.Writer) error {
	if err := e.requireLogin(); err != nil {
		return err
	}

	id, err := parseID(arg, "booking")
	if err != nil {
		return err
	}

	res := e.gw.ReturnBooking(context.Background(), id)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Returned booking %d\n", id)
	return nil
}
