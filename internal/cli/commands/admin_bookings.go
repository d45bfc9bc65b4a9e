package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newAdminBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage bookings across all users",
	}

	cmd.AddCommand(newAdminBookingsListCmd())
	cmd.AddCommand(newAdminBookingsReturnCmd())

	return cmd
}

func newAdminBookingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List every booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runAdminBookingsList(e, cmd.OutOrStdout())
		},
	}
}

func newAdminBookingsReturnCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "return <booking-id>",
		Short: "Return a booking on behalf of its user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if !yes {
				if err := confirm(fmt.Sprintf("Force-return booking %s", args[0])); err != nil {
					return err
				}
			}
			return runAdminBookingsReturn(e, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func runAdminBookingsList(e *env, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	res := e.gw.AllBookings(context.Background())
	if !res.Success {
		return errors.New(res.Error)
	}

	if len(res.Data) == 0 {
		fmt.Fprintln(out, "No bookings found.")
		return nil
	}

	sortBookings(res.Data)
	printBookingsTable(out, res.Data, true)
	return nil
}

func runAdminBookingsReturn(e *env, arg string, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	id, err := parseID(arg, "booking")
	if err != nil {
		return err
	}

	res := e.gw.ForceReturnBooking(context.Background(), id)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Returned booking %d\n", id)
	return nil
}
