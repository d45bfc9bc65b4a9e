package commands

import (
	"github.com/spf13/cobra"
)

// NewAdminCmd creates the admin command group
func NewAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer the library (admin accounts only)",
	}

	cmd.AddCommand(newAdminBooksCmd())
	cmd.AddCommand(newAdminUsersCmd())
	cmd.AddCommand(newAdminBookingsCmd())

	return cmd
}
