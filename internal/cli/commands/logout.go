package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runLogout(e, cmd.OutOrStdout())
		},
	}
}

func runLogout(e *env, out io.Writer) error {
	// Total and idempotent: no network call, safe when already logged out
	e.sess.Logout()
	fmt.Fprintln(out, "✓ Logged out")
	return nil
}
