package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runWhoami(e, cmd.OutOrStdout())
		},
	}
}

func runWhoami(e *env, out io.Writer) error {
	if !e.sess.IsLoggedIn() {
		fmt.Fprintf(out, "%s (not logged in)\n", e.sess.DisplayName())
		return nil
	}

	user := e.sess.CurrentUser()
	fmt.Fprintf(out, "User: %s\n", user.Username)
	fmt.Fprintf(out, "Role: %s\n", user.Role)
	if expiry, ok := e.sess.TokenExpiry(); ok {
		fmt.Fprintf(out, "Session valid until %s\n", expiry.Local().Format("2006-01-02 15:04"))
	}

	return nil
}
