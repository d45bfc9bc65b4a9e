package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
	"github.com/Nafish32/smartlibrary-cli/internal/validate"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runLogin(e, username, password, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (or set SMARTLIBRARY_USERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set SMARTLIBRARY_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(e *env, username, password string, out io.Writer) error {
	// Check for environment variables (useful for scripting)
	if username == "" {
		username = os.Getenv("SMARTLIBRARY_USERNAME")
	}
	if password == "" {
		password = os.Getenv("SMARTLIBRARY_PASSWORD")
	}

	if username == "" {
		return errors.New("username is required (use --username flag or SMARTLIBRARY_USERNAME env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Fprint(out, "Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Fprintln(out)
		} else {
			return errors.New("password is required in non-interactive mode (use --password flag or SMARTLIBRARY_PASSWORD env var)")
		}
	}

	// Client-side validation runs before any network call
	creds := gateway.Credentials{Username: username, Password: password}
	if err := validate.Struct(creds); err != nil {
		return err
	}

	res := e.sess.Login(context.Background(), username, password)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Logged in as %s\n", e.sess.DisplayName())
	if e.sess.IsAdmin() {
		fmt.Fprintln(out, "  Role: Admin")
	}
	if expiry, ok := e.sess.TokenExpiry(); ok {
		fmt.Fprintf(out, "  Session valid until %s\n", expiry.Local().Format("2006-01-02 15:04"))
	}

	return nil
}
