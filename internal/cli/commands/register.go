package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
	"github.com/Nafish32/smartlibrary-cli/internal/validate"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var input gateway.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a library account",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runRegister(e, input, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&input.Username, "username", "", "Username for the new account")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password (will prompt if not provided)")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&input.Role, "role", "USER", "Account role (USER or ADMIN)")
	cmd.Flags().StringVar(&input.AdminKey, "admin-key", "", "Admin key, required when registering an ADMIN account")

	return cmd
}

func runRegister(e *env, input gateway.RegisterInput, out io.Writer) error {
	if input.Username == "" {
		return errors.New("username is required (use --username flag)")
	}

	if input.Password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Fprint(out, "Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			input.Password = string(bytePassword)
			fmt.Fprintln(out)
		} else {
			return errors.New("password is required in non-interactive mode (use --password flag)")
		}
	}

	// Client-side validation runs before any network call
	if err := validate.Struct(input); err != nil {
		return err
	}

	res := e.sess.Register(context.Background(), input)
	if !res.Success {
		return errors.New(res.Error)
	}

	// Registration never implies a login; an explicit login is required.
	fmt.Fprintf(out, "✓ Account '%s' created. Run 'smartlib login' to sign in.\n", input.Username)

	return nil
}
