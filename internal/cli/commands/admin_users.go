package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newAdminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage member accounts",
	}

	cmd.AddCommand(newAdminUsersListCmd())
	cmd.AddCommand(newAdminUsersGetCmd())
	cmd.AddCommand(newAdminUsersUpdateCmd())
	cmd.AddCommand(newAdminUsersRemoveCmd())

	return cmd
}

func newAdminUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List member accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runAdminUsersList(e, cmd.OutOrStdout())
		},
	}
}

func newAdminUsersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show one member account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runAdminUsersGet(e, args[0], cmd.OutOrStdout())
		},
	}
}

func newAdminUsersUpdateCmd() *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "update <user-id>",
		Short: "Update a member account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runAdminUsersUpdate(e, args[0], email, role, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "New email address")
	cmd.Flags().StringVar(&role, "role", "", "New role (USER or ADMIN)")

	return cmd
}

func newAdminUsersRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <user-id>",
		Short: "Remove a member account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if !yes {
				if err := confirm(fmt.Sprintf("Delete user %s", args[0])); err != nil {
					return err
				}
			}
			return runAdminUsersRemove(e, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func runAdminUsersList(e *env, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	res := e.gw.AllUsers(context.Background())
	if !res.Success {
		return errors.New(res.Error)
	}

	if len(res.Data) == 0 {
		fmt.Fprintln(out, "No users found.")
		return nil
	}

	printUsersTable(out, res.Data)
	return nil
}

func runAdminUsersGet(e *env, arg string, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	id, err := parseID(arg, "user")
	if err != nil {
		return err
	}

	res := e.gw.GetUser(context.Background(), id)
	if !res.Success {
		return errors.New(res.Error)
	}

	user := res.Data
	fmt.Fprintf(out, "ID:       %d\n", user.ID)
	fmt.Fprintf(out, "Username: %s\n", user.Username)
	if user.Email != "" {
		fmt.Fprintf(out, "Email:    %s\n", user.Email)
	}
	fmt.Fprintf(out, "Role:     %s\n", user.Role)
	return nil
}

func runAdminUsersUpdate(e *env, arg, email, role string, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	id, err := parseID(arg, "user")
	if err != nil {
		return err
	}

	if email == "" && role == "" {
		return errors.New("nothing to update (use --email or --role)")
	}

	// Fetch the current account so unset flags keep their values
	current := e.gw.GetUser(context.Background(), id)
	if !current.Success {
		return errors.New(current.Error)
	}

	user := current.Data
	if email != "" {
		user.Email = email
	}
	if role != "" {
		user.Role = role
	}

	res := e.gw.UpdateUser(context.Background(), id, user)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Updated user %d\n", id)
	return nil
}

func runAdminUsersRemove(e *env, arg string, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	id, err := parseID(arg, "user")
	if err != nil {
		return err
	}

	res := e.gw.DeleteUser(context.Background(), id)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Deleted user %d\n", id)
	return nil
}
