package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
)

func newAdminBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage the catalog",
	}

	cmd.AddCommand(newAdminBooksListCmd())
	cmd.AddCommand(newAdminBooksAddCmd())
	cmd.AddCommand(newAdminBooksUpdateCmd())
	cmd.AddCommand(newAdminBooksRemoveCmd())
	cmd.AddCommand(newAdminBooksQuantityCmd())

	return cmd
}

func newAdminBooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the full catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runAdminBooksList(e, cmd.OutOrStdout())
		},
	}
}

func newAdminBooksAddCmd() *cobra.Command {
	var book gateway.Book

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runAdminBooksAdd(e, book, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&book.Title, "title", "", "Book title")
	cmd.Flags().StringVar(&book.Author, "author", "", "Book author")
	cmd.Flags().StringVar(&book.Genre, "genre", "", "Book genre")
	cmd.Flags().IntVar(&book.Quantity, "quantity", 1, "Number of copies")

	return cmd
}

func newAdminBooksUpdateCmd() *cobra.Command {
	var book gateway.Book

	cmd := &cobra.Command{
		Use:   "update <book-id>",
		Short: "Update a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runAdminBooksUpdate(e, args[0], book, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&book.Title, "title", "", "Book title")
	cmd.Flags().StringVar(&book.Author, "author", "", "Book author")
	cmd.Flags().StringVar(&book.Genre, "genre", "", "Book genre")
	cmd.Flags().IntVar(&book.Quantity, "quantity", 0, "Number of copies")

	return cmd
}

func newAdminBooksRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <book-id>",
		Short: "Remove a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if !yes {
				if err := confirm(fmt.Sprintf("Delete book %s", args[0])); err != nil {
					return err
				}
			}
			return runAdminBooksRemove(e, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newAdminBooksQuantityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quantity <book-id> <n>",
		Short: "Set the number of copies of a book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runAdminBooksQuantity(e, args[0], args[1], cmd.OutOrStdout())
		},
	}
}

func runAdminBooksList(e *env, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	res := e.gw.AllBooks(context.Background())
	if !res.Success {
		return errors.New(res.Error)
	}

	if len(res.Data) == 0 {
		fmt.Fprintln(out, "The catalog is empty.")
		return nil
	}

	printBooksTable(out, res.Data)
	return nil
}

func runAdminBooksAdd(e *env, book gateway.Book, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	if book.Title == "" || book.Author == "" {
		return errors.New("title and author are required")
	}
	if book.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}

	res := e.gw.CreateBook(context.Background(), book)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Added '%s' (id %d)\n", res.Data.Title, res.Data.ID)
	return nil
}

func runAdminBooksUpdate(e *env, arg string, book gateway.Book, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	id, err := parseID(arg, "book")
	if err != nil {
		return err
	}

	res := e.gw.UpdateBook(context.Background(), id, book)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Updated book %d\n", id)
	return nil
}

func runAdminBooksRemove(e *env, arg string, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	id, err := parseID(arg, "book")
	if err != nil {
		return err
	}

	res := e.gw.DeleteBook(context.Background(), id)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Deleted book %d\n", id)
	return nil
}

func runAdminBooksQuantity(e *env, idArg, quantityArg string, out io.Writer) error {
	if err := e.requireAdmin(); err != nil {
		return err
	}

	id, err := parseID(idArg, "book")
	if err != nil {
		return err
	}

	quantity, err := strconv.Atoi(quantityArg)
	if err != nil || quantity < 0 {
		return fmt.Errorf("invalid quantity '%s'", quantityArg)
	}

	res := e.gw.SetBookQuantity(context.Background(), id, quantity)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintf(out, "✓ Book %d now has %d copies\n", id, quantity)
	return nil
}
