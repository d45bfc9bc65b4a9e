package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewBooksCmd creates the books command group
func NewBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and borrow books",
	}

	cmd.AddCommand(newBooksListCmd())
	cmd.AddCommand(newBooksSearchCmd())
	cmd.AddCommand(newBooksGetCmd())
	cmd.AddCommand(newBooksBorrowCmd())

	return cmd
}

func newBooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List available books",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runBooksList(e, cmd.OutOrStdout())
		},
	}
}

func newBooksSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search books by title or author",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runBooksSearch(e, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}

func newBooksGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <book-id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runBooksGet(e, args[0], cmd.OutOrStdout())
		},
	}
}

func newBooksBorrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "borrow <book-id>",
		Short: "Borrow a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			return runBooksBorrow(e, args[0], cmd.OutOrStdout())
		},
	}
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id '%s'", what, arg)
	}
	return id, nil
}

func runBooksList(e *env, out io.Writer) error {
	if err := e.requireLogin(); err != nil {
		return err
	}

	res := e.gw.AvailableBooks(context.Background())
	if !res.Success {
		return errors.New(res.Error)
	}

	if len(res.Data) == 0 {
		fmt.Fprintln(out, "No books available.")
		return nil
	}

	// Most-stocked first
	books := res.Data
	sort.Slice(books, func(i, j int) bool {
		return books[i].Quantity > books[j].Quantity
	})

	printBooksTable(out, books)
	return nil
}

func runBooksSearch(e *env, query string, out io.Writer) error {
	if err := e.requireLogin(); err != nil {
		return err
	}

	res := e.gw.SearchBooks(context.Background(), query)
	if !res.Success {
		return errors.New(res.Error)
	}

	if len(res.Data) == 0 {
		fmt.Fprintf(out, "No books matching '%s'.\n", query)
		return nil
	}

	printBooksTable(out, res.Data)
	return nil
}

func runBooksGet(e *env, arg string, out io.Writer) error {
	if err := e.requireLogin(); err != nil {
		return err
	}

	id, err := parseID(arg, "book")
	if err != nil {
		return err
	}

	res := e.gw.GetBook(context.Background(), id)
	if !res.Success {
		return errors.New(res.Error)
	}

	printBookDetail(out, res.Data)
	return nil
}

func runBooksBorrow(e *env, arg string, out io.Writer) error {
	if err := e.requireLogin(); err != nil {
		return err
	}

	id, err := parseID(arg, "book")
	if err != nil {
		return err
	}

	res := e.gw.BorrowBook(context.Background(), id)
	if !res.Success {
		return errors.New(res.Error)
	}

	title := res.Data.BookTitle
	if title == "" {
		title = fmt.Sprintf("book %d", id)
	}
	fmt.Fprintf(out, "✓ Borrowed %s (booking %d)\n", title, res.Data.ID)
	return nil
}
