package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nafish32/smartlibrary-cli/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "smartlib",
	Short: "SmartLibrary - manage your library account from the terminal",
	Long: `SmartLibrary CLI - browse the catalog, borrow and return books,
and administer the library, all against a SmartLibrary backend.

Run 'smartlib login' first; the session is stored locally and attached
to every call.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("smartlib version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewBooksCmd())
	rootCmd.AddCommand(commands.NewBookingsCmd())
	rootCmd.AddCommand(commands.NewChatCmd())
	rootCmd.AddCommand(commands.NewAdminCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
