package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the library assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if language == "" {
				language = e.cfg.Chat.Language
			}
			return runChat(e, strings.Join(args, " "), language, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&language, "lang", "", "Response language tag (defaults to configured language)")

	return cmd
}

func runChat(e *env, message, language string, out io.Writer) error {
	if err := e.requireLogin(); err != nil {
		return err
	}

	res := e.gw.Chat(context.Background(), message, language)
	if !res.Success {
		return errors.New(res.Error)
	}

	fmt.Fprintln(out, renderChatReply(res.Data))
	return nil
}
