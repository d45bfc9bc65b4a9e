package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/Nafish32/smartlibrary-cli/internal/config"
	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
	"github.com/Nafish32/smartlibrary-cli/internal/logger"
	"github.com/Nafish32/smartlibrary-cli/internal/session"
	"github.com/Nafish32/smartlibrary-cli/internal/storage"
)

const sessionExpiredMessage = "Session expired. Run 'smartlib login' to sign in again."

// env bundles the wired-up collaborators every command needs.
type env struct {
	cfg   *config.Config
	store storage.Store
	sess  *session.Manager
	gw    *gateway.Client
}

// buildEnv wires storage, session and gateway together. The gateway
// reads the token from the session manager at call time and evicts the
// session when any call comes back 401.
func buildEnv(cfg *config.Config, store storage.Store, errOut io.Writer) *env {
	log := logger.GetLogger()

	sess := session.New(store, session.WithLogger(log))
	gw := gateway.New(cfg.API.BaseURL, sess,
		gateway.WithLogger(log),
		gateway.WithUnauthorizedHook(func() {
			sess.Logout()
			fmt.Fprintln(errOut, sessionExpiredMessage)
		}),
	)
	sess.AttachGateway(gw)

	return &env{cfg: cfg, store: store, sess: sess, gw: gw}
}

// newEnv loads configuration and wires the production collaborators.
func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	store, err := storage.Open(cfg.Storage.Backend)
	if err != nil {
		return nil, err
	}

	return buildEnv(cfg, store, os.Stderr), nil
}

func (e *env) requireLogin() error {
	if !e.sess.IsLoggedIn() {
		return errors.New("not logged in. Please run 'smartlib login' first")
	}
	return nil
}

func (e *env) requireAdmin() error {
	if err := e.requireLogin(); err != nil {
		return err
	}
	if !e.sess.IsAdmin() {
		return fmt.Errorf("admin access required (logged in as %s)", e.sess.DisplayName())
	}
	return nil
}

// confirm asks for an interactive yes/no before destructive operations.
func confirm(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return errors.New("aborted")
	}
	return nil
}
