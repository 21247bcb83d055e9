package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// Shell is the interactive side of the application.
type Shell interface {
	// LoginFlow blocks until a user signs in and returns the user id.
	LoginFlow(ctx context.Context) (int64, error)
	// MainLoop runs the signed-in menu and reports whether the user logged out.
	MainLoop(ctx context.Context, userID int64) (logout bool, err error)
	// Farewell is printed when the program ends normally.
	Farewell() string
}

var _ Shell = (*tui.TUI)(nil)

// App drives the session lifecycle: sign in, main loop, log out, repeat.
type App struct {
	shell      Shell
	sessionIDs utils.IDGenerator
	out        io.Writer
	logger     *logger.Logger
}

// NewApp creates an App. out receives the farewell line and sessionIDs
// issues one id per signed-in session.
func NewApp(shell Shell, sessionIDs utils.IDGenerator, out io.Writer, logger *logger.Logger) (*App, error) {
	if shell == nil {
		return nil, errors.New("client: shell is nil")
	}
	if sessionIDs == nil {
		sessionIDs = utils.NewUUIDGenerator()
	}

	return &App{shell: shell, sessionIDs: sessionIDs, out: out, logger: logger}, nil
}

// Run blocks until the user quits. It returns nil on a normal exit and the
// error of any unrecoverable failure.
func (a *App) Run(ctx context.Context) error {
	for {
		userID, err := a.shell.LoginFlow(a.logger.ToContext(ctx))
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Str("func", "*App.Run").Msg("user quit")
			fmt.Fprintln(a.out, a.shell.Farewell())
			return nil
		}
		if err != nil {
			return fmt.Errorf("sign-in flow: %w", err)
		}

		sessionLog := a.logger.WithSession(userID, a.sessionIDs.Generate())
		sessionLog.Info().Str("func", "*App.Run").Msg("session started")

		logout, err := a.shell.MainLoop(sessionLog.ToContext(ctx), userID)
		if err != nil {
			sessionLog.Err(err).Str("func", "*App.Run").Msg("session ended with error")
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			sessionLog.Info().Str("func", "*App.Run").Msg("user quit")
			fmt.Fprintln(a.out, a.shell.Farewell())
			return nil
		}

		sessionLog.Info().Str("func", "*App.Run").Msg("user logged out")
	}
}
