package client

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
)

type loginStep struct {
	userID int64
	err    error
}

type loopStep struct {
	logout bool
	err    error
}

// scriptedShell replays prepared results and records the calls it got.
type scriptedShell struct {
	logins []loginStep
	loops  []loopStep

	loopUsers  []int64
	loginCalls int
}

func (s *scriptedShell) LoginFlow(context.Context) (int64, error) {
	step := s.logins[s.loginCalls]
	s.loginCalls++
	return step.userID, step.err
}

func (s *scriptedShell) MainLoop(_ context.Context, userID int64) (bool, error) {
	step := s.loops[len(s.loopUsers)]
	s.loopUsers = append(s.loopUsers, userID)
	return step.logout, step.err
}

func (s *scriptedShell) Farewell() string { return "Goodbye and see you soon!" }

type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("sess-%d", s.n)
}

func newTestApp(t *testing.T, shell Shell) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app, err := NewApp(shell, &sequenceIDs{}, &out, logger.Nop())
	require.NoError(t, err)
	return app, &out
}

func TestNewApp_NilShell(t *testing.T) {
	_, err := NewApp(nil, nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestNewApp_DefaultSessionIDs(t *testing.T) {
	app, err := NewApp(&scriptedShell{}, nil, nil, logger.Nop())
	require.NoError(t, err)
	assert.NotEmpty(t, app.sessionIDs.Generate())
}

func TestRun_EachSessionGetsItsOwnID(t *testing.T) {
	shell := &scriptedShell{
		logins: []loginStep{{userID: 1}, {userID: 1}, {err: tui.ErrUserQuit}},
		loops:  []loopStep{{logout: true}, {logout: true}},
	}
	var logs, out bytes.Buffer
	app, err := NewApp(shell, &sequenceIDs{}, &out, &logger.Logger{Logger: zerolog.New(&logs)})
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, logs.String(), `"session_id":"sess-1"`)
	assert.Contains(t, logs.String(), `"session_id":"sess-2"`)
	assert.Contains(t, logs.String(), `"user_id":1`)
}

func TestRun_QuitFromMenu(t *testing.T) {
	shell := &scriptedShell{logins: []loginStep{{err: tui.ErrUserQuit}}}
	app, out := newTestApp(t, shell)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "Goodbye and see you soon!\n", out.String())
	assert.Empty(t, shell.loopUsers)
}

func TestRun_LogoutReturnsToSignIn(t *testing.T) {
	shell := &scriptedShell{
		logins: []loginStep{{userID: 1}, {userID: 2}, {err: tui.ErrUserQuit}},
		loops:  []loopStep{{logout: true}, {logout: true}},
	}
	app, _ := newTestApp(t, shell)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []int64{1, 2}, shell.loopUsers)
	assert.Equal(t, 3, shell.loginCalls)
}

func TestRun_QuitFromMainLoop(t *testing.T) {
	shell := &scriptedShell{
		logins: []loginStep{{userID: 1}},
		loops:  []loopStep{{logout: false}},
	}
	app, out := newTestApp(t, shell)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Goodbye")
}

func TestRun_FatalErrors(t *testing.T) {
	t.Run("sign-in", func(t *testing.T) {
		shell := &scriptedShell{logins: []loginStep{{err: store.ErrExecutingQuery}}}
		app, _ := newTestApp(t, shell)

		assert.ErrorIs(t, app.Run(context.Background()), store.ErrExecutingQuery)
	})

	t.Run("main loop", func(t *testing.T) {
		shell := &scriptedShell{
			logins: []loginStep{{userID: 1}},
			loops:  []loopStep{{err: store.ErrExecutingQuery}},
		}
		app, out := newTestApp(t, shell)

		assert.ErrorIs(t, app.Run(context.Background()), store.ErrExecutingQuery)
		assert.Empty(t, out.String())
	})
}
