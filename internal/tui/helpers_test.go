package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

type testServices struct {
	services *service.Services
	auth     *mock.MockAuthService
	tasks    *mock.MockTaskService
	info     *mock.MockAppInfoService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := testServices{
		auth:  mock.NewMockAuthService(ctrl),
		tasks: mock.NewMockTaskService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}
	ts.services = &service.Services{
		AuthService:    ts.auth,
		TaskService:    ts.tasks,
		AppInfoService: ts.info,
	}
	return ts
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// exec runs cmd synchronously and returns its message.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	return cmd()
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
