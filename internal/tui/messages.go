package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/models"
)

// NavigateTo asks RootModel to switch the active page. A non-nil Payload is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the sign-in form.
type LoginResult struct {
	Err      error
	Username string
	UserID   int64
}

// RegisterResult is produced by the create-account form.
type RegisterResult struct {
	Err      error
	Username string
	UserID   int64
}

// RegisterSuccessNotice is shown by the menu after an account was created.
type RegisterSuccessNotice struct {
	Username string
}

type homeLoadedMsg struct {
	user  models.User
	tasks []models.Task
	err   error
}

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type taskSavedMsg struct {
	taskID  int64
	created bool
	found   bool
	err     error
}

type taskDeletedMsg struct {
	taskID int64
	found  bool
	err    error
}

type copiedMsg struct {
	err error
}
