package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

// RegisterModel is the Bubble Tea model for the create-account screen: a
// username, a masked password and its masked repetition. On success the form
// is reset and the menu is shown with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	form credentialsForm
}

// NewRegisterModel creates a [RegisterModel] with the username input focused.
func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialsForm("Password", "Repeat password"),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.form.submitting = false
		if result.Err != nil {
			if text, ok := userMessage(result.Err); ok {
				m.form.errMsg = text
			}
			return m, nil
		}

		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}

			username := m.form.username()
			password := m.form.value(1)
			repeat := m.form.value(2)

			if username == "" || password == "" {
				m.form.errMsg = app.MsgCredentialsRequired
				return m, nil
			}
			if password != repeat {
				m.form.errMsg = app.MsgPasswordsDoNotMatch
				return m, nil
			}

			m.form.errMsg = ""
			m.form.submitting = true
			return m, m.cmdRegister(username, password)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	return renderPage("CREATE ACCOUNT", m.form.view("Create account"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		userID, err := auth.CreateAccount(ctx, username, password)
		return RegisterResult{
			Err:      err,
			Username: username,
			UserID:   userID,
		}
	}
}
