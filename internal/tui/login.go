// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

// LoginModel is the Bubble Tea model for the sign-in screen. It renders a
// username input and a masked password input and dispatches an async sign-in
// command on submission. The resulting [LoginResult] is handled by
// [RootModel] on success and by this model on failure.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	form credentialsForm
}

// NewLoginModel creates a [LoginModel] with the username input focused.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialsForm("Password"),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]: clears the submitting state and shows expected failures.
//   - esc: goes back to the menu.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: checks that both fields are filled and signs in.
//
// All other key events are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.form.submitting = false
		if result.Err != nil {
			if text, ok := userMessage(result.Err); ok {
				m.form.errMsg = text
			}
		}
		return m, nil
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
			if username == "" || password == "" {
				m.form.errMsg = app.MsgCredentialsRequired
				return m, nil
			}

			m.form.errMsg = ""
			m.form.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	return renderPage("SIGN IN", m.form.view("Sign in"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		userID, err := auth.SignIn(ctx, username, password)
		return LoginResult{
			Err:      err,
			Username: username,
			UserID:   userID,
		}
	}
}
