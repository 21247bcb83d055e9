package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const maxUsernameLength = 64

// credentialsForm holds the inputs shared by the sign-in and create-account
// screens. The first input is always the username; the rest are masked.
type credentialsForm struct {
	inputs     []textinput.Model
	labels     []string
	focus      int
	submitting bool
	errMsg     string
}

func newCredentialsForm(passwordLabels ...string) credentialsForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = maxUsernameLength
	username.Width = 40
	username.Focus()

	form := credentialsForm{
		inputs: []textinput.Model{username},
		labels: []string{"Username"},
	}

	for _, label := range passwordLabels {
		password := textinput.New()
		password.Placeholder = strings.ToLower(label)
		password.CharLimit = 256
		password.Width = 40
		password.EchoMode = textinput.EchoPassword
		password.EchoCharacter = '*'

		form.inputs = append(form.inputs, password)
		form.labels = append(form.labels, label)
	}

	return form
}

func (f *credentialsForm) username() string {
	return strings.TrimSpace(f.inputs[0].Value())
}

func (f *credentialsForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f *credentialsForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *credentialsForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *credentialsForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	f.submitting = false
	f.errMsg = ""
}

func (f *credentialsForm) view(action string) string {
	width := 0
	for _, label := range f.labels {
		if len(label) > width {
			width = len(label)
		}
	}

	var b strings.Builder
	for i, label := range f.labels {
		b.WriteString(padRight(label, width))
		b.WriteString(" │ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
