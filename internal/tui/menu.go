package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

var menuTargets = []string{pageLogin, pageRegister}

// MenuModel is the top-level choice between signing in and creating an
// account.
type MenuModel struct {
	items  []string
	idx    int
	status string
}

// NewMenuModel creates the menu. notice, when set, is shown above the items.
func NewMenuModel(notice string) *MenuModel {
	return &MenuModel{
		items:  []string{"Sign in", "Create account"},
		status: notice,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		m.status = "Account " + notice.Username + " created. Please sign in."
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if i, ok := digitIndex(keyMsg); ok && i < len(m.items) {
		m.idx = i
		return m, m.navigate()
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, m.navigate()
	}

	return m, nil
}

func (m *MenuModel) navigate() tea.Cmd {
	m.status = ""
	page := menuTargets[m.idx]
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString("Welcome to " + appName + "!\n\n")
	if m.status != "" {
		b.WriteString(renderStatus(m.status))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage(strings.ToUpper(appName), strings.TrimRight(b.String(), "\n"), "1/2 or enter: choose │ ↑/↓: navigate │ v: version │ q: quit")
}
