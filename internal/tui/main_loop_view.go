package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	colTitle    = 28
	colPriority = 8
	colStatus   = 11
)

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenList:
		return m.viewList()
	case screenForm:
		title := "NEW TASK"
		if m.form.editing {
			title = "EDIT TASK"
		}
		return renderPage(title, m.form.view(), "tab/shift+tab: field │ ←/→: change choice │ enter: save │ esc: back")
	case screenConfirm:
		content := "Delete \"" + m.pending.Title + "\"?\n\n" + "y: yes    n: no"
		if m.deleting {
			content = m.spinner.View() + " Deleting \"" + m.pending.Title + "\"..."
		}
		return renderPage("DELETE TASK", overlayBoxStyle.Render(content), "y: delete │ n/esc: cancel")
	default:
		return m.viewHome()
	}
}

func (m mainLoopModel) viewHome() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else {
		b.WriteString(fmt.Sprintf("Hello %s, here are your current uncompleted tasks.\n\n", m.user.Login))
		if len(m.uncompleted) == 0 {
			b.WriteString("You have no uncompleted tasks.\n")
		} else {
			b.WriteString(renderTaskTable(m.uncompleted, -1))
		}
	}

	b.WriteString("\n")
	for i, item := range mainMenuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	m.writeNotices(&b)

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "1-5 or enter: choose │ ↑/↓: navigate")
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(listPrompt(m.purpose) + "\n")
	b.WriteString("Filter: " + filterLabel(statusFilters[m.filterIdx]) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.tasks) == 0:
		b.WriteString("No tasks.\n")
	default:
		b.WriteString(renderTaskTable(m.tasks, m.idx))
		if task, ok := m.current(); ok && m.showDetail {
			b.WriteString("\n")
			b.WriteString(renderTaskDetail(task))
		}
	}

	m.writeNotices(&b)

	hotKeys := "1-9/↑/↓: select │ f: filter │ c: copy │ esc: back"
	switch m.purpose {
	case listEdit:
		hotKeys = "enter: edit │ " + hotKeys
	case listDelete:
		hotKeys = "enter: delete │ " + hotKeys
	default:
		hotKeys = "enter: details │ " + hotKeys
	}

	return renderPage("MY TASKS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) writeNotices(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(renderStatus(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}
}

func listPrompt(purpose listPurpose) string {
	switch purpose {
	case listEdit:
		return "Which task would you like to edit?"
	case listDelete:
		return "Which task would you like to delete?"
	default:
		return "Your tasks:"
	}
}

func filterLabel(status *models.CompletionStatus) string {
	if status == nil {
		return "all"
	}
	return string(*status)
}

// renderTaskTable renders tasks as numbered rows. The number shown is the
// 1-based position in tasks, not the task id. selected < 0 hides the cursor.
func renderTaskTable(tasks []models.Task, selected int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %-3s│ %s │ %s │ %s │ %s\n",
		"#",
		padRight("Title", colTitle),
		padRight("Priority", colPriority),
		padRight("Status", colStatus),
		"Due date",
	))
	b.WriteString("─────┼─" + strings.Repeat("─", colTitle) + "─┼─" + strings.Repeat("─", colPriority) + "─┼─" + strings.Repeat("─", colStatus) + "─┼──────────\n")

	for i, task := range tasks {
		cursor := " "
		if i == selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-3d│ %s │ %s │ %s │ %s\n",
			cursor,
			i+1,
			titleCell(task, padRight(fitText(task.Title, colTitle), colTitle)),
			priorityCell(task.Priority, padRight(string(task.Priority), colPriority)),
			padRight(string(task.CompletionStatus), colStatus),
			task.DueDate,
		))
	}

	return b.String()
}

func renderTaskDetail(task models.Task) string {
	var b strings.Builder
	b.WriteString("Title       : " + task.Title + "\n")
	b.WriteString("Description : " + valueOrDash(task.Description) + "\n")
	b.WriteString("Priority    : " + string(task.Priority) + "\n")
	b.WriteString("Status      : " + string(task.CompletionStatus) + "\n")
	b.WriteString("Due date    : " + task.DueDate + "\n")
	return b.String()
}
