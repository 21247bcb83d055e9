package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.PriorityLow:    lipgloss.NewStyle().Faint(true),
	}
	completedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

// priorityCell renders an already padded priority column.
func priorityCell(p models.Priority, cell string) string {
	if style, ok := priorityStyles[p]; ok {
		return style.Render(cell)
	}
	return cell
}

// titleCell dims the title of a completed task.
func titleCell(task models.Task, cell string) string {
	if task.CompletionStatus == models.StatusCompleted {
		return completedStyle.Render(cell)
	}
	return cell
}
