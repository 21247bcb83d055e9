package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldStatus
	fieldDueDate
	fieldCount
)

// keepChoice marks an enum field left unchanged by an edit.
const keepChoice = -1

// clearMarker typed as the whole description of an edit clears it.
const clearMarker = "-"

// taskForm collects the fields of a new task or of a partial edit. In edit
// mode every field starts empty and blank fields are left out of the update.
type taskForm struct {
	editing bool
	task    models.Task

	title       textinput.Model
	description textinput.Model
	dueDate     textinput.Model
	priorityIdx int
	statusIdx   int

	focus      int
	submitting bool
	errMsg     string

	validator validators.Validator
}

func newTaskForm() taskForm {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 40
	title.Focus()

	description := textinput.New()
	description.Placeholder = "description"
	description.CharLimit = 1000
	description.Width = 40

	dueDate := textinput.New()
	dueDate.Placeholder = "YYYY-MM-DD"
	dueDate.CharLimit = len(models.DueDateLayout)
	dueDate.Width = 40

	return taskForm{
		title:       title,
		description: description,
		dueDate:     dueDate,
		validator:   validators.NewTaskValidator(),
	}
}

// newEditTaskForm opens an empty form for a partial update of task.
func newEditTaskForm(task models.Task) taskForm {
	f := newTaskForm()
	f.editing = true
	f.task = task
	f.priorityIdx = keepChoice
	f.statusIdx = keepChoice
	return f
}

// update handles a message for the form. submit is true when the user asked
// to save.
func (f *taskForm) update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			return !f.submitting, nil
		case key.Matches(keyMsg, keys.tab):
			f.setFocus((f.focus + 1) % fieldCount)
			return false, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
			return false, nil
		case key.Matches(keyMsg, keys.left) && f.onChoice():
			f.cycleChoice(-1)
			return false, nil
		case key.Matches(keyMsg, keys.right) && f.onChoice():
			f.cycleChoice(1)
			return false, nil
		}
	}

	if input := f.focusedInput(); input != nil {
		*input, cmd = input.Update(msg)
	}
	return false, cmd
}

func (f *taskForm) onChoice() bool {
	return f.focus == fieldPriority || f.focus == fieldStatus
}

func (f *taskForm) focusedInput() *textinput.Model {
	switch f.focus {
	case fieldTitle:
		return &f.title
	case fieldDescription:
		return &f.description
	case fieldDueDate:
		return &f.dueDate
	}
	return nil
}

func (f *taskForm) setFocus(field int) {
	if input := f.focusedInput(); input != nil {
		input.Blur()
	}
	f.focus = field
	if input := f.focusedInput(); input != nil {
		input.Focus()
	}
}

func (f *taskForm) cycleChoice(delta int) {
	idx, count := &f.priorityIdx, len(models.Priorities)
	if f.focus == fieldStatus {
		idx, count = &f.statusIdx, len(models.CompletionStatuses)
	}

	low := 0
	if f.editing {
		low = keepChoice
	}
	span := count - low

	*idx = low + ((*idx-low+delta)%span+span)%span
}

// newTask validates the form as a new task owned by userID.
func (f *taskForm) newTask(ctx context.Context, userID int64) (models.Task, error) {
	task := models.Task{
		UserID:           userID,
		Title:            strings.TrimSpace(f.title.Value()),
		Description:      strings.TrimSpace(f.description.Value()),
		Priority:         models.Priorities[f.priorityIdx],
		CompletionStatus: models.CompletionStatuses[f.statusIdx],
		DueDate:          strings.TrimSpace(f.dueDate.Value()),
	}

	if err := f.validator.Validate(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// taskUpdate validates the filled fields as a partial update.
func (f *taskForm) taskUpdate(ctx context.Context) (models.TaskUpdate, error) {
	update := models.TaskUpdate{TaskID: f.task.ID}

	if v := strings.TrimSpace(f.title.Value()); v != "" {
		update.Title = &v
	}
	switch v := strings.TrimSpace(f.description.Value()); v {
	case "":
	case clearMarker:
		empty := ""
		update.Description = &empty
	default:
		update.Description = &v
	}
	if f.priorityIdx != keepChoice {
		p := models.Priorities[f.priorityIdx]
		update.Priority = &p
	}
	if f.statusIdx != keepChoice {
		s := models.CompletionStatuses[f.statusIdx]
		update.CompletionStatus = &s
	}
	if v := strings.TrimSpace(f.dueDate.Value()); v != "" {
		update.DueDate = &v
	}

	if err := f.validator.Validate(ctx, update); err != nil {
		return models.TaskUpdate{}, err
	}
	return update, nil
}

func (f *taskForm) view() string {
	var b strings.Builder

	if f.editing {
		b.WriteString("Editing: " + f.task.String() + "\n")
		b.WriteString(renderStatus("Leave a field blank to keep its current value. Type "+clearMarker+" as the description to clear it.") + "\n\n")
	}

	row := func(field int, label, value string) {
		cursor := " "
		if f.focus == field {
			cursor = ">"
		}
		b.WriteString(cursor + " " + padRight(label, 11) + " │ " + value + "\n")
	}

	row(fieldTitle, "Title", "["+f.title.View()+"]")
	row(fieldDescription, "Description", "["+f.description.View()+"]")
	row(fieldPriority, "Priority", "‹ "+f.choiceLabel(f.priorityIdx, priorityLabels())+" ›")
	row(fieldStatus, "Status", "‹ "+f.choiceLabel(f.statusIdx, statusLabels())+" ›")
	row(fieldDueDate, "Due date", "["+f.dueDate.View()+"]")

	if f.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (f *taskForm) choiceLabel(idx int, labels []string) string {
	if idx == keepChoice {
		return "(unchanged)"
	}
	return labels[idx]
}

func priorityLabels() []string {
	labels := make([]string, len(models.Priorities))
	for i, p := range models.Priorities {
		labels[i] = string(p)
	}
	return labels
}

func statusLabels() []string {
	labels := make([]string, len(models.CompletionStatuses))
	for i, s := range models.CompletionStatuses {
		labels[i] = string(s)
	}
	return labels
}
