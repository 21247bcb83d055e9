package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

type mainScreen int

const (
	screenHome mainScreen = iota
	screenList
	screenForm
	screenConfirm
)

// listPurpose tells what enter does on the task list.
type listPurpose int

const (
	listView listPurpose = iota
	listEdit
	listDelete
)

const farewellMessage = app.MsgFarewell

var mainMenuItems = []string{
	"View my tasks",
	"Edit a task",
	"Create a new task",
	"Delete a task",
	"Log out",
}

const (
	menuView = iota
	menuEdit
	menuCreate
	menuDelete
	menuLogout
)

// statusFilters is the cycle of the task list filter. nil lists every task.
var statusFilters = []*models.CompletionStatus{
	nil,
	&models.CompletionStatuses[0],
	&models.CompletionStatuses[1],
	&models.CompletionStatuses[2],
}

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	userID   int64

	screen  mainScreen
	menuIdx int
	spinner spinner.Model
	loading bool

	user        models.User
	uncompleted []models.Task

	tasks      []models.Task
	idx        int
	purpose    listPurpose
	filterIdx  int
	showDetail bool

	form     taskForm
	pending  models.Task
	deleting bool

	status string
	errMsg string

	logout bool
	err    error
}

func newMainLoopModel(ctx context.Context, services *service.Services, userID int64) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		userID:   userID,
		spinner:  s,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadHome())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case homeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.user = msg.user
		m.uncompleted = msg.tasks
		return m, nil
	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.tasks = msg.tasks
		if m.idx >= len(m.tasks) {
			m.idx = len(m.tasks) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case taskSavedMsg:
		return m.onTaskSaved(msg)
	case taskDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			m.screen = screenList
			return m.handleError(msg.err)
		}
		if msg.found {
			m.status = "Task deleted."
		} else {
			m.status = app.MsgTaskNotFound
		}
		return m.goHome()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Could not copy to clipboard: %v", msg.err)
			return m, nil
		}
		m.status = "Copied to clipboard."
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm {
			_, cmd := m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		return m, tea.Quit
	}

	switch m.screen {
	case screenList:
		return m.updateList(keyMsg)
	case screenForm:
		return m.updateForm(keyMsg)
	case screenConfirm:
		return m.updateConfirm(keyMsg)
	default:
		return m.updateHome(keyMsg)
	}
}

func (m mainLoopModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if i, ok := digitIndex(msg); ok {
		if i >= len(mainMenuItems) {
			m.errMsg = fmt.Sprintf("Please choose a number between 1 and %d.", len(mainMenuItems))
			return m, nil
		}
		m.menuIdx = i
		return m.chooseMenuItem()
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(msg, keys.down):
		if m.menuIdx < len(mainMenuItems)-1 {
			m.menuIdx++
		}
	case key.Matches(msg, keys.enter):
		return m.chooseMenuItem()
	}

	return m, nil
}

func (m mainLoopModel) chooseMenuItem() (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch m.menuIdx {
	case menuView:
		return m.openList(listView)
	case menuEdit:
		return m.openList(listEdit)
	case menuCreate:
		m.form = newTaskForm()
		m.screen = screenForm
		return m, m.form.title.Focus()
	case menuDelete:
		return m.openList(listDelete)
	case menuLogout:
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) openList(purpose listPurpose) (tea.Model, tea.Cmd) {
	m.purpose = purpose
	m.screen = screenList
	m.idx = 0
	m.showDetail = false
	m.loading = true
	return m, m.cmdLoadTasks()
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if i, ok := digitIndex(msg); ok {
		if i < len(m.tasks) {
			m.idx = i
			m.errMsg = ""
		} else {
			m.errMsg = fmt.Sprintf("There is no task number %d.", i+1)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		return m.goHome()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.tasks)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.filter):
		m.filterIdx = (m.filterIdx + 1) % len(statusFilters)
		m.idx = 0
		m.loading = true
		return m, m.cmdLoadTasks()
	case key.Matches(msg, keys.copy):
		task, ok := m.current()
		if !ok {
			m.status = "No tasks."
			return m, nil
		}
		return m, cmdCopyToClipboard(task.String())
	case key.Matches(msg, keys.enter):
		task, ok := m.current()
		if !ok {
			m.status = "No tasks."
			return m, nil
		}
		m.status = ""
		m.errMsg = ""

		switch m.purpose {
		case listEdit:
			m.form = newEditTaskForm(task)
			m.screen = screenForm
			return m, nil
		case listDelete:
			m.pending = task
			m.screen = screenConfirm
			return m, nil
		default:
			m.showDetail = !m.showDetail
		}
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		if m.form.editing {
			m.screen = screenList
			return m, nil
		}
		return m.goHome()
	}

	submit, cmd := m.form.update(msg)
	if !submit {
		return m, cmd
	}

	if m.form.editing {
		update, err := m.form.taskUpdate(m.ctx)
		if err != nil {
			return m.formError(err)
		}
		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdEditTask(update)
	}

	task, err := m.form.newTask(m.ctx, m.userID)
	if err != nil {
		return m.formError(err)
	}
	m.form.errMsg = ""
	m.form.submitting = true
	return m, m.cmdCreateTask(task)
}

func (m mainLoopModel) formError(err error) (tea.Model, tea.Cmd) {
	if text, ok := userMessage(err); ok {
		m.form.errMsg = text
		return m, nil
	}
	m.form.errMsg = err.Error()
	return m, nil
}

func (m mainLoopModel) onTaskSaved(msg taskSavedMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false
	if msg.err != nil {
		if text, ok := userMessage(msg.err); ok {
			m.form.errMsg = text
			return m, nil
		}
		m.err = msg.err
		return m, tea.Quit
	}

	switch {
	case msg.created:
		m.status = fmt.Sprintf("Task created with id %d.", msg.taskID)
	case msg.found:
		m.status = "Task updated."
	default:
		m.status = app.MsgTaskNotFound
	}
	return m.goHome()
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deleting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.yes):
		m.deleting = true
		return m, m.cmdDeleteTask(m.pending.ID)
	case key.Matches(msg, keys.no):
		m.pending = models.Task{}
		m.screen = screenList
	}
	return m, nil
}

// goHome shows the main menu and refreshes the greeting.
func (m mainLoopModel) goHome() (tea.Model, tea.Cmd) {
	m.screen = screenHome
	m.showDetail = false
	m.pending = models.Task{}
	m.loading = true
	return m, m.cmdLoadHome()
}

// handleError shows expected failures and quits on anything else.
func (m mainLoopModel) handleError(err error) (tea.Model, tea.Cmd) {
	if text, ok := userMessage(err); ok {
		m.errMsg = text
		return m, nil
	}
	m.err = err
	return m, tea.Quit
}

func (m mainLoopModel) current() (models.Task, bool) {
	if len(m.tasks) == 0 || m.idx < 0 || m.idx >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.idx], true
}

func (m mainLoopModel) cmdLoadHome() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	tasks := m.services.TaskService
	userID := m.userID

	return func() tea.Msg {
		user, err := auth.GetUser(ctx, userID)
		if err != nil {
			return homeLoadedMsg{err: err}
		}
		uncompleted, err := tasks.ListUncompletedTasks(ctx, userID)
		return homeLoadedMsg{user: user, tasks: uncompleted, err: err}
	}
}

func (m mainLoopModel) cmdLoadTasks() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	userID := m.userID
	status := statusFilters[m.filterIdx]

	return func() tea.Msg {
		tasks, err := svc.ListTasks(ctx, userID, status)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m mainLoopModel) cmdCreateTask(task models.Task) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService

	return func() tea.Msg {
		taskID, err := svc.CreateTask(ctx, task)
		return taskSavedMsg{taskID: taskID, created: err == nil, err: err}
	}
}

func (m mainLoopModel) cmdEditTask(update models.TaskUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService

	return func() tea.Msg {
		found, err := svc.EditTask(ctx, update)
		return taskSavedMsg{taskID: update.TaskID, found: found, err: err}
	}
}

func (m mainLoopModel) cmdDeleteTask(taskID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService

	return func() tea.Msg {
		found, err := svc.RemoveTask(ctx, taskID)
		return taskDeletedMsg{taskID: taskID, found: found, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWriteAll(text)}
	}
}
