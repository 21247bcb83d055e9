package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

var sampleTasks = []models.Task{
	{ID: 3, UserID: 1, Title: "Buy milk", Priority: models.PriorityLow, CompletionStatus: models.StatusNotStarted, DueDate: "2025-01-01"},
	{ID: 8, UserID: 1, Title: "Pay rent", Description: "before noon", Priority: models.PriorityHigh, CompletionStatus: models.StatusInProgress, DueDate: "2025-02-01"},
}

// newLoadedMainLoop returns a main loop model whose home screen is loaded.
func newLoadedMainLoop(t *testing.T) (mainLoopModel, testServices) {
	t.Helper()
	ts := newTestServices(t)
	m := newMainLoopModel(context.Background(), ts.services, 1)

	updated, _ := m.Update(homeLoadedMsg{user: models.User{UserID: 1, Login: "alice"}, tasks: sampleTasks})
	return updated.(mainLoopModel), ts
}

func step(t *testing.T, m mainLoopModel, msg any) (mainLoopModel, func() any) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next := updated.(mainLoopModel)
	if cmd == nil {
		return next, nil
	}
	return next, func() any { return cmd() }
}

func TestMainLoop_HomeGreeting(t *testing.T) {
	m, _ := newLoadedMainLoop(t)
	view := m.View()

	assert.Contains(t, view, "Hello alice, here are your current uncompleted tasks.")
	assert.Contains(t, view, "Buy milk")
	for i, item := range mainMenuItems {
		assert.Contains(t, view, item, "menu item %d", i+1)
	}
}

func TestMainLoop_LoadHomeCallsServices(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	m := newMainLoopModel(ctx, ts.services, 1)

	ts.auth.EXPECT().GetUser(ctx, int64(1)).Return(models.User{UserID: 1, Login: "alice"}, nil)
	ts.tasks.EXPECT().ListUncompletedTasks(ctx, int64(1)).Return(sampleTasks, nil)

	msg := m.cmdLoadHome()()
	assert.Equal(t, homeLoadedMsg{user: models.User{UserID: 1, Login: "alice"}, tasks: sampleTasks}, msg)
}

func TestMainLoop_ViewTasksAndFilter(t *testing.T) {
	m, ts := newLoadedMainLoop(t)
	ctx := context.Background()

	ts.tasks.EXPECT().ListTasks(ctx, int64(1), (*models.CompletionStatus)(nil)).Return(sampleTasks, nil)
	m, cmd := step(t, m, keyRunes("1"))
	require.Equal(t, screenList, m.screen)
	m, _ = step(t, m, cmd())

	assert.Contains(t, m.View(), "Filter: all")
	assert.Contains(t, m.View(), "Pay rent")

	notStarted := models.StatusNotStarted
	ts.tasks.EXPECT().ListTasks(ctx, int64(1), &notStarted).Return(sampleTasks[:1], nil)
	m, cmd = step(t, m, keyRunes("f"))
	m, _ = step(t, m, cmd())

	assert.Contains(t, m.View(), "Filter: not started")
	assert.NotContains(t, m.View(), "Pay rent")
}

func TestMainLoop_ListDetailAndSelection(t *testing.T) {
	m, _ := newLoadedMainLoop(t)
	m.screen = screenList
	m.tasks = sampleTasks

	m, _ = step(t, m, keyRunes("2"))
	assert.Equal(t, 1, m.idx)

	m, _ = step(t, m, keyEnter)
	assert.True(t, m.showDetail)
	assert.Contains(t, m.View(), "before noon")

	m, _ = step(t, m, keyRunes("9"))
	assert.Equal(t, 1, m.idx)
	assert.Contains(t, m.errMsg, "no task number 9")
}

func TestMainLoop_CopyToClipboard(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })

	m, _ := newLoadedMainLoop(t)
	m.screen = screenList
	m.tasks = sampleTasks

	m, cmd := step(t, m, keyRunes("c"))
	m, _ = step(t, m, cmd())

	assert.Equal(t, sampleTasks[0].String(), copied)
	assert.Equal(t, "Copied to clipboard.", m.status)
}

func TestMainLoop_ClipboardFailureIsNotFatal(t *testing.T) {
	orig := clipboardWriteAll
	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { clipboardWriteAll = orig })

	m, _ := newLoadedMainLoop(t)
	m.screen = screenList
	m.tasks = sampleTasks

	m, cmd := step(t, m, keyRunes("c"))
	m, next := step(t, m, cmd())

	assert.Nil(t, next)
	assert.Contains(t, m.errMsg, "no clipboard")
	assert.NoError(t, m.err)
}

func TestMainLoop_CreateTask(t *testing.T) {
	m, ts := newLoadedMainLoop(t)
	ctx := context.Background()

	m, _ = step(t, m, keyRunes("3"))
	require.Equal(t, screenForm, m.screen)
	require.False(t, m.form.editing)

	m.form.title.SetValue("Buy milk")
	m.form.dueDate.SetValue("2025-01-01")

	want := models.Task{UserID: 1, Title: "Buy milk", Priority: models.PriorityLow, CompletionStatus: models.StatusNotStarted, DueDate: "2025-01-01"}
	ts.tasks.EXPECT().CreateTask(ctx, want).Return(int64(12), nil)

	m, cmd := step(t, m, keyEnter)
	require.True(t, m.form.submitting)
	m, _ = step(t, m, cmd())

	assert.Equal(t, screenHome, m.screen)
	assert.Equal(t, "Task created with id 12.", m.status)
}

func TestMainLoop_CreateTaskRejectsBadDate(t *testing.T) {
	m, _ := newLoadedMainLoop(t)

	m, _ = step(t, m, keyRunes("3"))
	m.form.title.SetValue("Buy milk")
	m.form.dueDate.SetValue("2025/01/01")

	m, cmd := step(t, m, keyEnter)
	assert.Nil(t, cmd, "the store is never called")
	assert.Equal(t, "Due date must be in YYYY-MM-DD format.", m.form.errMsg)
}

func TestMainLoop_EditTaskPartialUpdate(t *testing.T) {
	m, ts := newLoadedMainLoop(t)
	ctx := context.Background()

	ts.tasks.EXPECT().ListTasks(ctx, int64(1), (*models.CompletionStatus)(nil)).Return(sampleTasks, nil)
	m, cmd := step(t, m, keyRunes("2"))
	m, _ = step(t, m, cmd())
	require.Equal(t, listEdit, m.purpose)

	m, _ = step(t, m, keyRunes("2"))
	m, _ = step(t, m, keyEnter)
	require.Equal(t, screenForm, m.screen)
	require.True(t, m.form.editing)

	m.form.setFocus(fieldPriority)
	m, _ = step(t, m, keyRight)

	low := models.PriorityLow
	ts.tasks.EXPECT().EditTask(ctx, models.TaskUpdate{TaskID: 8, Priority: &low}).Return(true, nil)

	m, cmd = step(t, m, keyEnter)
	m, _ = step(t, m, cmd())

	assert.Equal(t, screenHome, m.screen)
	assert.Equal(t, "Task updated.", m.status)
}

func TestMainLoop_EditMissingTask(t *testing.T) {
	m, _ := newLoadedMainLoop(t)

	m, _ = step(t, m, taskSavedMsg{taskID: 8, found: false})
	assert.Equal(t, "Task not found.", m.status)
}

func TestMainLoop_DeleteWithConfirmation(t *testing.T) {
	m, ts := newLoadedMainLoop(t)
	ctx := context.Background()
	m.purpose = listDelete
	m.screen = screenList
	m.tasks = sampleTasks

	m, _ = step(t, m, keyEnter)
	require.Equal(t, screenConfirm, m.screen)
	assert.Contains(t, m.View(), `Delete "Buy milk"?`)

	m, _ = step(t, m, keyRunes("n"))
	require.Equal(t, screenList, m.screen)

	m, _ = step(t, m, keyEnter)
	ts.tasks.EXPECT().RemoveTask(ctx, int64(3)).Return(true, nil)
	m, cmd := step(t, m, keyRunes("y"))
	m, _ = step(t, m, cmd())

	assert.Equal(t, screenHome, m.screen)
	assert.Equal(t, "Task deleted.", m.status)
}

func TestMainLoop_DeleteIgnoresRepeatedConfirm(t *testing.T) {
	m, ts := newLoadedMainLoop(t)
	ctx := context.Background()
	m.purpose = listDelete
	m.screen = screenList
	m.tasks = sampleTasks

	m, _ = step(t, m, keyEnter)
	require.Equal(t, screenConfirm, m.screen)

	ts.tasks.EXPECT().RemoveTask(ctx, int64(3)).Return(true, nil).Times(1)
	m, cmd := step(t, m, keyRunes("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.deleting)
	assert.Contains(t, m.View(), `Deleting "Buy milk"`)

	m, again := step(t, m, keyRunes("y"))
	assert.Nil(t, again, "a second y while deleting sends nothing")
	m, _ = step(t, m, keyRunes("n"))
	assert.Equal(t, screenConfirm, m.screen, "cancel is ignored while deleting")

	m, _ = step(t, m, cmd())
	assert.False(t, m.deleting)
	assert.Equal(t, screenHome, m.screen)
	assert.Equal(t, "Task deleted.", m.status)
}

func TestMainLoop_Logout(t *testing.T) {
	m, _ := newLoadedMainLoop(t)

	updated, cmd := m.Update(keyRunes("5"))
	assert.True(t, isQuit(cmd))
	assert.True(t, updated.(mainLoopModel).logout)
}

func TestMainLoop_OutOfRangeMenuChoice(t *testing.T) {
	m, _ := newLoadedMainLoop(t)

	m, cmd := step(t, m, keyRunes("8"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Please choose a number between 1 and 5.", m.errMsg)
}

func TestMainLoop_ExpectedErrorsAreShown(t *testing.T) {
	m, _ := newLoadedMainLoop(t)

	updated, cmd := m.Update(tasksLoadedMsg{err: store.ErrNoUserWasFound})
	assert.Nil(t, cmd)
	assert.Equal(t, "User not found.", updated.(mainLoopModel).errMsg)

	m.screen = screenForm
	updated, cmd = m.Update(taskSavedMsg{err: service.ErrInvalidDataProvided})
	assert.Nil(t, cmd)
	assert.Equal(t, "Invalid data provided.", updated.(mainLoopModel).form.errMsg)
}

func TestMainLoop_StoreFailureEndsProgram(t *testing.T) {
	m, _ := newLoadedMainLoop(t)

	updated, cmd := m.Update(tasksLoadedMsg{err: store.ErrExecutingQuery})
	assert.True(t, isQuit(cmd))
	assert.ErrorIs(t, updated.(mainLoopModel).err, store.ErrExecutingQuery)
}

func TestRenderTaskTable_StyledCellsKeepText(t *testing.T) {
	done := sampleTasks[0]
	done.CompletionStatus = models.StatusCompleted

	table := renderTaskTable([]models.Task{done, sampleTasks[1]}, 1)

	assert.Contains(t, table, "Buy milk")
	assert.Contains(t, table, "high")
	assert.Contains(t, table, "> 2")
	assert.Equal(t, "odd", priorityCell(models.Priority("odd"), "odd"))
}
