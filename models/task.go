package models

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is the calendar date layout accepted for Task.DueDate.
const DueDateLayout = "2006-01-02"

// Priority is the enumerated importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every allowed Priority in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the allowed priorities.
func (p Priority) Valid() bool {
	for _, allowed := range Priorities {
		if p == allowed {
			return true
		}
	}
	return false
}

// CompletionStatus is the enumerated progress state of a task.
type CompletionStatus string

const (
	StatusNotStarted CompletionStatus = "not started"
	StatusInProgress CompletionStatus = "in progress"
	StatusCompleted  CompletionStatus = "completed"
)

// CompletionStatuses lists every allowed CompletionStatus in display order.
var CompletionStatuses = []CompletionStatus{StatusNotStarted, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the allowed statuses.
func (s CompletionStatus) Valid() bool {
	for _, allowed := range CompletionStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// Task is a snapshot of a single persisted task. Values returned by the store
// are copies; changing them has no effect until passed back through an update.
type Task struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Priority         Priority         `json:"priority"`
	CompletionStatus CompletionStatus `json:"completion_status"`
	DueDate          string           `json:"due_date"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// String renders the task as a single human readable line.
func (t Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s, %s] due %s", t.Title, t.Priority, t.CompletionStatus, t.DueDate)
	if t.Description != "" {
		b.WriteString(": ")
		b.WriteString(t.Description)
	}
	return b.String()
}

// TaskUpdate carries a partial task edit. A nil field keeps the stored value.
type TaskUpdate struct {
	TaskID           int64
	Title            *string
	Description      *string
	Priority         *Priority
	CompletionStatus *CompletionStatus
	DueDate          *string
}

// IsEmpty reports whether no field is set.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.Priority == nil &&
		u.CompletionStatus == nil &&
		u.DueDate == nil
}

// Apply overlays the supplied fields on a copy of task and returns it.
func (u TaskUpdate) Apply(task Task) Task {
	if u.Title != nil {
		task.Title = *u.Title
	}
	if u.Description != nil {
		task.Description = *u.Description
	}
	if u.Priority != nil {
		task.Priority = *u.Priority
	}
	if u.CompletionStatus != nil {
		task.CompletionStatus = *u.CompletionStatus
	}
	if u.DueDate != nil {
		task.DueDate = *u.DueDate
	}
	return task
}

// TaskFilter narrows a task listing to one user and, optionally, one status.
type TaskFilter struct {
	UserID           int64
	CompletionStatus *CompletionStatus
}

// ParseDueDate parses a YYYY-MM-DD calendar date.
func ParseDueDate(value string) (time.Time, error) {
	return time.Parse(DueDateLayout, value)
}
