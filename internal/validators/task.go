package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field names accepted by [TaskValidator] and [UserValidator].
const (
	FieldTaskID           = "task_id"
	FieldUserID           = "user_id"
	FieldTitle            = "title"
	FieldPriority         = "priority"
	FieldCompletionStatus = "completion_status"
	FieldDueDate          = "due_date"

	FieldLogin    = "login"
	FieldPassword = "password"
)

// TaskValidator validates [models.Task], [models.TaskUpdate] and
// [models.TaskFilter] values.
type TaskValidator struct{}

// NewTaskValidator returns a [TaskValidator] as a [Validator].
func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	case models.TaskUpdate:
		return v.validateTaskUpdate(ctx, value, fields...)
	case *models.TaskUpdate:
		return v.validateTaskUpdate(ctx, *value, fields...)

	case models.TaskFilter:
		return v.validateTaskFilter(ctx, value, fields...)
	case *models.TaskFilter:
		return v.validateTaskFilter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTask checks a complete task record. The ID is not checked, so the
// same rules apply before and after the store assigns it.
func (v *TaskValidator) validateTask(_ context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldPriority, FieldCompletionStatus, FieldDueDate}
	}

	for _, f := range fields {
		switch f {
		case FieldTaskID:
			if task.ID <= 0 {
				return ErrInvalidTaskID
			}
		case FieldUserID:
			if task.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if !isValidTitle(task.Title) {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if !task.Priority.Valid() {
				return ErrInvalidPriority
			}
		case FieldCompletionStatus:
			if !task.CompletionStatus.Valid() {
				return ErrInvalidCompletionStatus
			}
		case FieldDueDate:
			if !isValidDueDate(task.DueDate) {
				return ErrInvalidDueDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTaskUpdate checks only the supplied fields. An update with no
// fields is valid: it rewrites the task unchanged.
func (v *TaskValidator) validateTaskUpdate(_ context.Context, update models.TaskUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTaskID, FieldTitle, FieldPriority, FieldCompletionStatus, FieldDueDate}
	}

	for _, f := range fields {
		switch f {
		case FieldTaskID:
			if update.TaskID <= 0 {
				return ErrInvalidTaskID
			}
		case FieldTitle:
			if update.Title != nil && !isValidTitle(*update.Title) {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if update.Priority != nil && !update.Priority.Valid() {
				return ErrInvalidPriority
			}
		case FieldCompletionStatus:
			if update.CompletionStatus != nil && !update.CompletionStatus.Valid() {
				return ErrInvalidCompletionStatus
			}
		case FieldDueDate:
			if update.DueDate != nil && !isValidDueDate(*update.DueDate) {
				return ErrInvalidDueDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateTaskFilter(_ context.Context, filter models.TaskFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCompletionStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if filter.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldCompletionStatus:
			if filter.CompletionStatus != nil && !filter.CompletionStatus.Valid() {
				return ErrInvalidCompletionStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

func isValidDueDate(date string) bool {
	_, err := models.ParseDueDate(date)
	return err == nil
}
