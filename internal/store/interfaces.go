package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts. Absent results are reported with
// [ErrNoUserWasFound] and duplicate usernames with [ErrLoginAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	AuthenticateUser(ctx context.Context, login, password string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// TaskRepository persists tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (int64, error)
	GetTask(ctx context.Context, taskID int64) (models.Task, error)
	GetUserTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	// UpdateTask reads the task, overlays the non-nil fields of update and
	// writes every column back. It returns false without writing when the
	// task does not exist.
	UpdateTask(ctx context.Context, update models.TaskUpdate) (bool, error)
	// DeleteTask reports whether a row was removed.
	DeleteTask(ctx context.Context, taskID int64) (bool, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
