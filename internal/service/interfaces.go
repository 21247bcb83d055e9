// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the account side of the shell-to-store contract.
type AuthService interface {
	// CreateAccount registers username with password and returns the new
	// user id. A taken username yields an error matching
	// store.ErrLoginAlreadyExists.
	CreateAccount(ctx context.Context, username, password string) (int64, error)

	// SignIn returns the id of the account matching both credentials, or
	// ErrWrongCredentials.
	SignIn(ctx context.Context, username, password string) (int64, error)

	// GetUser returns the account details for userID.
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// TaskService is the task side of the shell-to-store contract.
type TaskService interface {
	// ListTasks returns the user's tasks in creation order, optionally only
	// those with the given status.
	ListTasks(ctx context.Context, userID int64, status *models.CompletionStatus) ([]models.Task, error)

	// ListUncompletedTasks returns the user's tasks whose status is not
	// completed, in creation order.
	ListUncompletedTasks(ctx context.Context, userID int64) ([]models.Task, error)

	// CreateTask stores task for task.UserID and returns its id.
	CreateTask(ctx context.Context, task models.Task) (int64, error)

	// GetTask returns one task by id.
	GetTask(ctx context.Context, taskID int64) (models.Task, error)

	// EditTask applies a partial update. It returns false when the task
	// does not exist.
	EditTask(ctx context.Context, update models.TaskUpdate) (bool, error)

	// RemoveTask deletes a task and reports whether it existed.
	RemoveTask(ctx context.Context, taskID int64) (bool, error)
}

// AppInfoService exposes build metadata to the shell.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
