// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	usersTable = models.User{}.TableName()
	tasksTable = models.Task{}.TableName()

	userColumns = []string{"id", "username", "password", "streak"}
	taskColumns = []string{"id", "user_id", "title", "description", "priority", "completion_status", "due_date"}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ── users ─────────────────────────────────────────────────────────────────────

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "password", "streak").
		Values(user.Login, user.Password, 0).
		Suffix("RETURNING id").
		ToSql()
}

// buildAuthenticateUserQuery matches both columns exactly. The default
// collation of both backends compares TEXT case-sensitively.
func (db *DB) buildAuthenticateUserQuery(login, password string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": login}).
		Where(sq.Eq{"password": password}).
		ToSql()
}

func (db *DB) buildGetUserByIDQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func (db *DB) buildFindUserByLoginQuery(login string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": login}).
		ToSql()
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var streak sql.NullInt64

	if err := row.Scan(&user.UserID, &user.Login, &user.Password, &streak); err != nil {
		return models.User{}, err
	}
	user.Streak = streak.Int64

	return user, nil
}

// ── tasks ─────────────────────────────────────────────────────────────────────

func (db *DB) buildCreateTaskQuery(task models.Task) (string, []any, error) {
	return db.builder.
		Insert(tasksTable).
		Columns("user_id", "title", "description", "priority", "completion_status", "due_date").
		Values(task.UserID, task.Title, task.Description, string(task.Priority), string(task.CompletionStatus), task.DueDate).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildGetTaskQuery(taskID int64) (string, []any, error) {
	return db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": taskID}).
		ToSql()
}

// buildGetUserTasksQuery lists a user's tasks in insertion order, narrowed to
// an exact status when the filter carries one.
func (db *DB) buildGetUserTasksQuery(filter models.TaskFilter) (string, []any, error) {
	query := db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.CompletionStatus != nil {
		query = query.Where(sq.Eq{"completion_status": string(*filter.CompletionStatus)})
	}

	return query.OrderBy("id ASC").ToSql()
}

// buildUpdateTaskQuery overwrites every mutable column of the task.
func (db *DB) buildUpdateTaskQuery(task models.Task) (string, []any, error) {
	return db.builder.
		Update(tasksTable).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("priority", string(task.Priority)).
		Set("completion_status", string(task.CompletionStatus)).
		Set("due_date", task.DueDate).
		Where(sq.Eq{"id": task.ID}).
		ToSql()
}

func (db *DB) buildDeleteTaskQuery(taskID int64) (string, []any, error) {
	return db.builder.
		Delete(tasksTable).
		Where(sq.Eq{"id": taskID}).
		ToSql()
}

// scanTask reads a row selected with taskColumns. Nullable columns come back
// as empty strings.
func scanTask(row rowScanner) (models.Task, error) {
	var task models.Task
	var description, priority, status, dueDate sql.NullString

	if err := row.Scan(&task.ID, &task.UserID, &task.Title, &description, &priority, &status, &dueDate); err != nil {
		return models.Task{}, err
	}

	task.Description = description.String
	task.Priority = models.Priority(priority.String)
	task.CompletionStatus = models.CompletionStatus(status.String)
	task.DueDate = dueDate.String

	return task, nil
}
