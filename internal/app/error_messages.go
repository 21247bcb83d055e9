// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// terminal screens.
//
// Keeping them in one place ensures consistent wording across the shell.
package app

const (
	// MsgWrongCredentials is shown when sign-in finds no account with the
	// given username and password.
	MsgWrongCredentials = "Wrong username or password."

	// MsgUserAlreadyExists is shown when the username of a new account is
	// taken.
	MsgUserAlreadyExists = "User already exists."

	// MsgTaskNotFound is shown when a task id does not exist anymore.
	MsgTaskNotFound = "Task not found."

	// MsgUserNotFound is shown when the signed-in account cannot be found.
	MsgUserNotFound = "User not found."

	MsgEmptyUsername = "Username must not be empty."
	MsgEmptyPassword = "Password must not be empty."
	MsgEmptyTitle    = "Title must not be empty."

	// MsgInvalidPriority lists the allowed priorities.
	MsgInvalidPriority = "Priority must be low, medium or high."

	// MsgInvalidStatus lists the allowed completion statuses.
	MsgInvalidStatus = "Status must be not started, in progress or completed."

	// MsgInvalidDueDate is shown for a due date not in YYYY-MM-DD form.
	MsgInvalidDueDate = "Due date must be in YYYY-MM-DD format."

	// MsgInvalidDataProvided is the fallback for any other rejected input.
	MsgInvalidDataProvided = "Invalid data provided."

	// MsgCredentialsRequired is shown when a sign-in or create-account form
	// is submitted with an empty field.
	MsgCredentialsRequired = "Username and password are required."

	// MsgPasswordsDoNotMatch is shown when the repeated password differs.
	MsgPasswordsDoNotMatch = "Passwords do not match."

	// MsgFarewell is printed when the user logs out or leaves the program.
	MsgFarewell = "Goodbye and see you soon!"
)
