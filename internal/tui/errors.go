// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

// ErrUserQuit is returned when the user leaves the program from the sign-in
// screens.
var ErrUserQuit = errors.New("user quit the program")

var userMessages = []struct {
	err error
	msg string
}{
	{service.ErrWrongCredentials, app.MsgWrongCredentials},
	{store.ErrLoginAlreadyExists, app.MsgUserAlreadyExists},
	{store.ErrTaskNotFound, app.MsgTaskNotFound},
	{store.ErrNoUserWasFound, app.MsgUserNotFound},
	{validators.ErrEmptyLogin, app.MsgEmptyUsername},
	{validators.ErrEmptyPassword, app.MsgEmptyPassword},
	{validators.ErrEmptyTitle, app.MsgEmptyTitle},
	{validators.ErrInvalidPriority, app.MsgInvalidPriority},
	{validators.ErrInvalidCompletionStatus, app.MsgInvalidStatus},
	{validators.ErrInvalidDueDate, app.MsgInvalidDueDate},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
}

// userMessage returns the text shown for an expected failure. ok is false
// for failures the shell cannot recover from; those end the program.
func userMessage(err error) (msg string, ok bool) {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return "", false
}
