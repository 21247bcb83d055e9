// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal shell of the task tracker
// on top of Bubble Tea: the sign-in flow and the signed-in main loop.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

// TUI runs the terminal screens over the service layer.
type TUI struct {
	services *service.Services
	logger   *logger.Logger
	options  []tea.ProgramOption

	// notice is shown on the next sign-in menu.
	notice string
}

// New creates a TUI. Extra program options are passed to every
// [tea.NewProgram] call; the alternate screen is always used.
func New(services *service.Services, logger *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}

	return &TUI{
		services: services,
		logger:   logger,
		options:  append([]tea.ProgramOption{tea.WithAltScreen()}, options...),
	}, nil
}

// LoginFlow shows the sign-in menu until the user signs in and returns the
// user id. It returns [ErrUserQuit] when the user leaves the program.
func (t *TUI) LoginFlow(ctx context.Context) (userID int64, err error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(t.notice),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}
	t.notice = ""

	root := NewRootModel(pages, pageMenu, t.services.AppInfoService.GetBuildInfo(ctx))
	finalModel, runErr := tea.NewProgram(root, t.programOptions(ctx)...).Run()
	if runErr != nil {
		return 0, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return 0, tea.ErrProgramKilled
	}
	if result.err != nil {
		return 0, result.err
	}
	if result.quitByUser || result.resultID == 0 {
		return 0, ErrUserQuit
	}

	t.logger.Info().Str("func", "*TUI.LoginFlow").Int64("user_id", result.resultID).Msg("user signed in")

	return result.resultID, nil
}

// MainLoop runs the signed-in menu. logout is true when the user chose to
// log out; an unrecoverable store failure is returned as err.
func (t *TUI) MainLoop(ctx context.Context, userID int64) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, userID)
	finalModel, runErr := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil {
		return false, result.err
	}

	if result.logout {
		t.notice = farewellMessage
	}
	return result.logout, nil
}

// Farewell returns the message printed when the user leaves.
func (t *TUI) Farewell() string {
	return farewellMessage
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
}
