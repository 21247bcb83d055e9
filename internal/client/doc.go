// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It loops over the terminal sign-in flow and the signed-in main loop, and
// tags every signed-in session with its own session id in the logs.
package client
