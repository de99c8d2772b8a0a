// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs the supabase-check diagnostic: it reports which project
// the shared handle points at and whether that project answers.
package app

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/project_checker_mock.go -package=mock

// ProjectChecker is the part of the client handle the diagnostic needs.
type ProjectChecker interface {
	// URL returns the project URL the handle was built with.
	URL() string

	// Health returns nil if the project answered the probe successfully.
	Health(ctx context.Context) error
}
