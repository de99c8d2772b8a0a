package app

import "errors"

var (
	ErrNilChecker       = errors.New("project checker is nil")
	ErrProjectUnhealthy = errors.New("supabase project is unhealthy")
)
