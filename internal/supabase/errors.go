package supabase

import "errors"

var (
	// ErrCreateClient wraps failures reported by the library constructor.
	ErrCreateClient = errors.New("create supabase client")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	// ErrUnavailable is returned when the project cannot be reached or
	// answers with a 5xx status.
	ErrUnavailable = errors.New("service unavailable")
)
