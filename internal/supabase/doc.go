// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package supabase builds and shares the client handle for a Supabase
// project.
//
// The handle is constructed from exactly two values, the project URL and the
// anonymous key, which are forwarded unchanged to
// github.com/supabase-community/supabase-go. Query building, auth flows and
// storage operations are performed through the library's own sub-clients
// ([Client.API], [Client.Storage]); this package adds only key inspection
// and a health probe on top.
//
// Most applications obtain the process-wide handle via [Shared].
package supabase
