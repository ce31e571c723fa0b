// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides centralized zerolog-based structured logging.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    Timestamp: true,
//	})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Err(err).Msg("TMDB unreachable")
//
// # Request Context
//
// The API middleware stores the chi request ID in the request context.
// Ctx returns a logger carrying it, so every line logged while serving one
// request can be correlated:
//
//	logging.Ctx(r.Context()).Warn().Msg("Candidate pool empty")
//
// # slog Integration
//
// SlogHandler adapts zerolog to log/slog for libraries that only accept an
// *slog.Logger, such as the sutureslog supervisor event hook.
//
// # Configuration
//
// Level, format and caller reporting come from the logging section of the
// service configuration (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
package logging
