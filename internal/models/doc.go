// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package models defines data structures shared across the Reelmatch service.

The package holds the TMDB wire shapes consumed by the metadata client and the
recommendation engine, plus the standard API response envelope returned by
every HTTP endpoint. It is the single source of truth for these structures and
has no dependencies on other internal packages.

Key Components:

  - Movie: a TMDB list record (popular, top rated, discover, similar)
  - MovieDetails: the detail record with credits appended
  - MovieList: a paged list response
  - APIResponse: standardized API response wrapper
  - APIError: structured error details
  - Metadata: response metadata (timestamp, processing time)

Usage Example - API Response:

	import "github.com/tomtom215/reelmatch/internal/models"

	response := models.APIResponse{
	    Status: "success",
	    Data:   payload,
	    Metadata: models.Metadata{
	        Timestamp:   time.Now(),
	        QueryTimeMS: 45,
	    },
	}

JSON Tags:

TMDB structures use the field names TMDB emits (snake_case) so list and detail
payloads decode without translation. Envelope structures follow the same
snake_case convention.

Thread Safety:

Model structs are plain data. Values returned by the TMDB client are not shared
between goroutines by the client itself; callers that share them must not
mutate them.
*/
package models
