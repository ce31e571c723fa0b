// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package candidates builds the pool of movies the recommendation engine ranks.

Pool sources:
  - popular: popular pages 1 and 2
  - top_rated: top rated pages 1 and 2
  - discover: discover pages 1 and 2 with genre, year and minimum rating filters
  - mixed (default): popular page 1 and top rated page 1, plus discover page 1
    restricted to the genre filter when one is given

After the base lists, TMDB's similar lists for the first few selected movies
are appended. The pool is deduplicated by movie id (first occurrence wins) and
capped at MaxCandidates.

Raw list pages are kept in a short-lived TTL cache keyed by endpoint and
parameters. Extracted features are never cached here. Warm refreshes the
popular and top rated pages ahead of demand; the supervisor runs it on an
interval.
*/
package candidates
