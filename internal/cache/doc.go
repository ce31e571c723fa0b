// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache provides a generic in-memory TTL cache.

The candidate pool builder uses it to keep TMDB list pages (popular, top rated,
discover) for a short time so that bursts of recommendation requests do not
refetch the same pages. Extracted movie features are never cached.

Usage:

	pages := cache.New[*models.MovieList](10 * time.Minute)
	defer pages.Close()

	key := cache.GenerateKey("popular", 1)
	if list, ok := pages.Get(key); ok {
	    return list, nil
	}

Thread Safety:

All methods are safe for concurrent use. Statistics are tracked under a
separate lock from the entry map.
*/
package cache
