// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package tmdb

import "strings"

// ImageBaseURL is TMDB's image CDN root.
const ImageBaseURL = "https://image.tmdb.org/t/p/"

// PosterSize is the rendition used for recommendation posters.
const PosterSize = "w500"

// ImageURL returns the CDN URL of an image path at the given size, or nil
// when the movie has no image.
func ImageURL(path *string, size string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url := ImageBaseURL + size + "/" + strings.TrimPrefix(*path, "/")
	return &url
}
