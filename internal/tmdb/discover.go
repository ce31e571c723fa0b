// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package tmdb

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultSortBy is the discover ordering used when none is given.
const DefaultSortBy = "popularity.desc"

// DiscoverParams are the filters accepted by the discover endpoint.
// Zero values are omitted from the query.
type DiscoverParams struct {
	Genres           []int   `json:"genres,omitempty"`
	MinRating        float64 `json:"min_rating,omitempty"`
	Year             int     `json:"year,omitempty"`
	SortBy           string  `json:"sort_by,omitempty"`
	Country          string  `json:"country,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	Page             int     `json:"page,omitempty"`
}

// Values encodes the params as TMDB query parameters.
func (p DiscoverParams) Values() url.Values {
	v := pageQuery(p.Page)

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	v.Set("sort_by", sortBy)

	if len(p.Genres) > 0 {
		ids := make([]string, len(p.Genres))
		for i, g := range p.Genres {
			ids[i] = strconv.Itoa(g)
		}
		v.Set("with_genres", strings.Join(ids, ","))
	}
	if p.MinRating > 0 {
		v.Set("vote_average.gte", strconv.FormatFloat(p.MinRating, 'f', -1, 64))
	}
	if p.Year > 0 {
		v.Set("primary_release_year", strconv.Itoa(p.Year))
	}
	if p.Country != "" {
		v.Set("with_origin_country", p.Country)
	}
	if p.OriginalLanguage != "" {
		v.Set("with_original_language", p.OriginalLanguage)
	}
	return v
}
