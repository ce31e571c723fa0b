// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

// Movie is a TMDB movie list record as returned by the popular, top rated,
// discover and similar endpoints. It is also the shape clients send when
// listing the movies they liked.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	PosterPath       *string `json:"poster_path"`
	GenreIDs         []int   `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
}

// Genre is a TMDB genre entry.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is a billed cast entry. TMDB returns cast in billing order.
type CastMember struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is a crew entry. Job is the exact TMDB job title ("Director").
type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits groups cast and crew as appended to a detail response.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the detail record fetched with append_to_response=credits.
// Runtime is in minutes; 0 means TMDB has no value.
type MovieDetails struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Overview         string   `json:"overview"`
	ReleaseDate      string   `json:"release_date"`
	VoteAverage      float64  `json:"vote_average"`
	Popularity       float64  `json:"popularity"`
	Runtime          int      `json:"runtime"`
	OriginalLanguage string   `json:"original_language"`
	Genres           []Genre  `json:"genres"`
	Credits          *Credits `json:"credits,omitempty"`
}

// Directors returns the names of crew members whose job is exactly "Director".
func (d *MovieDetails) Directors() []string {
	if d == nil || d.Credits == nil {
		return nil
	}
	var names []string
	for _, c := range d.Credits.Crew {
		if c.Job == "Director" {
			names = append(names, c.Name)
		}
	}
	return names
}

// MovieList is a single page of a TMDB list endpoint.
type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}
