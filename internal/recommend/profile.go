// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"sort"
)

const (
	profileTopGenres    = 5
	profileTopDirectors = 5
	profileTopCast      = 10
	profileTopKeywords  = 10
)

// SynthesizeProfile aggregates the features of the selected movies into a
// single synthetic MovieFeatures that represents the user's taste.
//
// Categorical fields keep their most frequent values (ties go to the value
// seen first). Numeric fields are averaged; year and runtime are rounded.
func SynthesizeProfile(selected []MovieFeatures, vec *Vectorizer) (MovieFeatures, error) {
	if len(selected) == 0 {
		return MovieFeatures{}, ErrNoSelectedFeatures
	}

	genres := newTally[int]()
	directors := newTally[string]()
	cast := newTally[string]()
	keywords := newTally[string]()
	languages := newTally[string]()

	var ratingSum, popularitySum float64
	var yearSum, runtimeSum int

	for i := range selected {
		f := &selected[i]
		genres.addAll(f.Genres)
		directors.addAll(f.Director)
		cast.addAll(f.Cast)
		keywords.addAll(f.Keywords)
		if f.Language != "" {
			languages.add(f.Language)
		}

		ratingSum += f.Rating
		popularitySum += f.Popularity
		yearSum += f.Year
		runtimeSum += f.Runtime
	}

	n := float64(len(selected))
	profile := MovieFeatures{
		ID:         ProfileID,
		Title:      ProfileTitle,
		Genres:     genres.top(profileTopGenres),
		GenreNames: []string{},
		Rating:     ratingSum / n,
		Year:       int(math.Round(float64(yearSum) / n)),
		Popularity: popularitySum / n,
		Runtime:    int(math.Round(float64(runtimeSum) / n)),
		Director:   directors.top(profileTopDirectors),
		Cast:       cast.top(profileTopCast),
		Keywords:   keywords.top(profileTopKeywords),
		Language:   defaultLanguage,
	}
	if top := languages.top(1); len(top) == 1 {
		profile.Language = top[0]
	}

	profile.FeatureVector = vec.Vector(
		profile.Genres,
		profile.Rating,
		profile.Year,
		profile.Popularity,
		profile.Runtime,
		profile.Language,
	)
	return profile, nil
}

// tally counts values while remembering the order they were first seen.
type tally[K comparable] struct {
	counts map[K]int
	order  []K
}

func newTally[K comparable]() *tally[K] {
	return &tally[K]{counts: make(map[K]int)}
}

func (t *tally[K]) add(v K) {
	if _, seen := t.counts[v]; !seen {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

func (t *tally[K]) addAll(vs []K) {
	for _, v := range vs {
		t.add(v)
	}
}

// top returns up to n values by descending count, first-seen on ties.
func (t *tally[K]) top(n int) []K {
	ranked := append([]K(nil), t.order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.counts[ranked[i]] > t.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []K{}
	}
	return ranked
}
