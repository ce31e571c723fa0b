// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
)

// numericDimensions is the count of scalar features between the genre and
// language flags: rating, year, popularity, runtime.
const numericDimensions = 4

// Vectorizer encodes movie attributes as a fixed-length numeric vector.
//
// Layout, in order:
//
//	genre flags      one per reference genre code (1 if present)
//	rating           rating / 10
//	year             (year - 1900) / 130, unclamped
//	popularity       ln(popularity + 1) / 10
//	runtime          min(runtime / 300, 1)
//	language flags   one per reference language (1 if equal)
//
// All vectors produced by one Vectorizer have the same length.
type Vectorizer struct {
	genreIndex map[int]int
	genreCount int
	languages  []string
	dims       int
}

// NewVectorizer creates a vectorizer over the given reference genre codes and
// languages. Order is preserved.
func NewVectorizer(genreCodes []int, languages []string) *Vectorizer {
	idx := make(map[int]int, len(genreCodes))
	for i, code := range genreCodes {
		if _, dup := idx[code]; !dup {
			idx[code] = i
		}
	}
	return &Vectorizer{
		genreIndex: idx,
		genreCount: len(genreCodes),
		languages:  append([]string(nil), languages...),
		dims:       len(genreCodes) + numericDimensions + len(languages),
	}
}

// Dimensions returns the vector length.
func (v *Vectorizer) Dimensions() int {
	return v.dims
}

// Vector encodes the given attributes.
func (v *Vectorizer) Vector(genres []int, rating float64, year int, popularity float64, runtime int, language string) []float64 {
	vec := make([]float64, v.dims)

	for _, g := range genres {
		if i, ok := v.genreIndex[g]; ok {
			vec[i] = 1
		}
	}

	base := v.genreCount
	vec[base] = rating / 10
	vec[base+1] = float64(year-1900) / 130
	vec[base+2] = math.Log(popularity+1) / 10
	vec[base+3] = math.Min(float64(runtime)/300, 1)

	base += numericDimensions
	for i, lang := range v.languages {
		if lang == language {
			vec[base+i] = 1
		}
	}

	return vec
}
