// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
	"strings"
)

// Reason thresholds. A channel explains a score only when its similarity is
// strictly above its threshold.
const (
	genreReasonThreshold    = 0.5
	ratingReasonThreshold   = 0.7
	directorReasonThreshold = 0.5
	castReasonThreshold     = 0.3
	keywordReasonThreshold  = 0.3
	yearReasonThreshold     = 0.8

	// ratingRange and yearRange are the differences at which those channels
	// reach zero similarity.
	ratingRange = 10.0
	yearRange   = 50.0
)

// Score computes the weighted similarity of candidate to profile and the
// human-readable reasons behind it.
//
// Only channels with a positive weight contribute. The director channel also
// requires the profile to have at least one director. The result is the
// weighted average of the contributing channel similarities, in [0, 1], and 0
// when no channel contributes. Reasons are ordered genre, rating, director,
// cast, keywords, year; cinematography never produces one.
//
//nolint:gocritic // features passed by value for immutable semantics
func Score(profile, candidate MovieFeatures, weights Weights) (float64, []string) {
	reasons := []string{}
	var totalScore, totalWeight float64

	accumulate := func(sim float64, weight int) {
		w := float64(weight) / 100
		totalScore += sim * w
		totalWeight += w
	}

	if weights.Genre > 0 {
		sim := jaccard(profile.Genres, candidate.Genres)
		accumulate(sim, weights.Genre)
		if sim > genreReasonThreshold {
			if common := commonNames(profile.GenreNames, candidate.GenreNames); len(common) > 0 {
				reasons = append(reasons, "Similar genres: "+strings.Join(common, ", "))
			}
		}
	}

	if weights.Rating > 0 {
		sim := math.Max(0, 1-math.Abs(profile.Rating-candidate.Rating)/ratingRange)
		accumulate(sim, weights.Rating)
		if sim > ratingReasonThreshold {
			reasons = append(reasons, fmt.Sprintf("Similar rating (%.1f/10)", candidate.Rating))
		}
	}

	if weights.Director > 0 && len(profile.Director) > 0 {
		sim := overlap(profile.Director, candidate.Director)
		accumulate(sim, weights.Director)
		if sim > directorReasonThreshold {
			reasons = append(reasons, "Familiar director style")
		}
	}

	if weights.Cast > 0 {
		sim := overlap(profile.Cast, candidate.Cast)
		accumulate(sim, weights.Cast)
		if sim > castReasonThreshold {
			reasons = append(reasons, "Similar cast members")
		}
	}

	if weights.Keywords > 0 {
		sim := overlap(profile.Keywords, candidate.Keywords)
		accumulate(sim, weights.Keywords)
		if sim > keywordReasonThreshold {
			reasons = append(reasons, "Similar themes and style")
		}
	}

	if weights.Year > 0 {
		sim := math.Max(0, 1-math.Abs(float64(profile.Year-candidate.Year))/yearRange)
		accumulate(sim, weights.Year)
		if sim > yearReasonThreshold {
			reasons = append(reasons, fmt.Sprintf("From similar era (%d)", candidate.Year))
		}
	}

	if weights.Cinematography > 0 {
		accumulate(cosine(profile.FeatureVector, candidate.FeatureVector), weights.Cinematography)
	}

	if totalWeight == 0 {
		return 0, reasons
	}
	// Pre-1900 release years can push the cosine channel below zero.
	return math.Min(1, math.Max(0, totalScore/totalWeight)), reasons
}

// jaccard returns |A∩B| / |A∪B| over the sets of a and b, 0 if either is empty.
func jaccard(a, b []int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[int]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[int]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}

	intersection := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// overlap returns |A∩B| / max(|A|, |B|) over case-insensitive sets of a and
// b, 0 if either is empty.
func overlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := lowerSet(a)
	setB := lowerSet(b)

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	return float64(intersection) / float64(max(len(setA), len(setB)))
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

// cosine returns the cosine similarity of a and b, 0 when their lengths
// differ or either has zero norm.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// commonNames returns the names in a that also appear in b, in a's order.
func commonNames(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}
	var common []string
	for _, s := range a {
		if _, ok := inB[s]; ok {
			common = append(common, s)
		}
	}
	return common
}
