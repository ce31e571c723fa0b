// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"reflect"
	"testing"
)

func testFeatures(id int) MovieFeatures {
	v := NewVectorizer(DefaultGenreCodes, DefaultLanguages)
	f := MovieFeatures{
		ID:         id,
		Title:      "Movie",
		Genres:     []int{28, 12},
		GenreNames: []string{"Action", "Adventure"},
		Rating:     7.5,
		Year:       2010,
		Popularity: 40,
		Runtime:    130,
		Director:   []string{"christopher nolan"},
		Cast:       []string{"leonardo dicaprio", "tom hardy"},
		Keywords:   []string{"dream", "heist", "subconscious"},
		Language:   "en",
	}
	f.FeatureVector = v.Vector(f.Genres, f.Rating, f.Year, f.Popularity, f.Runtime, f.Language)
	return f
}

func allWeights(w int) Weights {
	return Weights{Genre: w, Rating: w, Director: w, Cast: w, Cinematography: w, Keywords: w, Year: w}
}

func TestJaccard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []int
		want float64
	}{
		{"identical", []int{1, 2}, []int{2, 1}, 1},
		{"disjoint", []int{1}, []int{2}, 0},
		{"half", []int{1, 2}, []int{2, 3, 1, 4}, 0.5},
		{"duplicates ignored", []int{1, 1, 2}, []int{1, 2, 2}, 1},
		{"empty side", nil, []int{1}, 0},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := jaccard(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("jaccard(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
			if got, rev := jaccard(tt.a, tt.b), jaccard(tt.b, tt.a); got != rev {
				t.Errorf("jaccard not symmetric: %f vs %f", got, rev)
			}
		})
	}
}

func TestOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"case insensitive", []string{"Tom Hardy"}, []string{"tom hardy"}, 1},
		{"divides by larger set", []string{"a", "b"}, []string{"a", "b", "c", "d"}, 0.5},
		{"empty side", []string{"a"}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := overlap(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("overlap() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCosine(t *testing.T) {
	t.Parallel()

	if got := cosine([]float64{1, 0}, []float64{1, 0, 0}); got != 0 {
		t.Errorf("length mismatch = %f, want 0", got)
	}
	if got := cosine([]float64{0, 0}, []float64{1, 1}); got != 0 {
		t.Errorf("zero norm = %f, want 0", got)
	}
	if got := cosine([]float64{1, 2, 3}, []float64{2, 4, 6}); !almostEqual(got, 1) {
		t.Errorf("parallel = %f, want 1", got)
	}
	if got := cosine([]float64{1, 0}, []float64{0, 1}); !almostEqual(got, 0) {
		t.Errorf("orthogonal = %f, want 0", got)
	}
}

func TestScore_SelfSimilarity(t *testing.T) {
	t.Parallel()

	f := testFeatures(1)
	score, reasons := Score(f, f, allWeights(50))

	if !almostEqual(score, 1) {
		t.Errorf("Score(self) = %f, want 1", score)
	}
	want := []string{
		"Similar genres: Action, Adventure",
		"Similar rating (7.5/10)",
		"Familiar director style",
		"Similar cast members",
		"Similar themes and style",
		"From similar era (2010)",
	}
	if !reflect.DeepEqual(reasons, want) {
		t.Errorf("reasons = %v, want %v", reasons, want)
	}
}

func TestScore_ZeroWeights(t *testing.T) {
	t.Parallel()

	score, reasons := Score(testFeatures(1), testFeatures(2), Weights{})
	if score != 0 {
		t.Errorf("Score() = %f, want 0", score)
	}
	if len(reasons) != 0 {
		t.Errorf("reasons = %v, want none", reasons)
	}
}

func TestScore_WeightScalingInvariance(t *testing.T) {
	t.Parallel()

	profile := testFeatures(-1)
	candidate := testFeatures(2)
	candidate.Genres = []int{28, 35}
	candidate.Rating = 5.1
	candidate.Year = 1985
	candidate.Cast = []string{"tom hardy"}

	base := Weights{Genre: 10, Rating: 5, Director: 3, Cast: 7, Cinematography: 2, Keywords: 1, Year: 4}
	scaled := Weights{Genre: 20, Rating: 10, Director: 6, Cast: 14, Cinematography: 4, Keywords: 2, Year: 8}

	a, _ := Score(profile, candidate, base)
	b, _ := Score(profile, candidate, scaled)
	if !almostEqual(a, b) {
		t.Errorf("scaled weights changed score: %f vs %f", a, b)
	}
	if a < 0 || a > 1 {
		t.Errorf("score %f out of [0, 1]", a)
	}
}

func TestScore_DirectorChannelRequiresProfileDirectors(t *testing.T) {
	t.Parallel()

	profile := testFeatures(-1)
	profile.Director = nil
	candidate := testFeatures(2)

	// Director is the only weighted channel and is skipped, so nothing contributes.
	score, reasons := Score(profile, candidate, Weights{Director: 100})
	if score != 0 || len(reasons) != 0 {
		t.Errorf("Score() = %f, %v; want 0 and no reasons", score, reasons)
	}

	// With another channel active, the skipped director channel does not dilute it.
	score, _ = Score(profile, candidate, Weights{Director: 100, Genre: 100})
	if !almostEqual(score, 1) {
		t.Errorf("Score() = %f, want 1", score)
	}
}

func TestScore_Reasons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *MovieFeatures)
		weights Weights
		want    []string
	}{
		{
			name:    "genre reason needs shared names",
			mutate:  func(c *MovieFeatures) { c.GenreNames = nil },
			weights: Weights{Genre: 100},
			want:    []string{},
		},
		{
			name:    "distant rating gives no reason",
			mutate:  func(c *MovieFeatures) { c.Rating = 4.0 },
			weights: Weights{Rating: 100},
			want:    []string{},
		},
		{
			name:    "rating reason uses candidate rating",
			mutate:  func(c *MovieFeatures) { c.Rating = 8.04 },
			weights: Weights{Rating: 100},
			want:    []string{"Similar rating (8.0/10)"},
		},
		{
			name:    "year reason uses candidate year",
			mutate:  func(c *MovieFeatures) { c.Year = 2005 },
			weights: Weights{Year: 100},
			want:    []string{"From similar era (2005)"},
		},
		{
			name:    "distant year gives no reason",
			mutate:  func(c *MovieFeatures) { c.Year = 1990 },
			weights: Weights{Year: 100},
			want:    []string{},
		},
		{
			name:    "cinematography never explains",
			mutate:  func(c *MovieFeatures) {},
			weights: Weights{Cinematography: 100},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profile := testFeatures(-1)
			candidate := testFeatures(2)
			tt.mutate(&candidate)

			_, reasons := Score(profile, candidate, tt.weights)
			if !reflect.DeepEqual(reasons, tt.want) {
				t.Errorf("reasons = %v, want %v", reasons, tt.want)
			}
		})
	}
}
