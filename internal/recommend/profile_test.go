// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"reflect"
	"testing"
)

func TestSynthesizeProfile_EmptyInput(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(DefaultGenreCodes, DefaultLanguages)
	_, err := SynthesizeProfile(nil, v)
	if !errors.Is(err, ErrNoSelectedFeatures) {
		t.Errorf("SynthesizeProfile(nil) error = %v, want ErrNoSelectedFeatures", err)
	}
}

func TestSynthesizeProfile_Aggregates(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(DefaultGenreCodes, DefaultLanguages)
	selected := []MovieFeatures{
		{
			Genres: []int{18, 80, 53}, Rating: 8, Year: 2000, Popularity: 10, Runtime: 100,
			Director: []string{"ridley scott"}, Cast: []string{"a", "b"},
			Keywords: []string{"heist", "city"}, Language: "fr",
		},
		{
			Genres: []int{80, 28, 12, 14, 16}, Rating: 6, Year: 2003, Popularity: 30, Runtime: 121,
			Director: []string{"michael mann"}, Cast: []string{"b", "c"},
			Keywords: []string{"city", "night"}, Language: "en",
		},
		{
			Genres: []int{80, 28}, Rating: 7, Year: 2002, Popularity: 20, Runtime: 110,
			Director: []string{"michael mann"}, Cast: []string{"c"},
			Keywords: []string{"city"}, Language: "en",
		},
	}

	p, err := SynthesizeProfile(selected, v)
	if err != nil {
		t.Fatalf("SynthesizeProfile() error = %v", err)
	}

	t.Run("identity", func(t *testing.T) {
		if p.ID != ProfileID || p.Title != ProfileTitle {
			t.Errorf("identity = %d/%q", p.ID, p.Title)
		}
		if len(p.GenreNames) != 0 {
			t.Errorf("GenreNames = %v, want empty", p.GenreNames)
		}
	})

	t.Run("top genres by count then first seen", func(t *testing.T) {
		// 80 x3, 28 x2, then 18, 53, 12 in first-seen order; 14 and 16 cut.
		want := []int{80, 28, 18, 53, 12}
		if !reflect.DeepEqual(p.Genres, want) {
			t.Errorf("Genres = %v, want %v", p.Genres, want)
		}
	})

	t.Run("means", func(t *testing.T) {
		if !almostEqual(p.Rating, 7) {
			t.Errorf("Rating = %f, want 7", p.Rating)
		}
		if !almostEqual(p.Popularity, 20) {
			t.Errorf("Popularity = %f, want 20", p.Popularity)
		}
		// 2001.67 rounds to 2002; 110.33 rounds to 110.
		if p.Year != 2002 {
			t.Errorf("Year = %d, want 2002", p.Year)
		}
		if p.Runtime != 110 {
			t.Errorf("Runtime = %d, want 110", p.Runtime)
		}
	})

	t.Run("people and keywords", func(t *testing.T) {
		if want := []string{"michael mann", "ridley scott"}; !reflect.DeepEqual(p.Director, want) {
			t.Errorf("Director = %v, want %v", p.Director, want)
		}
		if want := []string{"b", "c", "a"}; !reflect.DeepEqual(p.Cast, want) {
			t.Errorf("Cast = %v, want %v", p.Cast, want)
		}
		if want := []string{"city", "heist", "night"}; !reflect.DeepEqual(p.Keywords, want) {
			t.Errorf("Keywords = %v, want %v", p.Keywords, want)
		}
	})

	t.Run("most common language", func(t *testing.T) {
		if p.Language != "en" {
			t.Errorf("Language = %q, want en", p.Language)
		}
	})

	t.Run("vector recomputed", func(t *testing.T) {
		want := v.Vector(p.Genres, p.Rating, p.Year, p.Popularity, p.Runtime, p.Language)
		if !reflect.DeepEqual(p.FeatureVector, want) {
			t.Errorf("FeatureVector does not match aggregated attributes")
		}
	})
}

func TestSynthesizeProfile_LanguageDefault(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(DefaultGenreCodes, DefaultLanguages)
	p, err := SynthesizeProfile([]MovieFeatures{{Year: 1999, Runtime: 90}}, v)
	if err != nil {
		t.Fatalf("SynthesizeProfile() error = %v", err)
	}
	if p.Language != "en" {
		t.Errorf("Language = %q, want en", p.Language)
	}
	if p.Genres == nil || len(p.Genres) != 0 {
		t.Errorf("Genres = %#v, want empty non-nil", p.Genres)
	}
}
