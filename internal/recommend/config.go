// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// BatchSize is the number of candidates scored concurrently per batch.
	// Batches run one after another.
	// Default: 10.
	BatchSize int `json:"batch_size"`

	// DefaultMinScore is applied when a request leaves MinScore unset.
	// Default: 0.1.
	DefaultMinScore float64 `json:"default_min_score"`

	// StopWords are excluded from extracted keywords.
	StopWords []string `json:"stop_words"`

	// GenreCodes are the reference TMDB genre codes encoded in the feature
	// vector, in vector order.
	GenreCodes []int `json:"genre_codes"`

	// Languages are the reference original languages encoded in the feature
	// vector, in vector order.
	Languages []string `json:"languages"`
}

// DefaultStopWords is the fixed English stop-word list used by keyword extraction.
var DefaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of",
	"with", "by", "is", "are", "was", "were", "be", "been", "being", "have",
	"has", "had", "do", "does", "did", "will", "would", "should", "could",
	"can", "may", "might", "must", "shall", "this", "that", "these", "those",
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
}

// DefaultGenreCodes are the TMDB movie genre codes, in feature vector order.
var DefaultGenreCodes = []int{
	28,    // Action
	12,    // Adventure
	16,    // Animation
	35,    // Comedy
	80,    // Crime
	99,    // Documentary
	18,    // Drama
	10751, // Family
	14,    // Fantasy
	36,    // History
	27,    // Horror
	10402, // Music
	9648,  // Mystery
	10749, // Romance
	878,   // Science Fiction
	53,    // Thriller
	10752, // War
	37,    // Western
}

// DefaultLanguages are the original languages with a dedicated vector flag.
var DefaultLanguages = []string{"en", "hi", "es", "fr", "de", "it", "ja", "ko", "zh"}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:       10,
		DefaultMinScore: 0.1,
		StopWords:       append([]string(nil), DefaultStopWords...),
		GenreCodes:      append([]int(nil), DefaultGenreCodes...),
		Languages:       append([]string(nil), DefaultLanguages...),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.DefaultMinScore < 0 || c.DefaultMinScore > 1 {
		return fmt.Errorf("default_min_score must be in [0, 1], got %f", c.DefaultMinScore)
	}
	if len(c.GenreCodes) == 0 {
		return fmt.Errorf("genre_codes must not be empty")
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("languages must not be empty")
	}
	return nil
}
