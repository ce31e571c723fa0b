// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strings"
	"unicode"
)

const (
	// maxKeywords caps the tokens kept per movie.
	maxKeywords = 20

	// minKeywordLen is the shortest token length kept, exclusive.
	minKeywordLen = 2
)

// KeywordExtractor tokenizes a title and overview into content keywords.
// It is immutable after construction and safe for concurrent use.
type KeywordExtractor struct {
	stopWords map[string]struct{}
}

// NewKeywordExtractor creates an extractor that drops the given stop words.
func NewKeywordExtractor(stopWords []string) *KeywordExtractor {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &KeywordExtractor{stopWords: set}
}

// ExtractKeywords returns up to 20 lowercase tokens from title and overview,
// in first-seen order. Punctuation splits tokens; duplicates are kept.
func (k *KeywordExtractor) ExtractKeywords(title, overview string) []string {
	text := strings.Map(normalizeKeywordRune, strings.ToLower(title+" "+overview))

	keywords := make([]string, 0, maxKeywords)
	for _, tok := range strings.Fields(text) {
		if len(tok) <= minKeywordLen {
			continue
		}
		if _, stop := k.stopWords[tok]; stop {
			continue
		}
		keywords = append(keywords, tok)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// normalizeKeywordRune keeps ASCII word characters and whitespace, mapping
// everything else to a space.
func normalizeKeywordRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return r
	case unicode.IsSpace(r):
		return r
	default:
		return ' '
	}
}
