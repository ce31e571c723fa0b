// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package tmdb

import "testing"

func TestImageURL(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		path *string
		want string
	}{
		{"nil path", nil, ""},
		{"empty path", str(""), ""},
		{"leading slash", str("/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg"), "https://image.tmdb.org/t/p/w500/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg"},
		{"bare file", str("poster.jpg"), "https://image.tmdb.org/t/p/w500/poster.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ImageURL(tt.path, PosterSize)
			if tt.want == "" {
				if got != nil {
					t.Errorf("ImageURL() = %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("ImageURL() = %v, want %q", got, tt.want)
			}
		})
	}
}
