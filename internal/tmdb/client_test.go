// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/reelmatch/internal/config"
)

const testToken = "test-read-token"

func testConfig(baseURL string) *config.TMDBConfig {
	return &config.TMDBConfig{
		BaseURL:        baseURL,
		ReadToken:      testToken,
		Timeout:        2 * time.Second,
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
		RetryMaxDelay:  4 * time.Millisecond,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(testConfig(server.URL)), server
}

const inceptionJSON = `{
	"id": 27205,
	"title": "Inception",
	"overview": "A thief who steals corporate secrets through dream-sharing technology.",
	"release_date": "2010-07-15",
	"vote_average": 8.4,
	"popularity": 98.1,
	"runtime": 148,
	"original_language": "en",
	"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
	"credits": {
		"cast": [{"id": 6193, "name": "Leonardo DiCaprio", "character": "Cobb", "order": 0}],
		"crew": [
			{"id": 525, "name": "Christopher Nolan", "job": "Director", "department": "Directing"},
			{"id": 947, "name": "Hans Zimmer", "job": "Original Music Composer", "department": "Sound"}
		]
	}
}`

func TestClient_MovieDetails(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/movie/27205" {
			t.Errorf("path = %s, want /3/movie/27205", r.URL.Path)
		}
		if got := r.URL.Query().Get("append_to_response"); got != "credits" {
			t.Errorf("append_to_response = %q, want credits", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer "+testToken {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(inceptionJSON))
	})

	details, err := client.MovieDetails(context.Background(), 27205)
	if err != nil {
		t.Fatalf("MovieDetails() error = %v", err)
	}
	if details.Title != "Inception" || details.Runtime != 148 {
		t.Errorf("details = %+v", details)
	}
	if len(details.Genres) != 2 || details.Genres[1].Name != "Science Fiction" {
		t.Errorf("genres = %+v", details.Genres)
	}
	if dirs := details.Directors(); len(dirs) != 1 || dirs[0] != "Christopher Nolan" {
		t.Errorf("Directors() = %v", dirs)
	}
}

func TestClient_ListEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     func(*Client) error
		wantPath string
		wantPage string
	}{
		{
			name:     "popular",
			call:     func(c *Client) error { _, err := c.Popular(context.Background(), 2); return err },
			wantPath: "/3/movie/popular",
			wantPage: "2",
		},
		{
			name:     "top rated",
			call:     func(c *Client) error { _, err := c.TopRated(context.Background(), 1); return err },
			wantPath: "/3/movie/top_rated",
			wantPage: "1",
		},
		{
			name:     "similar",
			call:     func(c *Client) error { _, err := c.Similar(context.Background(), 550, 1); return err },
			wantPath: "/3/movie/550/similar",
			wantPage: "1",
		},
		{
			name:     "page below one is clamped",
			call:     func(c *Client) error { _, err := c.Popular(context.Background(), 0); return err },
			wantPath: "/3/movie/popular",
			wantPage: "1",
		},
		{
			name: "discover",
			call: func(c *Client) error {
				_, err := c.Discover(context.Background(), DiscoverParams{Genres: []int{28}, Page: 1})
				return err
			},
			wantPath: "/3/discover/movie",
			wantPage: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("path = %s, want %s", r.URL.Path, tt.wantPath)
				}
				if got := r.URL.Query().Get("page"); got != tt.wantPage {
					t.Errorf("page = %q, want %q", got, tt.wantPage)
				}
				_, _ = w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"A","genre_ids":[28]}],"total_pages":1,"total_results":1}`))
			})
			if err := tt.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
		})
	}
}

func TestClient_ListDecoding(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page":1,"results":[
			{"id":603,"title":"The Matrix","release_date":"1999-03-30","vote_average":8.2,"poster_path":"/m.jpg","genre_ids":[28,878],"popularity":70.5,"original_language":"en"},
			{"id":604,"title":"The Matrix Reloaded","poster_path":null,"genre_ids":[]}
		],"total_pages":3,"total_results":41}`))
	})

	list, err := client.Popular(context.Background(), 1)
	if err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	if list.TotalPages != 3 || len(list.Results) != 2 {
		t.Fatalf("list = %+v", list)
	}
	first := list.Results[0]
	if first.PosterPath == nil || *first.PosterPath != "/m.jpg" || len(first.GenreIDs) != 2 {
		t.Errorf("first = %+v", first)
	}
	if list.Results[1].PosterPath != nil {
		t.Errorf("null poster decoded as %q", *list.Results[1].PosterPath)
	}
}

func TestClient_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		statuses     []int // reply per attempt; last one repeats
		wantAttempts int32
		wantErr      bool
		wantStatus   int
	}{
		{"success first try", []int{200}, 1, false, 0},
		{"5xx then success", []int{502, 500, 200}, 3, false, 0},
		{"429 then success", []int{429, 200}, 2, false, 0},
		{"persistent 503 exhausts retries", []int{503}, 3, true, 503},
		{"404 not retried", []int{404}, 1, true, 404},
		{"401 not retried", []int{401}, 1, true, 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				n := int(attempts.Add(1)) - 1
				if n >= len(tt.statuses) {
					n = len(tt.statuses) - 1
				}
				status := tt.statuses[n]
				if status != http.StatusOK {
					http.Error(w, `{"status_message":"nope"}`, status)
					return
				}
				_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
			})

			_, err := client.Popular(context.Background(), 1)
			if got := attempts.Load(); got != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got, tt.wantAttempts)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error %v is not a *StatusError", err)
			}
			if statusErr.StatusCode != tt.wantStatus || statusErr.Endpoint != EndpointPopular {
				t.Errorf("StatusError = %+v", statusErr)
			}
			if errors.Is(err, ErrNotFound) != (tt.wantStatus == http.StatusNotFound) {
				t.Errorf("errors.Is(err, ErrNotFound) mismatch for %d", tt.wantStatus)
			}
		})
	}
}

func TestClient_TransportErrorRetried(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(testConfig(baseURL))
	_, err := client.TopRated(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if !strings.Contains(err.Error(), "giving up after 2 retries") {
		t.Errorf("error = %v, want retries exhausted", err)
	}
}

func TestClient_CancelDuringBackoff(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL)
	cfg.RetryBaseDelay = 10 * time.Second
	cfg.RetryMaxDelay = 10 * time.Second
	client := NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Popular(ctx, 1)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("backoff not cancelled, took %v", elapsed)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestClient_DecodeErrorNotRetried(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		_, _ = w.Write([]byte(`{"page": "not-a-number"`))
	})

	_, err := client.Popular(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("error = %v, want decode failure", err)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestClient_RateLimiter(t *testing.T) {
	t.Parallel()

	cfg := testConfig("https://api.themoviedb.org")
	if NewClient(cfg).limiter != nil {
		t.Error("limiter configured with zero requests per second")
	}

	cfg.RequestsPerSecond = 5
	cfg.Burst = 0
	limiter := NewClient(cfg).limiter
	if limiter == nil {
		t.Fatal("limiter not configured")
	}
	if limiter.Burst() != 1 {
		t.Errorf("Burst() = %d, want 1", limiter.Burst())
	}
}

func TestClient_Backoff(t *testing.T) {
	t.Parallel()

	c := &Client{retryBaseDelay: 500 * time.Millisecond, retryMaxDelay: 3 * time.Second}
	tests := []struct {
		n    int
		want time.Duration
	}{
		{0, 500 * time.Millisecond},
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 3 * time.Second},
		{30, 3 * time.Second},
	}
	for _, tt := range tests {
		if got := c.backoff(tt.n); got != tt.want {
			t.Errorf("backoff(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestDiscoverParams_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params DiscoverParams
		want   map[string]string
		absent []string
	}{
		{
			name:   "defaults",
			params: DiscoverParams{},
			want:   map[string]string{"page": "1", "sort_by": "popularity.desc"},
			absent: []string{"with_genres", "vote_average.gte", "primary_release_year"},
		},
		{
			name: "all filters",
			params: DiscoverParams{
				Genres:           []int{28, 12},
				MinRating:        7.5,
				Year:             2010,
				SortBy:           "vote_average.desc",
				Country:          "US",
				OriginalLanguage: "en",
				Page:             2,
			},
			want: map[string]string{
				"page":                   "2",
				"sort_by":                "vote_average.desc",
				"with_genres":            "28,12",
				"vote_average.gte":       "7.5",
				"primary_release_year":   "2010",
				"with_origin_country":    "US",
				"with_original_language": "en",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := tt.params.Values()
			for key, want := range tt.want {
				if got := v.Get(key); got != want {
					t.Errorf("%s = %q, want %q", key, got, want)
				}
			}
			for _, key := range tt.absent {
				if v.Has(key) {
					t.Errorf("%s present, want absent", key)
				}
			}
		})
	}
}

func TestReadBodyForError(t *testing.T) {
	t.Parallel()

	if got := string(readBodyForError(strings.NewReader("short"))); got != "short" {
		t.Errorf("readBodyForError(short) = %q", got)
	}

	long := strings.Repeat("x", maxErrorBodySize+10)
	got := string(readBodyForError(strings.NewReader(long)))
	if !strings.HasSuffix(got, "(truncated)") {
		t.Error("long body not marked as truncated")
	}
	if len(got) > maxErrorBodySize+32 {
		t.Errorf("truncated body length = %d", len(got))
	}
}
