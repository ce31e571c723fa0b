// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements content-based movie recommendation.
//
// # Architecture
//
// A recommendation run is deterministic feature engineering followed by
// weighted similarity scoring. Nothing is trained or persisted:
//
//   - KeywordExtractor: title and overview tokens minus stop words
//   - Vectorizer: fixed-length numeric encoding of genre, rating, era,
//     popularity, runtime and language
//   - FeatureExtractor: list record plus detail lookup to MovieFeatures
//   - SynthesizeProfile: aggregate of the liked movies
//   - Score: weighted average of genre, rating, director, cast, keyword, year
//     and vector (cinematography) similarity with explanations
//   - Engine: orchestrates a run over a candidate pool
//
// # Scoring
//
// Weights are integers in [0, 100] and are normalized by their total, so
// only their proportions matter. Channels with weight 0 are skipped entirely.
//
//	score = Σ sim_c · w_c / Σ w_c
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), tmdbClient, logger)
//	if err != nil {
//	    return err
//	}
//
//	results := engine.Recommend(ctx, recommend.Request{
//	    SelectedMovies: liked,
//	    Weights:        recommend.Weights{Genre: 80, Rating: 40, Year: 20},
//	    ExcludeIDs:     likedIDs,
//	    Limit:          20,
//	}, candidates)
//
// # Thread Safety
//
// Engine is safe for concurrent use. Within a run, features are extracted
// concurrently with errgroup and each task writes only its own result slot.
// Extracted features are never shared between runs.
package recommend
