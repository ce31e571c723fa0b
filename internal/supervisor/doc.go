// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs the server's long-lived services under suture v4.

# Tree

	reelmatch (root)
	├── background-layer
	│   └── list-warmer (when RECOMMEND_WARM_INTERVAL > 0 and caching is on)
	└── api-layer
	    └── http-server

Each layer counts failures independently, so a warmer failing against an
unreachable TMDB backs off without touching the HTTP server.

# Configuration

TreeConfig mirrors suture.Spec. Zero fields take DefaultTreeConfig values:

  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Logging

Supervisor events (service failures, restarts, backoff) go to the slog.Logger
passed to NewSupervisorTree through the sutureslog adapter. main passes
logging.NewSlogLogger so they share the zerolog output.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Services that miss the shutdown timeout are listed by UnstoppedServiceReport.
*/
package supervisor
