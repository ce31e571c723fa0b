// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services adapts long-running components to suture.Service.

HTTPServerService:
  - Wraps *http.Server, translating ListenAndServe into Serve
  - Graceful Shutdown with a bounded drain timeout on cancellation
  - Listener failures are returned so the supervisor restarts the server

WarmService:
  - Calls ListWarmer.Warm on a ticker, optionally once at startup
  - Each refresh is bounded by its own timeout
  - Failures are logged and retried on the next tick

Usage:

	tree.AddBackgroundService(services.NewWarmService(builder, services.WarmServiceConfig{
	    Interval:      cfg.Recommend.WarmInterval,
	    WarmOnStartup: true,
	}, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
*/
package services
