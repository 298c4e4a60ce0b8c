// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Logging

WithLogging wraps a handler with slog request/completion lines and a
per-route Prometheus duration histogram labeled by status code:

	mux.HandleFunc("GET /campaigns", middleware.WithLogging("/campaigns", h.Search))

# JSON Helpers

JSONResponse and ErrorResponse write the standard envelope; error
bodies are {"error": <status text>, "message": <detail>}.
ParseJSONBody decodes request bodies.

# Client IP

ClientIP takes the first X-Forwarded-For entry, then X-Real-IP, then
the "0.0.0.0" sentinel. RemoteAddr is never used: the service sits
behind a proxy, so RemoteAddr only names the proxy.

# Rate Limiting

NewIPRateLimiter keeps a token bucket per client IP (golang.org/x/time);
WithRateLimit answers 429 when a bucket is empty. Applied to the vote
endpoint only.

# CORS

CORS reflects the request origin and handles preflight, as the browser
frontend requires.
*/
package middleware
