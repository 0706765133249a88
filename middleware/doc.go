// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	middleware.ValidationErrorResponse(w, code, message)
	err := middleware.ParseJSONBody(r, &req)

Error bodies carry the status text, a human message, and (for validation
failures) a stable machine-readable code.

# Session Resolution

WithUser reads the session cookie and resolves it through the session
gateway exactly once per request, attaching the user to the request
context. RequireUser does the same and answers 401 when no user
resolved. Handlers read the result with UserFrom(r). There is no shared
authentication state outside the request context.

# Logging and CORS

WithLogging logs request start/completion with method, path, and
duration. CORS reflects the request origin and allows credentials so the
session cookie survives cross-origin frontends.
*/
package middleware
