// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pollbase API.

# Handler Types

Each handler is a struct with its gateway dependencies injected through a
constructor:

  - AuthHandler: registration, login, logout, current user
  - PollHandler: poll listing, creation, detail, deletion, voting
  - DashboardHandler: per-user statistics and recent polls

	pollHandler := handlers.NewPollHandler(pollStore)

# Auth Flow

	POST /auth/register → Register (validates input, generalized errors)
	POST /auth/login    → Login (sets the HttpOnly session cookie)
	POST /auth/logout   → Logout (deletes the session, clears the cookie)
	GET  /auth/me       → Me

The session cookie is resolved into the request context by middleware;
handlers read it with middleware.UserFrom.

# Poll Flow

	GET    /polls           → List (public; tallies + viewer flags)
	POST   /polls           → Create (auth; sanitized and validated)
	GET    /polls/{id}      → Get (public)
	DELETE /polls/{id}      → Delete (owner only, 403 otherwise)
	POST   /polls/{id}/vote → Vote (auth; one vote per poll)

Voting checks expiry up front but leaves the one-vote-per-poll invariant
to the store's unique constraint, so a duplicate submission comes back
409 even when requests race.

# Status Code Mapping

Validation failures are 400 with a stable code field, missing polls are
404, non-owners get 403, duplicate or late votes get 409, and unexpected
store failures are 500 with a generic message (details go to the log,
never to the client).
*/
package handlers
