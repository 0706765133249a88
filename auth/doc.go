// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential and token utilities.

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, candidate)

The hash is the only credential material ever persisted.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded, stored server-side with an expiry,
and delivered to browsers as an HttpOnly cookie. They carry no claims;
validity is decided entirely by the session table.

# Registration Policy

ValidateRegistration enforces the account policy: email shape, an
8-character password minimum, and a non-empty full name. Failures map to
sentinel errors so handlers can pick the right user-facing message.

# ID Generation

Random hex IDs for poll and option rows:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
