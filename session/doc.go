// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session is the authentication gateway: accounts and cookie
sessions.

Sessions are opaque random tokens stored server-side with an expiry;
there is no claims format to parse or verify. SignIn returns
ErrInvalidCredentials for every credential failure so responses never
reveal whether an email is registered, and SignUp maps the users.email
unique constraint to ErrEmailTaken.

Sessions are resolved once per request by middleware.WithUser; nothing
in the application holds authentication state between requests.
*/
package session
