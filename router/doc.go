// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires routes to handlers using Go 1.22+ method patterns.

Poll reads are public and resolve the viewer opportunistically with
middleware.WithUser; everything that writes, plus the dashboard, goes
through middleware.RequireUser.
*/
package router
