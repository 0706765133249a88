// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pollbase/pollbase/auth"
	"github.com/pollbase/pollbase/cliparse"
	"github.com/pollbase/pollbase/middleware"
	"github.com/pollbase/pollbase/models"
	"github.com/pollbase/pollbase/session"
)

type AuthHandler struct {
	sessions session.Gateway
	cfg      cliparse.Config
}

func NewAuthHandler(sessions session.Gateway, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{sessions: sessions, cfg: cfg}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.ValidateRegistration(req.Email, req.Password, req.FullName); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidEmail):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email address.")
		case errors.Is(err, auth.ErrWeakPassword):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Password must be at least 8 characters.")
		case errors.Is(err, auth.ErrMissingFullName):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Full name is required.")
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, "Registration failed. Please try again.")
		}
		return
	}

	user, err := h.sessions.SignUp(req.Email, req.Password, req.FullName)
	if err != nil {
		// Error messages stay generalized so responses never confirm more
		// about an account than the duplicate-email phrasing already does
		if errors.Is(err, session.ErrEmailTaken) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "A user with this email already exists.")
			return
		}
		slog.Error("failed to register user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Registration failed. Please try again.")
		return
	}

	slog.Info("user registered", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.RegisterResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, sess, err := h.sessions.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		slog.Error("failed to sign in user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}

	// Cookie lifetime tracks the configured session TTL
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{User: user})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := h.sessions.SignOut(cookie.Value); err != nil {
			slog.Error("failed to sign out session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Logout failed. Please try again.")
			return
		}
	}

	// Clear the cookie whether or not one was presented
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}
