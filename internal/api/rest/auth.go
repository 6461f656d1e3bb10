package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/beisbol/dugout/internal/backend"
	"github.com/beisbol/dugout/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials against the backend, persists the returned token
// and role, and hands the browser a session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	fields := map[string][]string{}
	if req.Username == "" {
		fields["username"] = append(fields["username"], "username is required")
	}
	if req.Password == "" {
		fields["password"] = append(fields["password"], "password is required")
	}
	if len(fields) > 0 {
		respondFieldErrors(w, fields)
		return
	}

	result, err := h.clients.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, backend.ErrSessionExpired) {
			// 401 from the credential check means the credentials are wrong.
			respondError(w, http.StatusUnauthorized, "Invalid username or password", nil)
			return
		}
		respondBackendError(w, "Login failed", err)
		return
	}

	id, err := h.sessions.Login(r.Context(), result.Token, result.UserType)
	if err != nil {
		log.Error().Err(err).Msg("persisting session failed")
		respondError(w, http.StatusInternalServerError, "Failed to create session", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   h.sessionMaxAge,
	})

	respondJSON(w, http.StatusOK, map[string]string{"userType": result.UserType})
}

// Logout clears the persisted session and expires the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := h.sessions.Logout(r.Context(), cookie.Value); err != nil {
			log.Warn().Err(err).Msg("clearing session failed")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// CurrentSession reports the authenticated role for route gating.
func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	s, _ := session.FromContext(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"userType":      s.UserType,
	})
}
