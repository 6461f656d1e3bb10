package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/beisbol/dugout/internal/session"
)

const sessionCookie = "dugout_session"

// RecoveryMiddleware turns handler panics into 500 responses.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panicked")
				respondError(w, http.StatusInternalServerError, "Internal server error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// Guard resolves the session cookie and enforces role requirements for
// protected routes.
type Guard struct {
	sessions *session.Provider
}

func NewGuard(sessions *session.Provider) *Guard {
	return &Guard{sessions: sessions}
}

// RequireSession rejects requests without a valid session and stashes the
// resolved session in the request context for the gateway.
func (g *Guard) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		s, err := g.sessions.Session(r.Context(), cookie.Value)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), s)))
	})
}

// RequireRole rejects sessions whose account role does not match. Mounted
// after RequireSession.
func (g *Guard) RequireRole(role string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := session.FromContext(r.Context())
			if !ok || s.UserType != role {
				respondError(w, http.StatusForbidden, "Insufficient permissions", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
