package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/beisbol/dugout/internal/backend"
	"github.com/beisbol/dugout/internal/service"
	"github.com/beisbol/dugout/internal/session"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	clients          *backend.Clients
	gameService      *service.GameService
	standingsService *service.StandingsService
	playerService    *service.PlayerService
	sessions         *session.Provider
	sessionMaxAge    int
}

// NewHandler creates a new handler.
func NewHandler(clients *backend.Clients, sessions *session.Provider, sessionMaxAge int) *Handler {
	return &Handler{
		clients:          clients,
		gameService:      service.NewGameService(clients.Games, clients.Teams),
		standingsService: service.NewStandingsService(clients.Games, clients.Teams),
		playerService:    service.NewPlayerService(clients.Players, clients.Pitchers, clients.PlayerInSeries, clients.StarPlayers),
		sessions:         sessions,
		sessionMaxAge:    sessionMaxAge,
	}
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "dugout",
	})
}

// ListSeasons returns all seasons.
func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.clients.Seasons.List(r.Context())
	if err != nil {
		respondBackendError(w, "Failed to fetch seasons", err)
		return
	}
	respondJSON(w, http.StatusOK, seasons)
}

// ListSeriesBySeason returns the series belonging to a season.
func (h *Handler) ListSeriesBySeason(w http.ResponseWriter, r *http.Request) {
	seasonID := pathInt(r, "seasonID")

	series, err := h.clients.Series.List(r.Context())
	if err != nil {
		respondBackendError(w, "Failed to fetch series", err)
		return
	}

	out := make([]backend.Serie, 0, len(series))
	for _, s := range series {
		if s.IDSeason == seasonID {
			out = append(out, s)
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// GetStandings returns the win/loss table for a season/serie pair.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	table, err := h.standingsService.Standings(r.Context(), pathInt(r, "seasonID"), pathInt(r, "serieID"))
	if err != nil {
		respondBackendError(w, "Failed to compute standings", err)
		return
	}
	respondJSON(w, http.StatusOK, table)
}

// ListGamesBySerie returns a serie's games with team and winner names.
func (h *Handler) ListGamesBySerie(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListBySerie(r.Context(), pathInt(r, "seasonID"), pathInt(r, "serieID"))
	if err != nil {
		respondBackendError(w, "Failed to fetch games", err)
		return
	}
	respondJSON(w, http.StatusOK, games)
}

// ListStarPlayers returns the standout players of a season/serie pair.
func (h *Handler) ListStarPlayers(w http.ResponseWriter, r *http.Request) {
	stars, err := h.playerService.StarsBySerie(r.Context(), pathInt(r, "seasonID"), pathInt(r, "serieID"))
	if err != nil {
		respondBackendError(w, "Failed to fetch star players", err)
		return
	}
	respondJSON(w, http.StatusOK, stars)
}

// GetGame returns a specific game with derived display values.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.GetGame(r.Context(), pathInt(r, "gameID"))
	if err != nil {
		respondBackendError(w, "Game not found", err)
		return
	}
	respondJSON(w, http.StatusOK, game)
}

// ListTeams returns all teams.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.clients.Teams.List(r.Context())
	if err != nil {
		respondBackendError(w, "Failed to fetch teams", err)
		return
	}
	respondJSON(w, http.StatusOK, teams)
}

// GetTeamRoster returns the players enrolled on a team for a season/serie.
func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	seasonID, err1 := strconv.Atoi(r.URL.Query().Get("seasonId"))
	serieID, err2 := strconv.Atoi(r.URL.Query().Get("serieId"))
	if err1 != nil || err2 != nil {
		respondError(w, http.StatusBadRequest, "seasonId and serieId query parameters are required", nil)
		return
	}

	roster, err := h.playerService.TeamRoster(r.Context(), pathInt(r, "teamID"), seasonID, serieID)
	if err != nil {
		respondBackendError(w, "Failed to fetch roster", err)
		return
	}
	respondJSON(w, http.StatusOK, roster)
}

// GetPlayer returns a player profile with pitching stats when present.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	profile, err := h.playerService.GetProfile(r.Context(), pathInt(r, "playerID"))
	if err != nil {
		respondBackendError(w, "Player not found", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// pathInt reads a numeric mux path variable. Routes constrain these to
// digits, so a parse failure yields zero and the backend rejects it.
func pathInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(mux.Vars(r)[name])
	return v
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"message": message,
		"status":  status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}

// respondFieldErrors writes the structured validation result for inline
// form rendering.
func respondFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"errors": fields,
	})
}

// respondBackendError classifies a resource-client error: expired sessions
// route the browser to the session-expired view, backend validation errors
// come back as field errors, everything else is a gateway failure.
func respondBackendError(w http.ResponseWriter, message string, err error) {
	var ve *backend.ValidationError
	switch {
	case errors.Is(err, backend.ErrSessionExpired):
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"sessionExpired": true,
			"message":        "Session expired",
		})
	case errors.As(err, &ve):
		respondFieldErrors(w, ve.Fields)
	default:
		respondError(w, http.StatusBadGateway, message, err)
	}
}
