package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/beisbol/dugout/internal/backend"
	"github.com/beisbol/dugout/internal/manage"
)

// Each admin screen is a manager over one resource client. Managers are
// constructed per request; the browser owns the durable view state, the
// server re-derives the list from the backend every time.

func registerAdminRoutes(r *mux.Router, clients *backend.Clients) {
	registerCRUD(r, "/seasons", "/{id:[0-9]+}",
		func() *manage.Manager[backend.Season, int] { return manage.NewSeasons(clients.Seasons) },
		intKey("id"))

	registerCRUD(r, "/series", "/{id:[0-9]+}",
		func() *manage.Manager[backend.Serie, int] { return manage.NewSeries(clients.Series) },
		intKey("id"))

	registerCRUD(r, "/teams", "/{id:[0-9]+}",
		func() *manage.Manager[backend.Team, int] { return manage.NewTeams(clients.Teams) },
		intKey("id"))

	registerCRUD(r, "/players", "/{id:[0-9]+}",
		func() *manage.Manager[backend.Player, int] { return manage.NewPlayers(clients.Players) },
		intKey("id"))

	registerCRUD(r, "/pitchers", "/{id:[0-9]+}",
		func() *manage.Manager[backend.Pitcher, int] { return manage.NewPitchers(clients.Pitchers) },
		intKey("id"))

	r.HandleFunc("/games/refs", gameRefsHandler(clients)).Methods("GET")
	registerCRUD(r, "/games", "/{id:[0-9]+}",
		func() *manage.Manager[backend.Game, int] { return manage.NewGames(clients.Games, clients.Teams, clients.Series, clients.Seasons).Manager },
		intKey("id"))

	registerCRUD(r, "/substitutions", "/{id:[0-9]+}",
		func() *manage.Manager[backend.Substitution, int] { return manage.NewSubstitutions(clients.Substitutions) },
		intKey("id"))

	registerCRUD(r, "/directionMembers", "/{id:[0-9]+}",
		func() *manage.Manager[backend.DirectionMember, int] {
			return manage.NewDirectionMembers(clients.DirectionMembers)
		},
		intKey("id"))

	registerCRUD(r, "/users", "/{username}",
		func() *manage.Manager[backend.User, string] { return manage.NewUsers(clients.Users) },
		stringKey("username"))

	registerCRUD(r, "/playerInSeries", "/{playerID:[0-9]+}/{seasonID:[0-9]+}/{serieID:[0-9]+}",
		func() *manage.Manager[backend.PlayerInSeries, backend.PlayerSeriesKey] {
			return manage.NewPlayerInSeries(clients.PlayerInSeries)
		},
		func(r *http.Request) (backend.PlayerSeriesKey, error) {
			return backend.PlayerSeriesKey{
				PlayerID: pathInt(r, "playerID"),
				SeasonID: pathInt(r, "seasonID"),
				SerieID:  pathInt(r, "serieID"),
			}, nil
		})

	registerCRUD(r, "/playerInPosition", "/{playerID:[0-9]+}/{position}",
		func() *manage.Manager[backend.PlayerInPosition, backend.PlayerPositionKey] {
			return manage.NewPlayerInPositions(clients.PlayerInPositions)
		},
		func(r *http.Request) (backend.PlayerPositionKey, error) {
			return backend.PlayerPositionKey{
				PlayerID: pathInt(r, "playerID"),
				Position: mux.Vars(r)["position"],
			}, nil
		})

	registerJoin(r, "/starPlayers", "/{serieID:[0-9]+}/{seasonID:[0-9]+}/{playerID:[0-9]+}/{position}",
		func() *manage.Manager[backend.StarPlayerInPosition, backend.StarPlayerKey] {
			return manage.NewStarPlayers(clients.StarPlayers)
		},
		func(r *http.Request) (backend.StarPlayerKey, error) {
			return backend.StarPlayerKey{
				IDSerie:  pathInt(r, "serieID"),
				IDSeason: pathInt(r, "seasonID"),
				IDPlayer: pathInt(r, "playerID"),
				Position: mux.Vars(r)["position"],
			}, nil
		})

	registerJoin(r, "/direct", "/{teamID:[0-9]+}/{directionMemberID:[0-9]+}",
		func() *manage.Manager[backend.TeamDirection, backend.TeamDirectionKey] {
			return manage.NewTeamDirections(clients.TeamDirections)
		},
		func(r *http.Request) (backend.TeamDirectionKey, error) {
			return backend.TeamDirectionKey{
				TeamID:            pathInt(r, "teamID"),
				DirectionMemberID: pathInt(r, "directionMemberID"),
			}, nil
		})
}

// registerCRUD mounts list/create/update/delete for one entity.
func registerCRUD[E any, K comparable](r *mux.Router, path, keyPattern string, newManager func() *manage.Manager[E, K], parseKey func(*http.Request) (K, error)) {
	r.HandleFunc(path, listHandler(newManager)).Methods("GET")
	r.HandleFunc(path, createHandler(newManager)).Methods("POST")
	r.HandleFunc(path+keyPattern, updateHandler(newManager)).Methods("PUT")
	r.HandleFunc(path+keyPattern, deleteHandler(newManager, parseKey)).Methods("DELETE")
}

// registerJoin mounts list/create/delete for join entities whose rows are
// never updated in place.
func registerJoin[E any, K comparable](r *mux.Router, path, keyPattern string, newManager func() *manage.Manager[E, K], parseKey func(*http.Request) (K, error)) {
	r.HandleFunc(path, listHandler(newManager)).Methods("GET")
	r.HandleFunc(path, createHandler(newManager)).Methods("POST")
	r.HandleFunc(path+keyPattern, deleteHandler(newManager, parseKey)).Methods("DELETE")
}

func listHandler[E any, K comparable](newManager func() *manage.Manager[E, K]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mgr := newManager()
		if err := mgr.Refresh(r.Context()); err != nil {
			respondBackendError(w, "Failed to fetch list", err)
			return
		}
		mgr.SetSearch(r.URL.Query().Get("q"))
		respondItems(w, http.StatusOK, mgr.Filtered())
	}
}

func createHandler[E any, K comparable](newManager func() *manage.Manager[E, K]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft E
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
			return
		}

		mgr := newManager()
		mgr.SetDraft(draft)

		fe, err := mgr.SubmitCreate(r.Context())
		if err != nil {
			respondBackendError(w, "Create failed", err)
			return
		}
		if len(fe) > 0 {
			respondFieldErrors(w, fe)
			return
		}
		respondItems(w, http.StatusCreated, mgr.Items())
	}
}

func updateHandler[E any, K comparable](newManager func() *manage.Manager[E, K]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entity E
		if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
			return
		}

		mgr := newManager()
		mgr.StartEdit(entity)

		fe, err := mgr.SubmitUpdate(r.Context())
		if err != nil {
			respondBackendError(w, "Update failed", err)
			return
		}
		if len(fe) > 0 {
			respondFieldErrors(w, fe)
			return
		}
		respondItems(w, http.StatusOK, mgr.Items())
	}
}

func deleteHandler[E any, K comparable](newManager func() *manage.Manager[E, K], parseKey func(*http.Request) (K, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := parseKey(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid identifier", err)
			return
		}

		mgr := newManager()
		mgr.RequestDelete(key)
		if err := mgr.ConfirmDelete(r.Context()); err != nil {
			respondBackendError(w, "Delete failed", err)
			return
		}
		respondItems(w, http.StatusOK, mgr.Items())
	}
}

// gameRefsHandler serves the dropdown reference lists for the game form.
func gameRefsHandler(clients *backend.Clients) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gm := manage.NewGames(clients.Games, clients.Teams, clients.Series, clients.Seasons)
		if err := gm.LoadRefs(r.Context()); err != nil {
			respondBackendError(w, "Failed to fetch reference lists", err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"teams":   gm.Teams,
			"series":  gm.Series,
			"seasons": gm.Seasons,
		})
	}
}

func respondItems[E any](w http.ResponseWriter, status int, items []E) {
	if items == nil {
		items = []E{}
	}
	respondJSON(w, status, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

func intKey(name string) func(*http.Request) (int, error) {
	return func(r *http.Request) (int, error) {
		return strconv.Atoi(mux.Vars(r)[name])
	}
}

func stringKey(name string) func(*http.Request) (string, error) {
	return func(r *http.Request) (string, error) {
		return mux.Vars(r)[name], nil
	}
}
