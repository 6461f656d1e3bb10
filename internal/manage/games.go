package manage

import (
	"context"
	"errors"
	"sync"

	"github.com/beisbol/dugout/internal/backend"
)

// GamesManager is the one management screen with cross-entity state: the
// team, serie and season lists that populate its dropdowns. The winning
// side of a game is derived from the run counts immediately before every
// write, never trusted from the form.
type GamesManager struct {
	*Manager[backend.Game, int]

	teams   *backend.TeamsClient
	series  *backend.SeriesClient
	seasons *backend.SeasonsClient

	// Reference lists for the form dropdowns, filled by LoadRefs.
	Teams   []backend.Team
	Series  []backend.Serie
	Seasons []backend.Season
}

func NewGames(games *backend.GamesClient, teams *backend.TeamsClient, series *backend.SeriesClient, seasons *backend.SeasonsClient) *GamesManager {
	gm := &GamesManager{
		teams:   teams,
		series:  series,
		seasons: seasons,
	}
	gm.Manager = NewManager(Config[backend.Game, int]{
		List:   games.List,
		Create: games.Create,
		Update: games.Update,
		Remove: games.Remove,
		Validate: func(g backend.Game) FieldErrors {
			fe := FieldErrors{}
			if g.Team1ID <= 0 {
				fe.Add("team1Id", "home team is required")
			}
			if g.Team2ID <= 0 {
				fe.Add("team2Id", "visiting team is required")
			}
			if g.Team1ID > 0 && g.Team1ID == g.Team2ID {
				fe.Add("team2Id", "teams must differ")
			}
			if g.SeasonID <= 0 {
				fe.Add("seasonId", "season is required")
			}
			if g.SeriesID <= 0 {
				fe.Add("seriesId", "serie is required")
			}
			if g.Date == "" {
				fe.Add("date", "date is required")
			}
			return fe
		},
		Normalize: func(g *backend.Game) {
			g.WinTeam = g.Team1Runs > g.Team2Runs
		},
		Key: func(g backend.Game) int { return g.ID },
	})
	return gm
}

// LoadRefs fetches the dropdown reference lists in parallel. The fetches
// are unordered; each writes to its own field, so a slow one never clobbers
// another's result.
func (gm *GamesManager) LoadRefs(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		gm.Teams, errs[0] = gm.teams.List(ctx)
	}()
	go func() {
		defer wg.Done()
		gm.Series, errs[1] = gm.series.List(ctx)
	}()
	go func() {
		defer wg.Done()
		gm.Seasons, errs[2] = gm.seasons.List(ctx)
	}()
	wg.Wait()

	return errors.Join(errs...)
}
