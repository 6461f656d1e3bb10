package service

import (
	"context"
	"fmt"

	"github.com/beisbol/dugout/internal/backend"
)

// GameService composes game rows with team names for the public views.
// Winner names are derived in the view path by comparing run counts; nothing
// derived is ever persisted.
type GameService struct {
	games *backend.GamesClient
	teams *backend.TeamsClient
}

func NewGameService(games *backend.GamesClient, teams *backend.TeamsClient) *GameService {
	return &GameService{games: games, teams: teams}
}

// GameSummary is a game row enriched with display names.
type GameSummary struct {
	backend.Game
	Team1Name  string `json:"team1Name"`
	Team2Name  string `json:"team2Name"`
	WinnerName string `json:"winnerName"`
}

// GetGame returns a single game with its team and winner names.
func (s *GameService) GetGame(ctx context.Context, gameID int) (*GameSummary, error) {
	game, err := s.games.Get(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game: %w", err)
	}

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	summary := summarize(game, teamNames(teams))
	return &summary, nil
}

// ListBySerie returns the games of a season/serie pair with display names.
func (s *GameService) ListBySerie(ctx context.Context, seasonID, serieID int) ([]GameSummary, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	names := teamNames(teams)
	summaries := make([]GameSummary, 0, len(games))
	for _, g := range games {
		if g.SeasonID != seasonID || g.SeriesID != serieID {
			continue
		}
		summaries = append(summaries, summarize(g, names))
	}
	return summaries, nil
}

func summarize(g backend.Game, names map[int]string) GameSummary {
	summary := GameSummary{
		Game:      g,
		Team1Name: names[g.Team1ID],
		Team2Name: names[g.Team2ID],
	}
	if g.WinTeam {
		summary.WinnerName = summary.Team1Name
	} else {
		summary.WinnerName = summary.Team2Name
	}
	return summary
}

func teamNames(teams []backend.Team) map[int]string {
	names := make(map[int]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}
