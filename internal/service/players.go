package service

import (
	"context"
	"fmt"

	"github.com/beisbol/dugout/internal/backend"
)

// PlayerService composes player, pitcher and roster data for the public
// player and team views.
type PlayerService struct {
	players  *backend.PlayersClient
	pitchers *backend.PitchersClient
	rosters  *backend.PlayerInSeriesClient
	stars    *backend.StarPlayersClient
}

func NewPlayerService(players *backend.PlayersClient, pitchers *backend.PitchersClient, rosters *backend.PlayerInSeriesClient, stars *backend.StarPlayersClient) *PlayerService {
	return &PlayerService{players: players, pitchers: pitchers, rosters: rosters, stars: stars}
}

// PlayerProfile is a player together with their pitching stats, when the
// player is a pitcher.
type PlayerProfile struct {
	backend.Player
	Pitcher *backend.Pitcher `json:"pitcher,omitempty"`
}

// GetProfile returns one player's profile.
func (s *PlayerService) GetProfile(ctx context.Context, playerID int) (*PlayerProfile, error) {
	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching player: %w", err)
	}

	profile := &PlayerProfile{Player: player}

	pitchers, err := s.pitchers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching pitchers: %w", err)
	}
	for i := range pitchers {
		if pitchers[i].PlayerID == playerID {
			profile.Pitcher = &pitchers[i]
			break
		}
	}
	return profile, nil
}

// TeamRoster returns the players enrolled on a team for a season/serie pair.
func (s *PlayerService) TeamRoster(ctx context.Context, teamID, seasonID, serieID int) ([]backend.Player, error) {
	enrollments, err := s.rosters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}

	players, err := s.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	byID := make(map[int]backend.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	var roster []backend.Player
	for _, e := range enrollments {
		if e.TeamID != teamID || e.SeasonID != seasonID || e.SerieID != serieID {
			continue
		}
		if p, ok := byID[e.PlayerID]; ok {
			roster = append(roster, p)
		}
	}
	return roster, nil
}

// StarPlayer is a standout designation enriched with the player's name.
type StarPlayer struct {
	backend.StarPlayerInPosition
	PlayerName string `json:"playerName"`
}

// StarsBySerie returns the standout players for a season/serie pair.
func (s *PlayerService) StarsBySerie(ctx context.Context, seasonID, serieID int) ([]StarPlayer, error) {
	stars, err := s.stars.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching star players: %w", err)
	}

	players, err := s.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	names := make(map[int]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	var out []StarPlayer
	for _, star := range stars {
		if star.IDSeason != seasonID || star.IDSerie != serieID {
			continue
		}
		out = append(out, StarPlayer{StarPlayerInPosition: star, PlayerName: names[star.IDPlayer]})
	}
	return out, nil
}
