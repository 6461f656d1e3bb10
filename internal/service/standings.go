package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/beisbol/dugout/internal/backend"
)

// StandingsService computes the win/loss table for a season/serie pair from
// the raw game list.
type StandingsService struct {
	games *backend.GamesClient
	teams *backend.TeamsClient
}

func NewStandingsService(games *backend.GamesClient, teams *backend.TeamsClient) *StandingsService {
	return &StandingsService{games: games, teams: teams}
}

// TeamStanding is one row of the standings table.
type TeamStanding struct {
	TeamID   int     `json:"teamId"`
	Name     string  `json:"name"`
	Initials string  `json:"initials"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinPct   float64 `json:"winPct"`
}

// Standings tallies wins and losses per team across the serie's games and
// sorts by winning percentage.
func (s *StandingsService) Standings(ctx context.Context, seasonID, serieID int) ([]TeamStanding, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	rows := make(map[int]*TeamStanding, len(teams))
	for _, t := range teams {
		rows[t.ID] = &TeamStanding{TeamID: t.ID, Name: t.Name, Initials: t.Initials}
	}

	for _, g := range games {
		if g.SeasonID != seasonID || g.SeriesID != serieID {
			continue
		}
		winner, loser := g.Team2ID, g.Team1ID
		if g.WinTeam {
			winner, loser = g.Team1ID, g.Team2ID
		}
		if row, ok := rows[winner]; ok {
			row.Wins++
		}
		if row, ok := rows[loser]; ok {
			row.Losses++
		}
	}

	table := make([]TeamStanding, 0, len(rows))
	for _, row := range rows {
		if played := row.Wins + row.Losses; played > 0 {
			row.WinPct = float64(row.Wins) / float64(played)
			table = append(table, *row)
		}
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].WinPct != table[j].WinPct {
			return table[i].WinPct > table[j].WinPct
		}
		if table[i].Wins != table[j].Wins {
			return table[i].Wins > table[j].Wins
		}
		return table[i].Name < table[j].Name
	})
	return table, nil
}
