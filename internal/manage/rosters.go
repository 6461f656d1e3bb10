package manage

import (
	"github.com/beisbol/dugout/internal/backend"
)

// NewPlayerInSeries manages season/serie roster enrollments.
func NewPlayerInSeries(c *backend.PlayerInSeriesClient) *Manager[backend.PlayerInSeries, backend.PlayerSeriesKey] {
	return NewManager(Config[backend.PlayerInSeries, backend.PlayerSeriesKey]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(r backend.PlayerInSeries) FieldErrors {
			fe := FieldErrors{}
			if r.PlayerID <= 0 {
				fe.Add("playerId", "player is required")
			}
			if r.TeamID <= 0 {
				fe.Add("teamId", "team is required")
			}
			if r.SerieID <= 0 {
				fe.Add("serieId", "serie is required")
			}
			if r.SeasonID <= 0 {
				fe.Add("seasonId", "season is required")
			}
			return fe
		},
		Key: func(r backend.PlayerInSeries) backend.PlayerSeriesKey {
			return backend.PlayerSeriesKey{PlayerID: r.PlayerID, SeasonID: r.SeasonID, SerieID: r.SerieID}
		},
	})
}

// NewPlayerInPositions manages fielding position assignments.
func NewPlayerInPositions(c *backend.PlayerInPositionsClient) *Manager[backend.PlayerInPosition, backend.PlayerPositionKey] {
	return NewManager(Config[backend.PlayerInPosition, backend.PlayerPositionKey]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(r backend.PlayerInPosition) FieldErrors {
			fe := FieldErrors{}
			if r.Player.ID <= 0 {
				fe.Add("player", "player is required")
			}
			if r.Position == "" {
				fe.Add("position", "position is required")
			}
			return fe
		},
		SearchText: func(r backend.PlayerInPosition) []string {
			return []string{r.Player.Name, r.Position}
		},
		Key: func(r backend.PlayerInPosition) backend.PlayerPositionKey {
			return backend.PlayerPositionKey{PlayerID: r.Player.ID, Position: r.Position}
		},
	})
}

// NewStarPlayers manages standout-player designations. The join has no
// update operation upstream; rows are created and deleted whole.
func NewStarPlayers(c *backend.StarPlayersClient) *Manager[backend.StarPlayerInPosition, backend.StarPlayerKey] {
	return NewManager(Config[backend.StarPlayerInPosition, backend.StarPlayerKey]{
		List:   c.List,
		Create: c.Create,
		Remove: c.Remove,
		Validate: func(r backend.StarPlayerInPosition) FieldErrors {
			fe := FieldErrors{}
			if r.IDSerie <= 0 {
				fe.Add("idSerie", "serie is required")
			}
			if r.IDSeason <= 0 {
				fe.Add("idSeason", "season is required")
			}
			if r.IDPlayer <= 0 {
				fe.Add("idPlayer", "player is required")
			}
			if r.Position == "" {
				fe.Add("position", "position is required")
			}
			return fe
		},
		Key: func(r backend.StarPlayerInPosition) backend.StarPlayerKey {
			return backend.StarPlayerKey{IDSerie: r.IDSerie, IDSeason: r.IDSeason, IDPlayer: r.IDPlayer, Position: r.Position}
		},
	})
}

// NewTeamDirections manages the team <-> direction member join. The member
// dropdown is populated from the real direction-member list.
func NewTeamDirections(c *backend.TeamDirectionsClient) *Manager[backend.TeamDirection, backend.TeamDirectionKey] {
	return NewManager(Config[backend.TeamDirection, backend.TeamDirectionKey]{
		List:   c.List,
		Create: c.Create,
		Remove: c.Remove,
		Validate: func(r backend.TeamDirection) FieldErrors {
			fe := FieldErrors{}
			if r.TeamID <= 0 {
				fe.Add("teamId", "team is required")
			}
			if r.DirectionMemberID <= 0 {
				fe.Add("directionMemberId", "direction member is required")
			}
			return fe
		},
		Key: func(r backend.TeamDirection) backend.TeamDirectionKey {
			return backend.TeamDirectionKey{TeamID: r.TeamID, DirectionMemberID: r.DirectionMemberID}
		},
	})
}
