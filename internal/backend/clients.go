package backend

// Clients bundles one typed resource client per backend collection, all
// sharing a single gateway.
type Clients struct {
	Seasons           *SeasonsClient
	Series            *SeriesClient
	Teams             *TeamsClient
	Players           *PlayersClient
	Pitchers          *PitchersClient
	Games             *GamesClient
	Substitutions     *SubstitutionsClient
	DirectionMembers  *DirectionMembersClient
	TeamDirections    *TeamDirectionsClient
	PlayerInSeries    *PlayerInSeriesClient
	PlayerInPositions *PlayerInPositionsClient
	StarPlayers       *StarPlayersClient
	Users             *UsersClient
	Reports           *ReportsClient
}

func NewClients(gw *Gateway) *Clients {
	return &Clients{
		Seasons:           NewSeasonsClient(gw),
		Series:            NewSeriesClient(gw),
		Teams:             NewTeamsClient(gw),
		Players:           NewPlayersClient(gw),
		Pitchers:          NewPitchersClient(gw),
		Games:             NewGamesClient(gw),
		Substitutions:     NewSubstitutionsClient(gw),
		DirectionMembers:  NewDirectionMembersClient(gw),
		TeamDirections:    NewTeamDirectionsClient(gw),
		PlayerInSeries:    NewPlayerInSeriesClient(gw),
		PlayerInPositions: NewPlayerInPositionsClient(gw),
		StarPlayers:       NewStarPlayersClient(gw),
		Users:             NewUsersClient(gw),
		Reports:           NewReportsClient(gw),
	}
}
