package manage

import (
	"github.com/beisbol/dugout/internal/backend"
)

// NewSeasons manages the season list.
func NewSeasons(c *backend.SeasonsClient) *Manager[backend.Season, int] {
	return NewManager(Config[backend.Season, int]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(s backend.Season) FieldErrors {
			fe := FieldErrors{}
			if s.ID <= 0 {
				fe.Add("id", "season year is required")
			}
			return fe
		},
		Key: func(s backend.Season) int { return s.ID },
	})
}

// NewSeries manages the series of a season.
func NewSeries(c *backend.SeriesClient) *Manager[backend.Serie, int] {
	return NewManager(Config[backend.Serie, int]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(s backend.Serie) FieldErrors {
			fe := FieldErrors{}
			if s.IDSeason <= 0 {
				fe.Add("idSeason", "season is required")
			}
			if s.Name == "" {
				fe.Add("name", "name is required")
			}
			if s.Type == "" {
				fe.Add("type", "type is required")
			}
			if s.StartDate == "" {
				fe.Add("startDate", "start date is required")
			}
			if s.EndDate == "" {
				fe.Add("endDate", "end date is required")
			}
			return fe
		},
		SearchText: func(s backend.Serie) []string { return []string{s.Name, s.Type} },
		Key:        func(s backend.Serie) int { return s.ID },
	})
}

// NewTeams manages the team list. A team without a technical director
// (dtId 0) is rejected before any network call.
func NewTeams(c *backend.TeamsClient) *Manager[backend.Team, int] {
	return NewManager(Config[backend.Team, int]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(t backend.Team) FieldErrors {
			fe := FieldErrors{}
			if t.Name == "" {
				fe.Add("name", "name is required")
			}
			if t.Initials == "" {
				fe.Add("initials", "initials are required")
			}
			if t.DTID == 0 {
				fe.Add("dtId", "technical director is required")
			}
			return fe
		},
		SearchText: func(t backend.Team) []string { return []string{t.Name, t.Initials} },
		Key:        func(t backend.Team) int { return t.ID },
	})
}

// NewPlayers manages the player list. Player ids are external identity
// numbers entered by the administrator.
func NewPlayers(c *backend.PlayersClient) *Manager[backend.Player, int] {
	return NewManager(Config[backend.Player, int]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(p backend.Player) FieldErrors {
			fe := FieldErrors{}
			if p.ID <= 0 {
				fe.Add("id", "identity number is required")
			}
			if p.Name == "" {
				fe.Add("name", "name is required")
			}
			if p.Age <= 0 {
				fe.Add("age", "age is required")
			}
			return fe
		},
		SearchText: func(p backend.Player) []string { return []string{p.Name} },
		Key:        func(p backend.Player) int { return p.ID },
	})
}

// NewPitchers manages pitcher stat rows, keyed by player id.
func NewPitchers(c *backend.PitchersClient) *Manager[backend.Pitcher, int] {
	return NewManager(Config[backend.Pitcher, int]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(p backend.Pitcher) FieldErrors {
			fe := FieldErrors{}
			if p.PlayerID <= 0 {
				fe.Add("playerId", "player is required")
			}
			return fe
		},
		Key: func(p backend.Pitcher) int { return p.PlayerID },
	})
}

// NewSubstitutions manages in-game substitution records.
func NewSubstitutions(c *backend.SubstitutionsClient) *Manager[backend.Substitution, int] {
	return NewManager(Config[backend.Substitution, int]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(s backend.Substitution) FieldErrors {
			fe := FieldErrors{}
			if s.GameID <= 0 {
				fe.Add("gameId", "game is required")
			}
			if s.TeamID <= 0 {
				fe.Add("teamId", "team is required")
			}
			if s.PlayerInID <= 0 {
				fe.Add("playerInId", "incoming player is required")
			}
			if s.PlayerOutID <= 0 {
				fe.Add("playerOutId", "outgoing player is required")
			}
			if s.PlayerInID > 0 && s.PlayerInID == s.PlayerOutID {
				fe.Add("playerInId", "incoming and outgoing players must differ")
			}
			if s.Date == "" {
				fe.Add("date", "date is required")
			}
			return fe
		},
		Key: func(s backend.Substitution) int { return s.ID },
	})
}

// NewDirectionMembers manages the direction staff roster.
func NewDirectionMembers(c *backend.DirectionMembersClient) *Manager[backend.DirectionMember, int] {
	return NewManager(Config[backend.DirectionMember, int]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(d backend.DirectionMember) FieldErrors {
			fe := FieldErrors{}
			if d.Name == "" {
				fe.Add("name", "name is required")
			}
			return fe
		},
		SearchText: func(d backend.DirectionMember) []string { return []string{d.Name} },
		Key:        func(d backend.DirectionMember) int { return d.ID },
	})
}

func validUserType(t string) bool {
	switch t {
	case backend.RoleAdmin, backend.RoleTechnicalDirector, backend.RoleJournalist:
		return true
	}
	return false
}

// NewUsers manages dashboard accounts, keyed by username.
func NewUsers(c *backend.UsersClient) *Manager[backend.User, string] {
	return NewManager(Config[backend.User, string]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Remove,
		Validate: func(u backend.User) FieldErrors {
			fe := FieldErrors{}
			if u.Username == "" {
				fe.Add("username", "username is required")
			}
			if !validUserType(u.UserType) {
				fe.Add("userType", "user type must be admin, technicalDirector or journalist")
			}
			return fe
		},
		SearchText: func(u backend.User) []string { return []string{u.Username} },
		Key:        func(u backend.User) string { return u.Username },
	})
}
