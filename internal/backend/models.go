package backend

// Flat records mirroring backend rows. The dashboard holds only transient,
// re-fetchable copies of these; every mutation is followed by a full list
// re-fetch rather than local reconciliation.

// Season is identified by its year.
type Season struct {
	ID int `json:"id"`
}

// Serie is a named competition subdivision within a season.
type Serie struct {
	ID        int    `json:"id"`
	IDSeason  int    `json:"idSeason"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Team references its technical director (DT) by id.
type Team struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Initials          string `json:"initials"`
	Color             string `json:"color"`
	RepresentedEntity string `json:"representedEntity"`
	DTID              int    `json:"dtId"`
}

// Player id is the external identity number, not auto-assigned.
type Player struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	BattingAverage    float64  `json:"battingAverage"`
	Positions         []string `json:"positions"`
}

// Pitcher extends a player with pitching statistics.
type Pitcher struct {
	PlayerID        int     `json:"playerId"`
	GamesWonNumber  int     `json:"gamesWonNumber"`
	GamesLostNumber int     `json:"gamesLostNumber"`
	RightHanded     bool    `json:"rightHanded"`
	AllowedRunsAvg  float64 `json:"allowedRunsAvg"`
	Effectiveness   float64 `json:"effectiveness"`
}

// Game references two teams, a season and a serie. WinTeam is true when
// team 1 won; it is recomputed from the run counts before every write.
type Game struct {
	ID        int    `json:"id"`
	Team1ID   int    `json:"team1Id"`
	Team2ID   int    `json:"team2Id"`
	SeasonID  int    `json:"seasonId"`
	SeriesID  int    `json:"seriesId"`
	Date      string `json:"date"`
	WinTeam   bool   `json:"winTeam"`
	Team1Runs int    `json:"team1Runs"`
	Team2Runs int    `json:"team2Runs"`
}

// PlayerInSeries enrolls a player on a team for a season/serie pair.
type PlayerInSeries struct {
	PlayerID int `json:"playerId"`
	TeamID   int `json:"teamId"`
	SerieID  int `json:"serieId"`
	SeasonID int `json:"seasonId"`
}

// PlayerSeriesKey is the composite identity of a PlayerInSeries row.
type PlayerSeriesKey struct {
	PlayerID int
	SeasonID int
	SerieID  int
}

// PlayerInPosition assigns a player to a fielding position, optionally with
// a per-position effectiveness. This shape deliberately stays separate from
// Pitcher.Effectiveness; the two statistical models overlap but are not
// unified upstream.
type PlayerInPosition struct {
	Player        Player   `json:"player"`
	Position      string   `json:"position"`
	Effectiveness *float64 `json:"effectiveness,omitempty"`
}

// PlayerPositionKey is the composite identity of a PlayerInPosition row.
type PlayerPositionKey struct {
	PlayerID int
	Position string
}

// StarPlayerInPosition marks the standout performer at a position for a
// given season/serie.
type StarPlayerInPosition struct {
	IDSerie  int    `json:"idSerie"`
	IDSeason int    `json:"idSeason"`
	IDPlayer int    `json:"idPlayer"`
	Position string `json:"position"`
}

// StarPlayerKey is the composite identity of a StarPlayerInPosition row.
type StarPlayerKey struct {
	IDSerie  int
	IDSeason int
	IDPlayer int
	Position string
}

// Substitution is an in-game player swap event.
type Substitution struct {
	ID          int    `json:"id"`
	GameID      int    `json:"gameId"`
	TeamID      int    `json:"teamId"`
	PlayerInID  int    `json:"playerInId"`
	PlayerOutID int    `json:"playerOutId"`
	Date        string `json:"date"`
}

// DirectionMember is a member of a team's direction staff.
type DirectionMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TeamDirection links a team to a direction member.
type TeamDirection struct {
	TeamID            int `json:"teamId"`
	DirectionMemberID int `json:"directionMemberId"`
}

// TeamDirectionKey is the composite identity of a TeamDirection row.
type TeamDirectionKey struct {
	TeamID            int
	DirectionMemberID int
}

// User roles.
const (
	RoleAdmin             = "admin"
	RoleTechnicalDirector = "technicalDirector"
	RoleJournalist        = "journalist"
)

// User is a dashboard account. Password is only ever sent, never listed.
type User struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	UserType string `json:"userType"`
}

// LoginResult is the backend's answer to a successful credential check.
type LoginResult struct {
	Token    string `json:"token"`
	UserType string `json:"userType"`
}
