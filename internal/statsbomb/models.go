package statsbomb

// Ref is the {id, name} pair StatsBomb uses for every nominal field.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Competition is one row of competitions.json.
type Competition struct {
	CompetitionID   int    `json:"competition_id"`
	SeasonID        int    `json:"season_id"`
	CountryName     string `json:"country_name"`
	CompetitionName string `json:"competition_name"`
	SeasonName      string `json:"season_name"`
}

// Match is one row of matches/{competition}/{season}.json.
type Match struct {
	MatchID   int       `json:"match_id"`
	MatchDate string    `json:"match_date"`
	KickOff   string    `json:"kick_off"`
	HomeTeam  MatchTeam `json:"home_team"`
	AwayTeam  MatchTeam `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}

// MatchTeam carries the home_/away_ prefixed team name; StatsBomb uses
// different keys for the two sides so both are declared and whichever is
// present wins.
type MatchTeam struct {
	HomeTeamName string `json:"home_team_name,omitempty"`
	AwayTeamName string `json:"away_team_name,omitempty"`
}

// Name returns whichever side's name is populated.
func (t MatchTeam) Name() string {
	if t.HomeTeamName != "" {
		return t.HomeTeamName
	}
	return t.AwayTeamName
}

// Event is one atomic occurrence in a match. The type-specific payloads are
// optional pointers; accessor methods below resolve absent fields to
// defaults so callers never chase nested nils.
type Event struct {
	ID       string    `json:"id"`
	Minute   int       `json:"minute"`
	Type     Ref       `json:"type"`
	Team     Ref       `json:"team"`
	Player   *Ref      `json:"player,omitempty"`
	Location []float64 `json:"location,omitempty"`

	Shot         *Shot         `json:"shot,omitempty"`
	Substitution *Substitution `json:"substitution,omitempty"`
	Duel         *Duel         `json:"duel,omitempty"`
}

// Shot is the Shot event payload.
type Shot struct {
	StatsbombXG float64 `json:"statsbomb_xg"`
	Outcome     *Ref    `json:"outcome,omitempty"`
}

// Substitution is the Substitution event payload.
type Substitution struct {
	Replacement *Ref `json:"replacement,omitempty"`
}

// Duel is the Duel event payload.
type Duel struct {
	Type *Ref `json:"type,omitempty"`
}

// PlayerName returns the acting player's name, or "" when no player is
// attributed to the event.
func (e *Event) PlayerName() string {
	if e.Player == nil {
		return ""
	}
	return e.Player.Name
}

// XG returns the shot's expected-goals value, 0 for non-shots or shots
// missing the field.
func (e *Event) XG() float64 {
	if e.Shot == nil {
		return 0
	}
	return e.Shot.StatsbombXG
}

// ShotOutcome returns the shot outcome name ("Goal", "Saved", ...), or "".
func (e *Event) ShotOutcome() string {
	if e.Shot == nil || e.Shot.Outcome == nil {
		return ""
	}
	return e.Shot.Outcome.Name
}

// Replacement returns the incoming player of a substitution, or "".
func (e *Event) Replacement() string {
	if e.Substitution == nil || e.Substitution.Replacement == nil {
		return ""
	}
	return e.Substitution.Replacement.Name
}

// DuelType returns the duel subtype name ("Tackle", "Aerial Lost", ...), or "".
func (e *Event) DuelType() string {
	if e.Duel == nil || e.Duel.Type == nil {
		return ""
	}
	return e.Duel.Type.Name
}

// HasLocation reports whether the event carries a usable pitch coordinate.
func (e *Event) HasLocation() bool {
	return len(e.Location) >= 2
}

// TeamLineup is one side of lineups/{match}.json.
type TeamLineup struct {
	TeamID   int           `json:"team_id"`
	TeamName string        `json:"team_name"`
	Lineup   []LineupEntry `json:"lineup"`
}

// LineupEntry is one player of a team lineup. JerseyNumber is a pointer so
// players the feed lists without a number can be told apart from number 0.
type LineupEntry struct {
	PlayerID     int    `json:"player_id"`
	PlayerName   string `json:"player_name"`
	JerseyNumber *int   `json:"jersey_number,omitempty"`
	Country      *Ref   `json:"country,omitempty"`
}

// CountryName returns the player's nationality, or "".
func (p LineupEntry) CountryName() string {
	if p.Country == nil {
		return ""
	}
	return p.Country.Name
}
