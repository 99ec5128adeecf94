package models

import "time"

type PlayerType string

const (
	Batter  PlayerType = "batter"
	Pitcher PlayerType = "pitcher"
)

// ValueRating classifies the gap between fantasy output and peripherals.
type ValueRating string

const (
	RatingAligned                ValueRating = "Aligned"
	RatingSlightOverperformance  ValueRating = "Slight Overperformance"
	RatingOverperformance        ValueRating = "Overperformance"
	RatingSlightUnderperformance ValueRating = "Slight Underperformance"
	RatingUnderperformance       ValueRating = "Underperformance"
	RatingUnknown                ValueRating = "Unknown"
)

// PlayerIdentity is one row of the player ID map. FantraxID is kept in
// whatever surface encoding the map uses (possibly asterisk-wrapped).
type PlayerIdentity struct {
	PlayerName  string
	Position    string
	MLBTeam     string
	FantraxID   string
	MLBID       string
	FangraphsID string
	Active      bool
}

// ClaimedPlayer is one rostered player flattened out of a team roster.
type ClaimedPlayer struct {
	FantasyTeam string
	PlayerName  string
	FantraxID   string
	Position    string
	Status      string
}

// AvailablePlayer is the display projection of an unclaimed identity.
type AvailablePlayer struct {
	PlayerName  string
	FantraxID   string
	Position    string
	MLBTeam     string
	MLBID       string
	FangraphsID string
}

type PlayerValue struct {
	PlayerName      string
	Position        string
	FantasyScore    float64
	PeripheralScore float64
	ValueRating     ValueRating
	Confidence      float64
	Flags           []string
}

type TeamStanding struct {
	Rank          int
	TeamID        string
	TeamName      string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	WinPercentage float64
}

type LeagueMetadata struct {
	LeagueID    string
	Name        string
	Season      int
	TeamCount   int
	LastUpdated time.Time
}

type Comparison struct {
	Player1             PlayerValue
	Player2             PlayerValue
	FantasyAdvantage    string
	PeripheralAdvantage string
	Recommended         string
}
