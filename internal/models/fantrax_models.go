package models

import "encoding/json"

// Wire shapes for the Fantrax fxpa request API. Every call is a POST with a
// batch of msgs; responses come back positionally.

type FantraxRequest struct {
	Msgs []FantraxMsg `json:"msgs"`
}

type FantraxMsg struct {
	Method string         `json:"method"`
	Data   map[string]any `json:"data,omitempty"`
}

type FantraxEnvelope struct {
	Responses []FantraxResponseItem `json:"responses"`
	PageError *FantraxPageError     `json:"pageError,omitempty"`
}

type FantraxResponseItem struct {
	Data json.RawMessage `json:"data"`
}

type FantraxPageError struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

type FantraxLeagueInfo struct {
	LeagueName string                 `json:"leagueName"`
	Season     int                    `json:"season"`
	TeamInfo   map[string]FantraxTeam `json:"teamInfo"`
}

type FantraxTeam struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type FantraxStandingsData struct {
	Standings []FantraxStandingRow `json:"standings"`
}

type FantraxStandingRow struct {
	TeamID        string  `json:"teamId"`
	TeamName      string  `json:"teamName"`
	Win           int     `json:"win"`
	Loss          int     `json:"loss"`
	Tie           int     `json:"tie"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
	WinPct        float64 `json:"winPct"`
}

type FantraxRosterData struct {
	Tables []FantraxRosterTable `json:"tables"`
}

type FantraxRosterTable struct {
	Rows []FantraxRosterRow `json:"rows"`
}

type FantraxRosterRow struct {
	Scorer   *FantraxScorer `json:"scorer"`
	StatusID string         `json:"statusId"`
}

type FantraxScorer struct {
	ScorerID      string `json:"scorerId"`
	Name          string `json:"name"`
	PosShortNames string `json:"posShortNames"`
	TeamShortName string `json:"teamShortName"`
}
