package fantrax

import (
	"fmt"
	"sort"
	"time"

	"dynastybot/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) GetLeagueMetadata() (*models.LeagueMetadata, error) {
	var info models.FantraxLeagueInfo
	if err := a.client.Call("getFantasyLeagueInfo", nil, &info); err != nil {
		return nil, fmt.Errorf("fetching league info: %w", err)
	}

	return &models.LeagueMetadata{
		LeagueID:    a.client.Config.LeagueID,
		Name:        info.LeagueName,
		Season:      info.Season,
		TeamCount:   len(info.TeamInfo),
		LastUpdated: time.Now(),
	}, nil
}

func (a *API) GetTeams() ([]models.FantraxTeam, error) {
	var info models.FantraxLeagueInfo
	if err := a.client.Call("getFantasyLeagueInfo", nil, &info); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	teams := make([]models.FantraxTeam, 0, len(info.TeamInfo))
	for id, team := range info.TeamInfo {
		if team.ID == "" {
			team.ID = id
		}
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (a *API) GetStandings() ([]models.TeamStanding, error) {
	var data models.FantraxStandingsData
	if err := a.client.Call("getStandings", nil, &data); err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}

	standings := make([]models.TeamStanding, len(data.Standings))
	for i, row := range data.Standings {
		standings[i] = models.TeamStanding{
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			Wins:          row.Win,
			Losses:        row.Loss,
			Ties:          row.Tie,
			PointsFor:     row.PointsFor,
			PointsAgainst: row.PointsAgainst,
			WinPercentage: row.WinPct,
		}
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].WinPercentage != standings[j].WinPercentage {
			return standings[i].WinPercentage > standings[j].WinPercentage
		}
		return standings[i].PointsFor > standings[j].PointsFor
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings, nil
}

// GetTeamRoster fetches one team's roster and flattens it into claimed
// players. Empty roster slots come back without a scorer and are skipped.
func (a *API) GetTeamRoster(team models.FantraxTeam) ([]models.ClaimedPlayer, error) {
	var data models.FantraxRosterData
	err := a.client.Call("getTeamRosterInfo", map[string]any{"teamId": team.ID}, &data)
	if err != nil {
		return nil, fmt.Errorf("fetching roster for %s: %w", team.Name, err)
	}

	var claimed []models.ClaimedPlayer
	for _, table := range data.Tables {
		for _, row := range table.Rows {
			if row.Scorer == nil {
				continue
			}
			claimed = append(claimed, models.ClaimedPlayer{
				FantasyTeam: team.Name,
				PlayerName:  row.Scorer.Name,
				FantraxID:   row.Scorer.ScorerID,
				Position:    row.Scorer.PosShortNames,
				Status:      row.StatusID,
			})
		}
	}
	return claimed, nil
}

// GetAllClaimedPlayers flattens every team's roster into one collection.
// A team whose roster fetch fails is skipped rather than failing the whole
// league; failed reports how many teams were skipped so callers can treat
// the short collection as partial instead of complete.
func (a *API) GetAllClaimedPlayers() (claimed []models.ClaimedPlayer, failed int, err error) {
	teams, err := a.GetTeams()
	if err != nil {
		return nil, 0, err
	}

	var all []models.ClaimedPlayer
	var lastErr error
	for _, team := range teams {
		roster, err := a.GetTeamRoster(team)
		if err != nil {
			failed++
			lastErr = err
			continue
		}
		all = append(all, roster...)
	}
	if len(all) == 0 && lastErr != nil {
		return nil, failed, lastErr
	}
	return all, failed, nil
}
