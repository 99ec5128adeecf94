// Package fantasy is the single API surface the service layer talks to,
// wrapping the league-management and projection adapters.
package fantasy

import (
	"dynastybot/internal/api/fangraphs"
	"dynastybot/internal/api/fantrax"
	"dynastybot/internal/models"
	"dynastybot/internal/stats"
)

type API struct {
	fantraxAPI *fantrax.API
	fangraphs  *fangraphs.Client
}

func NewAPI(fantraxAPI *fantrax.API, fangraphsClient *fangraphs.Client) *API {
	return &API{fantraxAPI: fantraxAPI, fangraphs: fangraphsClient}
}

func (a *API) GetLeagueMetadata() (*models.LeagueMetadata, error) {
	return a.fantraxAPI.GetLeagueMetadata()
}

func (a *API) GetStandings() ([]models.TeamStanding, error) {
	return a.fantraxAPI.GetStandings()
}

func (a *API) GetAllClaimedPlayers() ([]models.ClaimedPlayer, int, error) {
	return a.fantraxAPI.GetAllClaimedPlayers()
}

func (a *API) GetBatterProjections(system string) ([]stats.Record, error) {
	return a.fangraphs.GetBatterProjections(system)
}

func (a *API) GetPitcherProjections(system string) ([]stats.Record, error) {
	return a.fangraphs.GetPitcherProjections(system)
}
