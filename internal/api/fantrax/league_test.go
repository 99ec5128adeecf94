package fantrax

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynastybot/internal/config"
	"dynastybot/internal/models"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(config.Fantrax{LeagueID: "test123"})
	client.baseURL = srv.URL
	return NewAPI(client)
}

func writeEnvelope(w http.ResponseWriter, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.FantraxEnvelope{
		Responses: []models.FantraxResponseItem{{Data: raw}},
	})
}

func writePageError(w http.ResponseWriter, msg string) {
	json.NewEncoder(w).Encode(models.FantraxEnvelope{
		PageError: &models.FantraxPageError{Code: "ERR", Msg: msg},
	})
}

func leagueInfo() models.FantraxLeagueInfo {
	return models.FantraxLeagueInfo{
		LeagueName: "Test Dynasty League",
		Season:     2026,
		TeamInfo: map[string]models.FantraxTeam{
			"t1": {ID: "t1", Name: "Alpha"},
			"t2": {ID: "t2", Name: "Bravo"},
		},
	}
}

func decodeMsg(r *http.Request) models.FantraxMsg {
	var req models.FantraxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Msgs) == 0 {
		return models.FantraxMsg{}
	}
	return req.Msgs[0]
}

func TestGetLeagueMetadata(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, leagueInfo())
	})

	meta, err := api.GetLeagueMetadata()
	require.NoError(t, err)

	assert.Equal(t, "test123", meta.LeagueID)
	assert.Equal(t, "Test Dynasty League", meta.Name)
	assert.Equal(t, 2026, meta.Season)
	assert.Equal(t, 2, meta.TeamCount)
	assert.False(t, meta.LastUpdated.IsZero())
}

func TestGetAllClaimedPlayers_ReportsFailedTeams(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		msg := decodeMsg(r)
		switch msg.Method {
		case "getFantasyLeagueInfo":
			writeEnvelope(w, leagueInfo())
		case "getTeamRosterInfo":
			if msg.Data["teamId"] == "t2" {
				writePageError(w, "roster unavailable")
				return
			}
			writeEnvelope(w, models.FantraxRosterData{
				Tables: []models.FantraxRosterTable{{Rows: []models.FantraxRosterRow{
					{Scorer: &models.FantraxScorer{ScorerID: "*a1*", Name: "Aaron Judge", PosShortNames: "OF"}},
					{Scorer: nil},
				}}},
			})
		default:
			http.Error(w, "unexpected method "+msg.Method, http.StatusBadRequest)
		}
	})

	claimed, failed, err := api.GetAllClaimedPlayers()
	require.NoError(t, err)

	assert.Equal(t, 1, failed)
	require.Len(t, claimed, 1)
	assert.Equal(t, "Aaron Judge", claimed[0].PlayerName)
	assert.Equal(t, "Alpha", claimed[0].FantasyTeam)
	assert.Equal(t, "*a1*", claimed[0].FantraxID)
}

func TestGetAllClaimedPlayers_AllRostersFailingIsAnError(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		msg := decodeMsg(r)
		if msg.Method == "getFantasyLeagueInfo" {
			writeEnvelope(w, leagueInfo())
			return
		}
		writePageError(w, "roster unavailable")
	})

	claimed, failed, err := api.GetAllClaimedPlayers()
	require.Error(t, err)
	assert.Equal(t, 2, failed)
	assert.Empty(t, claimed)
}
