package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynastybot/internal/models"
)

func universeOf(pairs ...[2]string) []models.PlayerIdentity {
	u := make([]models.PlayerIdentity, 0, len(pairs))
	for _, p := range pairs {
		u = append(u, models.PlayerIdentity{PlayerName: p[0], FantraxID: p[1]})
	}
	return u
}

func claimedOf(ids ...string) []models.ClaimedPlayer {
	c := make([]models.ClaimedPlayer, 0, len(ids))
	for _, id := range ids {
		c = append(c, models.ClaimedPlayer{FantasyTeam: "TeamX", FantraxID: id})
	}
	return c
}

func names(players []models.AvailablePlayer) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.PlayerName
	}
	return out
}

func TestAvailable_MixedEncodings(t *testing.T) {
	universe := universeOf(
		[2]string{"Player A", "a1"},
		[2]string{"Player B", "b2"},
		[2]string{"Player C", "c3"},
		[2]string{"Player D", "d4"},
	)
	claimed := []models.ClaimedPlayer{
		{FantasyTeam: "TeamX", FantraxID: "*a1*"},
		{FantasyTeam: "TeamY", FantraxID: "c3"},
	}

	result := Available(universe, claimed)

	assert.Equal(t, StatusComplete, result.Status)
	assert.Equal(t, []string{"Player B", "Player D"}, names(result.Players))
}

func TestAvailable_WrappedUniverseEncoding(t *testing.T) {
	// The ID map stores wrapped ids; rosters report them bare.
	universe := universeOf(
		[2]string{"Player A", "*a1*"},
		[2]string{"Player B", "*b2*"},
	)

	result := Available(universe, claimedOf("a1"))

	require.Len(t, result.Players, 1)
	assert.Equal(t, "Player B", result.Players[0].PlayerName)
}

func TestAvailable_EmptyClaimedIsDegraded(t *testing.T) {
	universe := universeOf([2]string{"Player A", "a1"})

	result := Available(universe, nil)

	assert.Equal(t, StatusDegraded, result.Status)
	assert.Len(t, result.Players, 1)
}

func TestAvailable_Partition(t *testing.T) {
	universe := universeOf(
		[2]string{"A", "a1"},
		[2]string{"B", "b2"},
		[2]string{"C", "c3"},
		[2]string{"D", "d4"},
		[2]string{"E", "e5"},
	)
	claimed := claimedOf("*b2*", "d4", "zz9") // zz9 is not in the universe

	result := Available(universe, claimed)

	claimedInUniverse := 0
	available := make(map[string]bool, len(result.Players))
	for _, p := range result.Players {
		available[p.FantraxID] = true
	}
	for _, u := range universe {
		if !available[u.FantraxID] {
			claimedInUniverse++
		}
	}

	assert.Equal(t, len(universe), len(result.Players)+claimedInUniverse)
	assert.Equal(t, 2, claimedInUniverse)
}

func TestAvailable_SortedByNameThenID(t *testing.T) {
	universe := []models.PlayerIdentity{
		{PlayerName: "Will Smith", FantraxID: "*w2*"},
		{PlayerName: "Aaron Judge", FantraxID: "j1"},
		{PlayerName: "Will Smith", FantraxID: "*w1*"},
	}

	result := Available(universe, nil)

	require.Len(t, result.Players, 3)
	assert.Equal(t, "Aaron Judge", result.Players[0].PlayerName)
	assert.Equal(t, "*w1*", result.Players[1].FantraxID)
	assert.Equal(t, "*w2*", result.Players[2].FantraxID)
}

func TestAvailable_DuplicateClaims(t *testing.T) {
	// Same player claimed by two teams should not break the diff.
	universe := universeOf([2]string{"A", "a1"}, [2]string{"B", "b2"})
	claimed := []models.ClaimedPlayer{
		{FantasyTeam: "TeamX", FantraxID: "a1"},
		{FantasyTeam: "TeamY", FantraxID: "*a1*"},
	}

	result := Available(universe, claimed)

	assert.Equal(t, []string{"B"}, names(result.Players))
}

func TestFilterPosition(t *testing.T) {
	result := Result{
		Status: StatusComplete,
		Players: []models.AvailablePlayer{
			{PlayerName: "A", Position: "SP"},
			{PlayerName: "B", Position: "OF"},
			{PlayerName: "C", Position: "SP,RP"},
		},
	}

	filtered := FilterPosition(result, "sp")
	assert.Equal(t, []string{"A", "C"}, names(filtered.Players))

	all := FilterPosition(result, "")
	assert.Len(t, all.Players, 3)
}
