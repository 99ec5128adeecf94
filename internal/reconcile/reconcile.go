// Package reconcile diffs the player ID map universe against the union of
// all claimed rosters to find who is still on the wire.
package reconcile

import (
	"sort"
	"strings"

	"dynastybot/internal/identity"
	"dynastybot/internal/models"
)

// Status qualifies a reconciliation result. A degraded result means the
// claimed collection was empty, so "everyone is available" is more likely
// an upstream fetch failure than a deserted league.
type Status string

const (
	StatusComplete Status = "complete"
	StatusDegraded Status = "degraded"
)

type Result struct {
	Players []models.AvailablePlayer
	Status  Status
}

// Available filters the identity universe down to players whose Fantrax ID
// is not claimed by any team. Claimed IDs contribute every equivalent
// encoding to the lookup set, so the universe rows can keep their stored
// encoding. Runs in O(N+M).
func Available(universe []models.PlayerIdentity, claimed []models.ClaimedPlayer) Result {
	status := StatusComplete
	if len(claimed) == 0 {
		status = StatusDegraded
	}

	taken := make(map[string]struct{}, len(claimed)*2)
	for _, c := range claimed {
		for _, v := range identity.Variants(c.FantraxID) {
			taken[v] = struct{}{}
		}
	}

	players := make([]models.AvailablePlayer, 0, len(universe))
	for _, p := range universe {
		if _, ok := taken[p.FantraxID]; ok {
			continue
		}
		players = append(players, models.AvailablePlayer{
			PlayerName:  p.PlayerName,
			FantraxID:   p.FantraxID,
			Position:    p.Position,
			MLBTeam:     p.MLBTeam,
			MLBID:       p.MLBID,
			FangraphsID: p.FangraphsID,
		})
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].PlayerName != players[j].PlayerName {
			return players[i].PlayerName < players[j].PlayerName
		}
		return identity.Canonical(players[i].FantraxID) < identity.Canonical(players[j].FantraxID)
	})

	return Result{Players: players, Status: status}
}

// FilterPosition narrows an availability result to one position code,
// matching anywhere in the (possibly multi-position) position string.
func FilterPosition(r Result, position string) Result {
	if position == "" {
		return r
	}
	filtered := make([]models.AvailablePlayer, 0, len(r.Players))
	for _, p := range r.Players {
		if strings.Contains(strings.ToLower(p.Position), strings.ToLower(position)) {
			filtered = append(filtered, p)
		}
	}
	return Result{Players: filtered, Status: r.Status}
}
