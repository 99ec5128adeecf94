// Package idmap loads the SFBB player ID map, the canonical universe of
// player identities and their cross-service identifiers.
package idmap

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"dynastybot/internal/identity"
	"dynastybot/internal/models"
)

// Load reads a PLAYERIDMAP.csv export. Column order varies between map
// revisions, so columns are resolved by header name; rows without a player
// name are skipped.
func Load(path string) ([]models.PlayerIdentity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening id map %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading id map %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("id map %s is empty", path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	universe := make([]models.PlayerIdentity, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := field(row, "PLAYERNAME")
		if name == "" {
			continue
		}
		universe = append(universe, models.PlayerIdentity{
			PlayerName:  name,
			Position:    field(row, "POS"),
			MLBTeam:     field(row, "TEAM"),
			FantraxID:   field(row, "FANTRAXID"),
			MLBID:       field(row, "MLBID"),
			FangraphsID: field(row, "IDFANGRAPHS"),
			Active:      field(row, "ACTIVE") != "N",
		})
	}

	return universe, nil
}

// Search finds identities whose name fuzzily matches the term, best match
// first.
func Search(universe []models.PlayerIdentity, term string) []models.PlayerIdentity {
	names := make([]string, len(universe))
	for i, p := range universe {
		names[i] = p.PlayerName
	}

	ranks := fuzzy.RankFindNormalizedFold(term, names)
	sort.Sort(ranks)

	matches := make([]models.PlayerIdentity, 0, len(ranks))
	for _, rank := range ranks {
		matches = append(matches, universe[rank.OriginalIndex])
	}
	return matches
}

// FindByFantraxID returns the identity for a Fantrax ID in either surface
// encoding, or false when the map has no such player.
func FindByFantraxID(universe []models.PlayerIdentity, fantraxID string) (models.PlayerIdentity, bool) {
	want := identity.Canonical(fantraxID)
	for _, p := range universe {
		if identity.Canonical(p.FantraxID) == want && want != "" {
			return p, true
		}
	}
	return models.PlayerIdentity{}, false
}
