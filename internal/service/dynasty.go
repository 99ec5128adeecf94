package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"dynastybot/internal/api/fantasy"
	"dynastybot/internal/config"
	"dynastybot/internal/evaluator"
	"dynastybot/internal/export"
	"dynastybot/internal/idmap"
	"dynastybot/internal/models"
	"dynastybot/internal/reconcile"
	"dynastybot/internal/repository/memory"
	"dynastybot/internal/stats"
)

const (
	rosterMaxAge     = 1 * time.Hour
	projectionMaxAge = 24 * time.Hour
	reportLimit      = 10
)

type DynastyService struct {
	api       *fantasy.API
	repo      *memory.Repository
	evaluator *evaluator.Evaluator
	league    config.League
}

func NewDynastyService(api *fantasy.API, repo *memory.Repository, eval *evaluator.Evaluator, league config.League) *DynastyService {
	return &DynastyService{api: api, repo: repo, evaluator: eval, league: league}
}

func (s *DynastyService) getProjections() (batters, pitchers []stats.Record, err error) {
	if batters, pitchers, ok := s.repo.GetProjections(projectionMaxAge); ok {
		return batters, pitchers, nil
	}

	batters, err = s.api.GetBatterProjections(s.league.BatterProjection)
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching batter projections: %w", err)
	}
	pitchers, err = s.api.GetPitcherProjections(s.league.PitcherProjection)
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching pitcher projections: %w", err)
	}

	slog.Info("Loaded projections", "batters", len(batters), "pitchers", len(pitchers))
	s.repo.SaveProjections(batters, pitchers)
	return batters, pitchers, nil
}

// getClaimed returns the claimed-player collection and whether it is
// partial. A partial collection is missing whole teams and is never
// cached, so the next call retries the failed fetches.
func (s *DynastyService) getClaimed() ([]models.ClaimedPlayer, bool, error) {
	if claimed, ok := s.repo.GetClaimed(rosterMaxAge); ok {
		return claimed, false, nil
	}

	claimed, failed, err := s.api.GetAllClaimedPlayers()
	if err != nil {
		return nil, false, fmt.Errorf("error fetching rosters: %w", err)
	}
	if failed > 0 {
		slog.Warn("Partial roster fetch", "teams_failed", failed, "claimed", len(claimed))
		return claimed, true, nil
	}

	slog.Info("Loaded claimed players", "count", len(claimed))
	s.repo.SaveClaimed(claimed)
	return claimed, false, nil
}

func (s *DynastyService) getMetadata() *models.LeagueMetadata {
	if meta := s.repo.GetMetadata(); meta != nil {
		return meta
	}

	meta, err := s.api.GetLeagueMetadata()
	if err != nil {
		slog.Warn("League metadata unavailable", "error", err)
		return nil
	}
	s.repo.SaveMetadata(meta)
	return meta
}

func (s *DynastyService) records(playerType models.PlayerType) ([]stats.Record, error) {
	batters, pitchers, err := s.getProjections()
	if err != nil {
		return nil, err
	}
	if playerType == models.Pitcher {
		return pitchers, nil
	}
	return batters, nil
}

// GetBuyLowReport lists players whose peripherals outrun their fantasy
// output at the configured confidence floor.
func (s *DynastyService) GetBuyLowReport(playerType models.PlayerType) (string, error) {
	recs, err := s.records(playerType)
	if err != nil {
		return "", err
	}

	candidates := s.evaluator.BuyLowCandidates(recs, playerType, s.league.MinConfidence)
	return formatCandidates("💎 *Buy-Low Candidates*", playerType, candidates), nil
}

// GetSellHighReport lists players whose fantasy output outruns their
// peripherals.
func (s *DynastyService) GetSellHighReport(playerType models.PlayerType) (string, error) {
	recs, err := s.records(playerType)
	if err != nil {
		return "", err
	}

	candidates := s.evaluator.SellHighCandidates(recs, playerType, s.league.MinConfidence)
	return formatCandidates("⚠️ *Sell-High Candidates*", playerType, candidates), nil
}

func formatCandidates(title string, playerType models.PlayerType, candidates []models.PlayerValue) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%ss)\n\n", title, playerType))

	if len(candidates) == 0 {
		sb.WriteString("No candidates meet the confidence threshold right now.")
		return sb.String()
	}

	if len(candidates) > reportLimit {
		candidates = candidates[:reportLimit]
	}

	for i, c := range candidates {
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", i+1, c.PlayerName, c.Position))
		sb.WriteString(fmt.Sprintf("   Fantasy: %.2f | Peripherals: %.2f\n", c.FantasyScore, c.PeripheralScore))
		sb.WriteString(fmt.Sprintf("   %s (%.0f%% confidence)\n", c.ValueRating, c.Confidence*100))
		if len(c.Flags) > 0 {
			sb.WriteString(fmt.Sprintf("   %s\n", strings.Join(c.Flags, ", ")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ComparePlayers evaluates two players side by side and recommends one.
func (s *DynastyService) ComparePlayers(name1, name2 string, playerType models.PlayerType) (string, error) {
	recs, err := s.records(playerType)
	if err != nil {
		return "", err
	}

	rec1, ok := findRecord(recs, name1)
	if !ok {
		return fmt.Sprintf("🔍 No player found matching '%s'.", name1), nil
	}
	rec2, ok := findRecord(recs, name2)
	if !ok {
		return fmt.Sprintf("🔍 No player found matching '%s'.", name2), nil
	}

	comparison := s.evaluator.Compare(rec1, rec2, playerType)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚖️ *%s vs %s*\n\n", comparison.Player1.PlayerName, comparison.Player2.PlayerName))
	for _, v := range []models.PlayerValue{comparison.Player1, comparison.Player2} {
		sb.WriteString(fmt.Sprintf("*%s* (%s)\n", v.PlayerName, v.Position))
		sb.WriteString(fmt.Sprintf("Fantasy: %.2f | Peripherals: %.2f\n", v.FantasyScore, v.PeripheralScore))
		sb.WriteString(fmt.Sprintf("%s (%.0f%% confidence)\n", v.ValueRating, v.Confidence*100))
		if len(v.Flags) > 0 {
			sb.WriteString(fmt.Sprintf("%s\n", strings.Join(v.Flags, ", ")))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Fantasy edge: *%s*\n", comparison.FantasyAdvantage))
	sb.WriteString(fmt.Sprintf("Process edge: *%s*\n", comparison.PeripheralAdvantage))
	sb.WriteString(fmt.Sprintf("Recommended: *%s*\n", comparison.Recommended))

	return sb.String(), nil
}

func findRecord(recs []stats.Record, name string) (stats.Record, bool) {
	names := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		return stats.Record{}, false
	}
	sort.Sort(ranks)
	return recs[ranks[0].OriginalIndex], true
}

// GetAvailablePlayers reconciles the ID map against every roster in the
// league. A degraded reconciliation is surfaced in the report header so an
// empty-roster fetch is never mistaken for a wide-open league.
func (s *DynastyService) GetAvailablePlayers(position string) (string, error) {
	universe := s.repo.GetUniverse()
	if len(universe) == 0 {
		return "", fmt.Errorf("player ID map not loaded")
	}

	claimed, partial, err := s.getClaimed()
	if err != nil {
		slog.Error("Falling back to degraded availability", "error", err)
		claimed = nil
	}

	result := reconcile.FilterPosition(reconcile.Available(universe, claimed), position)

	var sb strings.Builder
	if position != "" {
		sb.WriteString(fmt.Sprintf("🆓 *Available %s Players*\n\n", strings.ToUpper(position)))
	} else {
		sb.WriteString("🆓 *Available Players*\n\n")
	}

	switch {
	case result.Status == reconcile.StatusDegraded:
		sb.WriteString("⚠️ Roster data unavailable — this list may include claimed players.\n\n")
	case partial:
		sb.WriteString("⚠️ Some rosters could not be fetched — this list may include claimed players.\n\n")
	}

	players := result.Players
	if len(players) == 0 {
		sb.WriteString("No available players found.")
		return sb.String(), nil
	}

	shown := players
	if len(shown) > 2*reportLimit {
		shown = shown[:2*reportLimit]
	}
	for _, p := range shown {
		sb.WriteString(fmt.Sprintf("▫️ %s %s - %s\n", p.Position, p.PlayerName, p.MLBTeam))
	}
	if len(players) > len(shown) {
		sb.WriteString(fmt.Sprintf("\n…and %d more.", len(players)-len(shown)))
	}

	return sb.String(), nil
}

// WhoHas reports which fantasy team, if any, has claimed a player.
func (s *DynastyService) WhoHas(playerName string) (string, error) {
	claimed, _, err := s.getClaimed()
	if err != nil {
		return "", err
	}
	return whoHasReport(claimed, s.repo.GetUniverse(), playerName), nil
}

func whoHasReport(claimed []models.ClaimedPlayer, universe []models.PlayerIdentity, playerName string) string {
	names := make([]string, len(claimed))
	for i, c := range claimed {
		names[i] = c.PlayerName
	}
	ranks := fuzzy.RankFindNormalizedFold(playerName, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		match := claimed[ranks[0].OriginalIndex]
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("*%s* (%s)\n", match.PlayerName, match.Position))
		sb.WriteString("━━━━━━━━━━━━━━━━\n")
		sb.WriteString(fmt.Sprintf("*%s*\n", match.FantasyTeam))
		if match.Status != "" {
			sb.WriteString(fmt.Sprintf("%s\n", match.Status))
		}
		return sb.String()
	}

	if free := idmap.Search(universe, playerName); len(free) > 0 {
		p := free[0]
		return fmt.Sprintf("*%s* (%s - %s)\nFree Agent", p.PlayerName, p.Position, p.MLBTeam)
	}

	return fmt.Sprintf("🔍 No player found matching '%s'.", playerName)
}

func (s *DynastyService) GetStandings() (string, error) {
	standings, err := s.api.GetStandings()
	if err != nil {
		return "", fmt.Errorf("error fetching standings: %w", err)
	}

	return formatStandings(s.getMetadata(), standings), nil
}

func formatStandings(meta *models.LeagueMetadata, standings []models.TeamStanding) string {
	var sb strings.Builder
	if meta != nil {
		sb.WriteString(fmt.Sprintf("🏆 *%s %d Standings*\n\n", meta.Name, meta.Season))
	} else {
		sb.WriteString("🏆 *Current Standings*\n\n")
	}
	for _, team := range standings {
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", team.Rank, team.TeamName))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n\n", team.PointsAgainst))
	}

	return sb.String()
}

// EvaluationCSV materializes the full evaluation table for export.
func (s *DynastyService) EvaluationCSV(playerType models.PlayerType) ([]byte, error) {
	recs, err := s.records(playerType)
	if err != nil {
		return nil, err
	}

	values := s.evaluator.EvaluateAll(recs, playerType, nil)

	var buf bytes.Buffer
	if err := export.WritePlayerValues(&buf, values); err != nil {
		return nil, fmt.Errorf("error writing evaluation csv: %w", err)
	}
	return buf.Bytes(), nil
}
