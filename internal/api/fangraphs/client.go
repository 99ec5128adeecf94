// Package fangraphs fetches projection data and shapes it into stat
// records the evaluator can consume.
package fangraphs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dynastybot/internal/stats"
)

const baseURL = "https://www.fangraphs.com/api/projections"

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetBatterProjections fetches a projection system's batter lines
// (thebatx, steamer, atc, zips) as stat records with the custom league
// categories derived.
func (c *Client) GetBatterProjections(system string) ([]stats.Record, error) {
	rows, err := c.fetch(system, "bat")
	if err != nil {
		return nil, fmt.Errorf("fetching batter projections: %w", err)
	}

	recs := make([]stats.Record, 0, len(rows))
	for _, row := range rows {
		rec := stats.FromRaw(rowName(row), rowString(row, "minpos"), row)
		stats.DeriveBatter(rec)
		recs = append(recs, rec)
	}
	return recs, nil
}

// GetPitcherProjections fetches a projection system's pitcher lines.
func (c *Client) GetPitcherProjections(system string) ([]stats.Record, error) {
	rows, err := c.fetch(system, "pit")
	if err != nil {
		return nil, fmt.Errorf("fetching pitcher projections: %w", err)
	}

	recs := make([]stats.Record, 0, len(rows))
	for _, row := range rows {
		pos := rowString(row, "minpos")
		if pos == "" {
			pos = "P"
		}
		rec := stats.FromRaw(rowName(row), pos, row)
		stats.DerivePitcher(rec)
		recs = append(recs, rec)
	}
	return recs, nil
}

func (c *Client) fetch(system, statsGroup string) ([]map[string]any, error) {
	url := fmt.Sprintf("%s?type=%s&stats=%s&pos=all", baseURL, system, statsGroup)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return rows, nil
}

func rowName(row map[string]any) string {
	for _, key := range []string{"PlayerName", "Name", "playerName"} {
		if name := rowString(row, key); name != "" {
			return name
		}
	}
	return ""
}

func rowString(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}
