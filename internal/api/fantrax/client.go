package fantrax

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dynastybot/internal/config"
	"dynastybot/internal/models"
)

const defaultBaseURL = "https://www.fantrax.com/fxpa/req"

// Client talks to the Fantrax fxpa endpoint. Every call is a POST carrying
// a batch of msgs; private leagues additionally need the session cookie
// from the config.
type Client struct {
	httpClient *http.Client
	baseURL    string
	Config     config.Fantrax
}

func NewClient(cfg config.Fantrax) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		Config:     cfg,
	}
}

// Call issues a single-method request and decodes the first response's
// data payload into result.
func (c *Client) Call(method string, data map[string]any, result interface{}) error {
	if data == nil {
		data = map[string]any{}
	}
	data["leagueId"] = c.Config.LeagueID

	body, err := json.Marshal(models.FantraxRequest{
		Msgs: []models.FantraxMsg{{Method: method, Data: data}},
	})
	if err != nil {
		return fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s?leagueId=%s", c.baseURL, c.Config.LeagueID)
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Config.Cookie != "" {
		req.Header.Set("Cookie", c.Config.Cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var envelope models.FantraxEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	if envelope.PageError != nil {
		return fmt.Errorf("fantrax error %s: %s", envelope.PageError.Code, envelope.PageError.Msg)
	}
	if len(envelope.Responses) == 0 {
		return fmt.Errorf("empty response for method %s", method)
	}

	if err := json.Unmarshal(envelope.Responses[0].Data, result); err != nil {
		return fmt.Errorf("error decoding %s data: %w", method, err)
	}

	return nil
}
