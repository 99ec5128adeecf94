package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TelegramBot TelegramBot
	Fantrax     Fantrax
	League      League
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type Fantrax struct {
	LeagueID string `envconfig:"FANTRAX_LEAGUE_ID" required:"true"`
	// Session cookie captured from a logged-in browser; needed for
	// private leagues only.
	Cookie string `envconfig:"FANTRAX_COOKIE"`
}

type League struct {
	IDMapPath         string  `envconfig:"ID_MAP_PATH" default:"data/PLAYERIDMAP.csv"`
	WeightsPath       string  `envconfig:"WEIGHTS_PATH"`
	MinConfidence     float64 `envconfig:"MIN_CONFIDENCE" default:"0.7"`
	BatterProjection  string  `envconfig:"BATTER_PROJECTION" default:"thebatx"`
	PitcherProjection string  `envconfig:"PITCHER_PROJECTION" default:"atc"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
