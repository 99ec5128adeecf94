package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dynastybot/internal/api/fangraphs"
	"dynastybot/internal/api/fantasy"
	"dynastybot/internal/api/fantrax"
	"dynastybot/internal/bot"
	"dynastybot/internal/config"
	"dynastybot/internal/evaluator"
	"dynastybot/internal/idmap"
	"dynastybot/internal/repository/memory"
	"dynastybot/internal/scheduler"
	"dynastybot/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	weights := evaluator.DefaultWeights()
	if cfg.League.WeightsPath != "" {
		weights, err = evaluator.LoadWeights(cfg.League.WeightsPath)
		if err != nil {
			return err
		}
	}

	fantraxClient := fantrax.NewClient(cfg.Fantrax)
	fantraxAPI := fantrax.NewAPI(fantraxClient)
	fantasyAPI := fantasy.NewAPI(fantraxAPI, fangraphs.NewClient())

	repo := memory.NewRepository()

	universe, err := idmap.Load(cfg.League.IDMapPath)
	if err != nil {
		return err
	}
	slog.Info("Loaded player ID map", "players", len(universe))
	repo.SaveUniverse(universe)

	dynastyService := service.NewDynastyService(fantasyAPI, repo, evaluator.New(weights), cfg.League)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, dynastyService)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(dynastyService, telegramBot.SendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
