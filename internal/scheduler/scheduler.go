package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"dynastybot/internal/models"
	"dynastybot/internal/service"
)

type Scheduler struct {
	s              gocron.Scheduler
	dynastyService *service.DynastyService
	sendMessage    func(string) error
}

func NewScheduler(dynastyService *service.DynastyService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago")
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		dynastyService: dynastyService,
		sendMessage:    sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Trade-target digest - Monday 8:00
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendTradeTargets),
	)
	if err != nil {
		return fmt.Errorf("failed to create trade targets job: %w", err)
	}

	// Free-agent digest - Friday 8:00, ahead of weekend waivers
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Friday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendFreeAgents),
	)
	if err != nil {
		return fmt.Errorf("failed to create free agents job: %w", err)
	}

	// Standings - Wednesday 8:00
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendTradeTargets() {
	for _, playerType := range []models.PlayerType{models.Batter, models.Pitcher} {
		report, err := s.dynastyService.GetBuyLowReport(playerType)
		if err != nil {
			slog.Error("Failed to get buy-low report", "type", playerType, "error", err)
			continue
		}
		s.sendMessage(report)
	}
}

func (s *Scheduler) sendFreeAgents() {
	report, err := s.dynastyService.GetAvailablePlayers("")
	if err != nil {
		slog.Error("Failed to get available players", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendStandings() {
	standings, err := s.dynastyService.GetStandings()
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	s.sendMessage(standings)
}
