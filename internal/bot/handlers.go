package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dynastybot/internal/models"
	"dynastybot/internal/service"
)

type Handler struct {
	dynastyService *service.DynastyService
}

func NewHandler(dynastyService *service.DynastyService) *Handler {
	return &Handler{dynastyService: dynastyService}
}

// HandleCommand returns the messages to send for one command. Most
// commands produce a single text reply; /export replies with a document.
func (h *Handler) HandleCommand(update tgbotapi.Update) []tgbotapi.Chattable {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to DynastyBot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n" +
			"/buylow [batter|pitcher] - Buy-low candidates\n" +
			"/sellhigh [batter|pitcher] - Sell-high candidates\n" +
			"/compare <player1> vs <player2> [pitcher] - Compare two players\n" +
			"/available [position] - Unclaimed players\n" +
			"/whohas <player> - Check which team has a player\n" +
			"/standings - League standings\n" +
			"/export [batter|pitcher] - Full evaluation table as CSV"
	case "buylow":
		h.handleBuyLow(&msg, args)
	case "sellhigh":
		h.handleSellHigh(&msg, args)
	case "compare":
		h.handleCompare(&msg, args)
	case "available":
		h.handleAvailable(&msg, args)
	case "whohas":
		h.handleWhoHas(&msg, args)
	case "standings":
		h.handleStandings(&msg)
	case "export":
		return h.handleExport(update.Message.Chat.ID, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return []tgbotapi.Chattable{msg}
}

func parsePlayerType(args string) models.PlayerType {
	arg := strings.ToLower(strings.TrimSpace(args))
	if arg == "pitcher" || arg == "p" || strings.HasPrefix(arg, "pitch") {
		return models.Pitcher
	}
	return models.Batter
}

func (h *Handler) handleBuyLow(msg *tgbotapi.MessageConfig, args string) {
	report, err := h.dynastyService.GetBuyLowReport(parsePlayerType(args))
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching buy-low candidates: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleSellHigh(msg *tgbotapi.MessageConfig, args string) {
	report, err := h.dynastyService.GetSellHighReport(parsePlayerType(args))
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching sell-high candidates: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleCompare(msg *tgbotapi.MessageConfig, args string) {
	playerType := models.Batter
	if rest, ok := strings.CutSuffix(strings.TrimSpace(args), " pitcher"); ok {
		playerType = models.Pitcher
		args = rest
	}

	parts := strings.SplitN(args, " vs ", 2)
	if len(parts) != 2 {
		msg.Text = "Usage: /compare <player1> vs <player2> [pitcher]"
		return
	}

	report, err := h.dynastyService.ComparePlayers(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), playerType)
	if err != nil {
		msg.Text = fmt.Sprintf("Error comparing players: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleAvailable(msg *tgbotapi.MessageConfig, args string) {
	report, err := h.dynastyService.GetAvailablePlayers(strings.TrimSpace(args))
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching available players: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleWhoHas(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /whohas <player name>"
		return
	}
	result, err := h.dynastyService.WhoHas(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error checking who has player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleStandings(msg *tgbotapi.MessageConfig) {
	standings, err := h.dynastyService.GetStandings()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching standings: %v", err)
	} else {
		msg.Text = standings
	}
}

func (h *Handler) handleExport(chatID int64, args string) []tgbotapi.Chattable {
	playerType := parsePlayerType(args)

	data, err := h.dynastyService.EvaluationCSV(playerType)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Error exporting evaluations: %v", err))
		return []tgbotapi.Chattable{msg}
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("%s_evaluations.csv", playerType),
		Bytes: data,
	})
	return []tgbotapi.Chattable{doc}
}
