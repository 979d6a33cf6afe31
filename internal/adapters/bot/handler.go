package bot

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"tg-pole-bot/internal/adapters/telegram"
	"tg-pole-bot/internal/domain"
	"tg-pole-bot/internal/infra/metrics"
	"tg-pole-bot/internal/usecase/poles"
	"tg-pole-bot/internal/usecase/ranking"
)

var rankingCommand = regexp.MustCompile(`^[!/]ranking(@\w+)?\b`)

const anonymousName = "anónimo"

// Handler processes inbound Telegram updates. Every message is a candidate pole;
// the ranking command returns the chat leaderboard.
type Handler struct {
	bot   *tgbotapi.BotAPI
	log   zerolog.Logger
	poles *poles.Service
	board *ranking.Service
}

// NewHandler creates the handler.
func NewHandler(bot *tgbotapi.BotAPI, log zerolog.Logger, poleService *poles.Service, boardService *ranking.Service) *Handler {
	return &Handler{bot: bot, log: log, poles: poleService, board: boardService}
}

// HandleUpdate routes one inbound update. A panic in a single update is logged
// and never stops the event loop.
func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Interface("panic", r).Msg("update handler panicked")
		}
	}()
	if upd.Message == nil {
		return
	}
	h.handleMessage(ctx, upd.Message)
}

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	if rankingCommand.MatchString(strings.TrimSpace(msg.Text)) {
		h.handleRanking(ctx, msg.Chat.ID)
		return
	}
	h.handlePole(ctx, msg)
}

func (h *Handler) handlePole(ctx context.Context, msg *tgbotapi.Message) {
	user := domain.PoleUser{ID: msg.From.ID, Name: displayName(msg.From)}
	award, err := h.poles.Claim(ctx, msg.Chat.ID, user)
	if err != nil {
		h.log.Error().Err(err).Int64("chat", msg.Chat.ID).Msg("pole attempt failed")
		return
	}
	if !award.Claimed {
		return
	}
	h.log.Info().Int64("chat", msg.Chat.ID).Str("user", user.Name).Msg("pole claimed")
	h.send(msg.Chat.ID, msg.MessageID, ranking.FormatAward(award), true)
}

func (h *Handler) handleRanking(ctx context.Context, chatID int64) {
	metrics.IncRankingRequest()
	users, err := h.board.Get(ctx, chatID)
	if errors.Is(err, domain.ErrRankingNotFound) {
		h.send(chatID, 0, ranking.NotFoundMessage, false)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int64("chat", chatID).Msg("ranking lookup failed")
		return
	}
	h.send(chatID, 0, ranking.FormatBoard(users), true)
}

func (h *Handler) send(chatID int64, replyTo int, text string, htmlMode bool) {
	parts := telegram.SplitMessage(text)
	for i, part := range parts {
		out := tgbotapi.NewMessage(chatID, part)
		if htmlMode {
			out.ParseMode = tgbotapi.ModeHTML
		}
		if i == 0 && replyTo != 0 {
			out.ReplyToMessageID = replyTo
		}
		start := time.Now()
		_, err := h.bot.Send(out)
		metrics.ObserveNetworkRequest("telegram_bot", "send_message", start, err)
		if err != nil {
			metrics.IncBotSendError()
			h.log.Error().Err(err).Int64("chat", chatID).Msg("failed to send message")
			return
		}
	}
}

// displayName picks the best available identity for a sender: username, then
// first name, then a placeholder for fully anonymous accounts.
func displayName(from *tgbotapi.User) string {
	if from.UserName != "" {
		return from.UserName
	}
	if name := strings.TrimSpace(from.FirstName); name != "" {
		return name
	}
	return anonymousName
}
