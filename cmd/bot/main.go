package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"tg-pole-bot/internal/adapters/bot"
	"tg-pole-bot/internal/adapters/repo"
	"tg-pole-bot/internal/infra/cache"
	"tg-pole-bot/internal/infra/config"
	"tg-pole-bot/internal/infra/db"
	httpinfra "tg-pole-bot/internal/infra/http"
	"tg-pole-bot/internal/infra/log"
	"tg-pole-bot/internal/infra/metrics"
	"tg-pole-bot/internal/usecase/poles"
	"tg-pole-bot/internal/usecase/ranking"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := log.NewLogger(cfg.AppEnv)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, database, err := db.Connect(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := db.EnsureCollections(ctx, database, repo.PolesCollection, repo.RankingCollection); err != nil {
		logger.Fatal().Err(err).Msg("failed to provision collections")
	}

	store := repo.NewMongo(database)

	clock, err := poles.NewDayClock(cfg.TZ)
	if err != nil {
		logger.Fatal().Err(err).Str("tz", cfg.TZ).Msg("failed to load timezone")
	}

	var gate poles.Gate = poles.NewMemoryGate()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		gate = cache.NewRedisGate(rdb, logger.With().Str("component", "gate").Logger())
		logger.Info().Str("addr", cfg.RedisAddr).Msg("using shared dedup gate")
	}

	poleService := poles.NewService(clock, gate, store, store, logger.With().Str("component", "poles").Logger())
	boardService := ranking.NewService(store)

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}

	handler := bot.NewHandler(botAPI, logger.With().Str("component", "bot").Logger(), poleService, boardService)

	ops := httpinfra.NewServer(logger.With().Str("component", "ops").Logger(), cfg.OpsAddr)
	go func() {
		if err := ops.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("ops server stopped")
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.PollTimeout
	updates := botAPI.GetUpdatesChan(u)

	logger.Info().Str("account", botAPI.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("shutting down")
			botAPI.StopReceivingUpdates()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = ops.Shutdown(shutdownCtx)
			cancel()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			handler.HandleUpdate(ctx, upd)
		}
	}
}

var _ poles.Gate = (*cache.RedisGate)(nil)
var _ poles.Gate = (*poles.MemoryGate)(nil)
