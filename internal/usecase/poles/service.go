package poles

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"tg-pole-bot/internal/domain"
	"tg-pole-bot/internal/infra/metrics"
)

// Service implements the pole claiming flow: day key, dedup gate, conditional
// insert, leaderboard update.
type Service struct {
	clock   *DayClock
	gate    Gate
	poles   domain.PoleRepo
	ranking domain.RankingRepo
	log     zerolog.Logger
}

// NewService creates the pole service.
func NewService(clock *DayClock, gate Gate, poleRepo domain.PoleRepo, rankingRepo domain.RankingRepo, logger zerolog.Logger) *Service {
	return &Service{clock: clock, gate: gate, poles: poleRepo, ranking: rankingRepo, log: logger}
}

// Claim attempts to take today's pole for the sender. A zero award with a nil
// error means the pole was already taken. A non-nil error means the store state
// is unknown or the leaderboard could not be updated; the caller stays silent.
func (s *Service) Claim(ctx context.Context, chatID int64, user domain.PoleUser) (domain.PoleAward, error) {
	dayKey := s.clock.Today()
	if !s.gate.ShouldProcess(chatID, dayKey) {
		return domain.PoleAward{}, nil
	}
	metrics.IncPoleAttempt()

	inserted, err := s.poles.RecordPole(ctx, domain.PoleRecord{
		DayKey:   dayKey,
		ChatID:   chatID,
		UserID:   user.ID,
		UserName: user.Name,
	})
	if err != nil {
		return domain.PoleAward{}, fmt.Errorf("record pole: %w", err)
	}
	if !inserted {
		return domain.PoleAward{}, nil
	}
	metrics.IncPoleClaimed()
	s.log.Debug().Int64("chat", chatID).Int64("day", dayKey).Str("user", user.Name).Msg("pole recorded")

	updated, err := s.ranking.RecordPoleForRanking(ctx, chatID, user)
	if err != nil {
		return domain.PoleAward{}, fmt.Errorf("update ranking: %w", err)
	}
	return domain.PoleAward{Claimed: true, User: user, Standings: updated.Standings()}, nil
}
