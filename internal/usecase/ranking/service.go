package ranking

import (
	"context"
	"fmt"

	"tg-pole-bot/internal/domain"
)

// Service serves leaderboard views.
type Service struct {
	repo domain.RankingRepo
}

// NewService creates the ranking service.
func NewService(repo domain.RankingRepo) *Service {
	return &Service{repo: repo}
}

// Get returns the chat standings ordered by pole count, highest first.
// domain.ErrRankingNotFound is passed through when the chat has no ranking yet.
func (s *Service) Get(ctx context.Context, chatID int64) ([]domain.RankingUser, error) {
	r, err := s.repo.GetRanking(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get ranking: %w", err)
	}
	return r.Standings(), nil
}
