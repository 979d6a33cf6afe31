package domain

import (
	"context"
	"errors"
)

// ErrRankingNotFound is returned when a chat has no ranking document yet.
// It is a valid empty state, not a storage failure.
var ErrRankingNotFound = errors.New("no ranking exists for chat")

// PoleRepo persists pole records.
type PoleRepo interface {
	// RecordPole inserts the record unless one already exists for its
	// (DayKey, ChatID) key. It reports whether this call created the record.
	// Concurrent calls with the same key result in exactly one insert.
	RecordPole(ctx context.Context, rec PoleRecord) (bool, error)
}

// RankingRepo persists per-chat leaderboards.
type RankingRepo interface {
	// GetRanking returns the chat leaderboard document, or ErrRankingNotFound.
	GetRanking(ctx context.Context, chatID int64) (Ranking, error)
	// RecordPoleForRanking attributes one pole to the user and returns the
	// updated document. Called only after a successful pole insert.
	RecordPoleForRanking(ctx context.Context, chatID int64, user PoleUser) (Ranking, error)
}
