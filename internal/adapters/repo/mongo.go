package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tg-pole-bot/internal/domain"
)

// Collection names, created at startup when absent.
const (
	PolesCollection   = "Poles"
	RankingCollection = "Ranking"
)

// Mongo implements the pole and ranking repositories over two document
// collections.
type Mongo struct {
	poles   *mongo.Collection
	ranking *mongo.Collection
}

// NewMongo creates the repository.
func NewMongo(database *mongo.Database) *Mongo {
	return &Mongo{
		poles:   database.Collection(PolesCollection),
		ranking: database.Collection(RankingCollection),
	}
}

var _ domain.PoleRepo = (*Mongo)(nil)
var _ domain.RankingRepo = (*Mongo)(nil)

// RecordPole upserts the day's pole record. The $setOnInsert update writes the
// document only when the (dayKey, chatId) key is new, so concurrent attempts
// produce exactly one insert; UpsertedCount tells this caller whether it won.
func (m *Mongo) RecordPole(ctx context.Context, rec domain.PoleRecord) (bool, error) {
	res, err := m.poles.UpdateOne(ctx,
		bson.M{"dayKey": rec.DayKey, "chatId": rec.ChatID},
		bson.M{"$setOnInsert": bson.M{
			"dayKey":   rec.DayKey,
			"chatId":   rec.ChatID,
			"userId":   rec.UserID,
			"userName": rec.UserName,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("upsert pole: %w", err)
	}
	return res.UpsertedCount > 0, nil
}

// GetRanking loads the chat leaderboard document.
func (m *Mongo) GetRanking(ctx context.Context, chatID int64) (domain.Ranking, error) {
	var r domain.Ranking
	err := m.ranking.FindOne(ctx, bson.M{"chatId": chatID}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Ranking{}, domain.ErrRankingNotFound
	}
	if err != nil {
		return domain.Ranking{}, fmt.Errorf("find ranking: %w", err)
	}
	return r, nil
}

// RecordPoleForRanking attributes one pole to the user and persists the full
// user list back to the chat document, creating it when missing.
func (m *Mongo) RecordPoleForRanking(ctx context.Context, chatID int64, user domain.PoleUser) (domain.Ranking, error) {
	r, err := m.GetRanking(ctx, chatID)
	switch {
	case errors.Is(err, domain.ErrRankingNotFound):
		r = domain.Ranking{ChatID: chatID}
	case err != nil:
		return domain.Ranking{}, err
	}
	r.Apply(user)
	_, err = m.ranking.UpdateOne(ctx,
		bson.M{"chatId": chatID},
		bson.M{"$set": bson.M{"chatId": chatID, "users": r.Users}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return domain.Ranking{}, fmt.Errorf("save ranking: %w", err)
	}
	return r, nil
}
